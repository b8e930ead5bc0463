package domain

import "github.com/google/uuid"

// Visibility is the read-access configuration attached to events and files.
type Visibility struct {
	IsPublic          bool
	VisibleToAllRoles bool
	PermittedRoleIDs  []uuid.UUID
}

// VisibleTo evaluates the visibility rules against the caller's role set.
// The order of checks is part of the access contract:
//  1. public resources are visible to everyone;
//  2. callers without roles see nothing else;
//  3. resources open to all roles are visible to any role holder;
//  4. otherwise the caller needs one of the permitted roles.
func (v Visibility) VisibleTo(roles RoleSet) bool {
	if v.IsPublic {
		return true
	}
	if roles.Empty() {
		return false
	}
	if v.VisibleToAllRoles {
		return true
	}
	for _, id := range v.PermittedRoleIDs {
		if roles.Has(id) {
			return true
		}
	}
	return false
}

// Restricted is implemented by resources that carry a Visibility.
type Restricted interface {
	Visibility() Visibility
}

// FilterVisible returns the items visible to roles, keeping input order.
func FilterVisible[T Restricted](items []T, roles RoleSet) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Visibility().VisibleTo(roles) {
			out = append(out, it)
		}
	}
	return out
}
