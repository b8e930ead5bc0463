package domain

import "github.com/google/uuid"

// DefaultRoleName is the role every account receives on sign-up. It grants no
// dashboard access on its own.
const DefaultRoleName = "usuario"

// Role is a named permission grant assigned to a user.
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RoleSet is the set of role ids held by a caller.
type RoleSet map[uuid.UUID]struct{}

// NewRoleSet collects the ids of roles.
func NewRoleSet(roles []Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r.ID] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s RoleSet) Empty() bool { return len(s) == 0 }

// HasDashboardAccess reports whether roles grant entry to the dashboard: at
// least one role whose name differs from defaultName.
func HasDashboardAccess(roles []Role, defaultName string) bool {
	if defaultName == "" {
		defaultName = DefaultRoleName
	}
	for _, r := range roles {
		if r.Name != defaultName {
			return true
		}
	}
	return false
}
