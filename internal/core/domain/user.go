package domain

import (
	"time"

	"github.com/google/uuid"
)

// User models an account issued by the hosted auth service.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// Caller is a resolved session: the user, the token that proved it and the
// user's role assignments.
type Caller struct {
	User        User
	AccessToken string
	Roles       []Role
}

// RoleSet returns the caller's role ids. A nil caller has none.
func (c *Caller) RoleSet() RoleSet {
	if c == nil {
		return RoleSet{}
	}
	return NewRoleSet(c.Roles)
}

// Token returns the caller's access token, or "" for anonymous requests.
func (c *Caller) Token() string {
	if c == nil {
		return ""
	}
	return c.AccessToken
}

// UserWithRoles is the admin roster entry.
type UserWithRoles struct {
	User
	Roles []Role `json:"roles"`
}
