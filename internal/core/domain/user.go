package domain

import "time"

// Role is the user type stored on every account.
type Role string

const (
	RoleClient   Role = "cliente"
	RoleManager  Role = "gerente"
	RoleMechanic Role = "mecanico"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleClient, RoleManager, RoleMechanic:
		return r, nil
	}
	return "", ErrInvalidRole
}

// IsStaff reports whether the role belongs to the workshop team.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleMechanic
}

// User models an account holder.
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Role         Role
	CreatedAt    time.Time
}
