package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// CreateUserInput carries a manager-created account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

// UpdateUserInput carries a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Role     *string
}

// UserDetail is a user together with the vehicles they own.
type UserDetail struct {
	User     *domain.User
	Vehicles []*domain.Vehicle
}

// UserService defines account management use cases.
type UserService interface {
	// List returns the users visible to p, optionally filtered by role.
	List(ctx context.Context, p domain.Principal, role string) ([]*domain.User, error)
	Get(ctx context.Context, p domain.Principal, id uint) (*UserDetail, error)
	Create(ctx context.Context, p domain.Principal, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, p domain.Principal, id uint, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, p domain.Principal, id uint) error
}
