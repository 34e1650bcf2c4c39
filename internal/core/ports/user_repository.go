package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// UserFilter narrows a user listing. Visibility is always set by the service layer.
type UserFilter struct {
	Visibility domain.Visibility
	Role       domain.Role // empty = any role
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts u and sets its ID. A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, u *domain.User) error
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	// Update saves u. When u is not a mechanic its service assignments are
	// cleared atomically with the save.
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user together with their vehicles, those vehicles'
	// services and quotes, and unassigns them from any service, atomically.
	Delete(ctx context.Context, id uint) error
}
