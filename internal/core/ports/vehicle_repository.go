package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	// Create inserts v and sets its ID. A duplicate plate yields domain.ErrPlateTaken.
	Create(ctx context.Context, v *domain.Vehicle) error
	FindByID(ctx context.Context, id uint) (*domain.Vehicle, error)
	FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	// List returns vehicles inside vis, newest first.
	List(ctx context.Context, vis domain.Visibility) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	// Delete removes a vehicle with no services; otherwise domain.ErrVehicleHasServices.
	Delete(ctx context.Context, id uint) error
}
