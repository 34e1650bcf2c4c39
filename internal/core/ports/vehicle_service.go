package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// CreateVehicleInput carries all data needed to register a vehicle.
type CreateVehicleInput struct {
	Plate string
	Make  string
	Model string
	Year  int
	Color string
	// OwnerID is honoured for managers only; everyone else registers for themselves.
	OwnerID uint
}

// UpdateVehicleInput carries a partial update; nil fields are left untouched.
type UpdateVehicleInput struct {
	Plate *string
	Make  *string
	Model *string
	Year  *int
	Color *string
}

// VehicleDetail is a vehicle with the services the caller may see.
type VehicleDetail struct {
	Vehicle  *domain.Vehicle
	Services []*domain.Service
}

// VehicleService defines vehicle registry use cases.
type VehicleService interface {
	Create(ctx context.Context, p domain.Principal, in CreateVehicleInput) (*domain.Vehicle, error)
	Get(ctx context.Context, p domain.Principal, id uint) (*VehicleDetail, error)
	List(ctx context.Context, p domain.Principal) ([]*domain.Vehicle, error)
	Update(ctx context.Context, p domain.Principal, id uint, in UpdateVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, p domain.Principal, id uint) error
}
