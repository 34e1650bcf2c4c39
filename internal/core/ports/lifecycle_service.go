package ports

import (
	"context"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
)

// CreateServiceInput carries all data needed to open a service request.
// Status, MechanicID and ExpectedAt are staff-only.
type CreateServiceInput struct {
	VehicleID   uint
	Description string
	Notes       string
	Status      string // empty = aguardando_orcamento
	MechanicID  *uint
	ExpectedAt  *time.Time
}

// UpdateServiceInput carries a partial update; nil fields are left untouched.
// Mechanics may only send Status.
type UpdateServiceInput struct {
	Description *string
	Notes       *string
	Status      *string
	MechanicID  *uint
	ExpectedAt  *time.Time

	// ClearMechanic unassigns the current mechanic. It excludes MechanicID.
	ClearMechanic bool
}

// ListServicesInput carries the optional list filters.
type ListServicesInput struct {
	Status string // optional
}

// ServiceDetail is the full service view: the service and its quote history.
type ServiceDetail struct {
	Service *domain.Service
	Quotes  []*domain.Quote
}

// LifecycleService defines the service request use cases.
type LifecycleService interface {
	Create(ctx context.Context, p domain.Principal, in CreateServiceInput) (*domain.Service, error)
	Get(ctx context.Context, p domain.Principal, id uint) (*ServiceDetail, error)
	List(ctx context.Context, p domain.Principal, in ListServicesInput) ([]*domain.Service, error)
	Update(ctx context.Context, p domain.Principal, id uint, in UpdateServiceInput) (*domain.Service, error)
}
