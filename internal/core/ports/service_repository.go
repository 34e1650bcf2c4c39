package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// ServiceFilter carries all query parameters for listing services.
// Visibility is always enforced by the service layer.
type ServiceFilter struct {
	Visibility domain.Visibility
	Statuses   []domain.ServiceStatus // optional
	VehicleID  uint                   // optional
	Limit      int                    // 0 = no limit
}

// ServiceRepository defines persistence operations for service requests.
// Every returned service has OwnerID populated from its vehicle.
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id uint) (*domain.Service, error)
	// List returns matching services ordered by creation time, newest first.
	List(ctx context.Context, filter ServiceFilter) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
}
