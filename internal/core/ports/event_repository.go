package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// EventRepository persists the service history (audit trail).
type EventRepository interface {
	// Insert persists an event to the service_events collection.
	Insert(ctx context.Context, event *domain.ServiceEvent) error
	// ListByService returns a service's events, oldest first.
	ListByService(ctx context.Context, serviceID uint) ([]*domain.ServiceEvent, error)
}

// EventRecorder accepts lifecycle events for persistence. Recording never
// fails the calling operation.
type EventRecorder interface {
	Record(event domain.ServiceEvent)
}
