package domain

import "time"

// EventType names a lifecycle mutation recorded in the service history.
type EventType string

const (
	EventServiceCreated   EventType = "service_created"
	EventStatusChanged    EventType = "status_changed"
	EventMechanicAssigned EventType = "mechanic_assigned"
	EventMechanicRemoved  EventType = "mechanic_unassigned"
	EventQuoteCreated     EventType = "quote_created"
	EventQuoteApproved    EventType = "quote_approved"
)

// ServiceEvent is one entry of a service's audit trail.
type ServiceEvent struct {
	ServiceID  uint
	Type       EventType
	FromStatus ServiceStatus // empty on creation
	ToStatus   ServiceStatus
	ActorID    uint
	ActorRole  Role
	MechanicID *uint    // optional
	QuoteID    *uint    // optional
	Amount     *float64 // optional
	OccurredAt time.Time
}
