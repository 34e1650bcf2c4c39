package domain

import (
	"math"
	"time"
)

// ServiceStatus represents the lifecycle state of a service request.
type ServiceStatus string

const (
	StatusPending       ServiceStatus = "pendente"
	StatusAwaitingQuote ServiceStatus = "aguardando_orcamento"
	StatusQuoteApproved ServiceStatus = "orcamento_aprovado"
	StatusInProgress    ServiceStatus = "em_andamento"
	StatusCompleted     ServiceStatus = "concluido"
	StatusCancelled     ServiceStatus = "cancelado"
)

// Statuses lists every status in lifecycle order.
var Statuses = []ServiceStatus{
	StatusPending,
	StatusAwaitingQuote,
	StatusQuoteApproved,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses are the states in which work is still open.
var ActiveStatuses = []ServiceStatus{StatusAwaitingQuote, StatusQuoteApproved, StatusInProgress}

// validTransitions defines the moves a mechanic may make by editing status.
// Entering StatusQuoteApproved only happens through quote approval.
var validTransitions = map[ServiceStatus][]ServiceStatus{
	StatusPending:       {StatusAwaitingQuote, StatusCancelled},
	StatusAwaitingQuote: {StatusCancelled},
	StatusQuoteApproved: {StatusInProgress, StatusCancelled},
	StatusInProgress:    {StatusCompleted, StatusCancelled},
	StatusCompleted:     {StatusCancelled},
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (ServiceStatus, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s ServiceStatus) CanTransitionTo(next ServiceStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label is the human readable name shown on the HTML pages.
func (s ServiceStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusAwaitingQuote:
		return "Aguardando Orçamento"
	case StatusQuoteApproved:
		return "Orçamento Aprovado"
	case StatusInProgress:
		return "Em Andamento"
	case StatusCompleted:
		return "Concluído"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// Service is the aggregate root of the workshop: one unit of repair work.
type Service struct {
	ID              uint
	Description     string
	Notes           string
	Status          ServiceStatus
	Value           *float64 // bound value, nil until a quote is approved
	VehicleID       uint
	MechanicID      *uint
	ApprovedQuoteID *uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpectedAt      *time.Time
	CompletedAt     *time.Time

	// OwnerID is the owner of VehicleID, loaded alongside the service.
	OwnerID uint
}

// SetStatus moves the service to next and stamps CompletedAt on the first
// entry into StatusCompleted. It never guards the transition itself.
func (s *Service) SetStatus(next ServiceStatus, now time.Time) {
	s.Status = next
	if next == StatusCompleted && s.CompletedAt == nil {
		t := now
		s.CompletedAt = &t
	}
}

// Target returns the access-control view of the service.
func (s *Service) Target() Target {
	return Target{OwnerID: s.OwnerID, MechanicID: s.MechanicID, Status: s.Status}
}

// RoundMoney rounds an amount to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
