package service

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// HistoryService reads a service's audit trail under the service's read rules.
type HistoryService struct {
	services ports.ServiceRepository
	events   ports.EventRepository
}

func NewHistoryService(services ports.ServiceRepository, events ports.EventRepository) *HistoryService {
	return &HistoryService{services: services, events: events}
}

func (s *HistoryService) History(ctx context.Context, p domain.Principal, serviceID uint) ([]*domain.ServiceEvent, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceService, domain.ActionRead, svc.Target()); err != nil {
		return nil, err
	}
	return s.events.ListByService(ctx, svc.ID)
}
