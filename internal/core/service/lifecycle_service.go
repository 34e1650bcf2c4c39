package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

var (
	errStaffOnlyFields = domain.NewError(domain.ErrAccessDenied, "only staff can set status, mechanic or expected date")
	errMechanicFields  = domain.NewError(domain.ErrAccessDenied, "mechanics can only change the status")
	errAssignOther     = domain.NewError(domain.ErrAccessDenied, "mechanics can only assign themselves")
)

// LifecycleService drives a service request through its status lifecycle.
type LifecycleService struct {
	services ports.ServiceRepository
	vehicles ports.VehicleRepository
	users    ports.UserRepository
	quotes   ports.QuoteRepository
	events   ports.EventRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewLifecycleService(
	services ports.ServiceRepository,
	vehicles ports.VehicleRepository,
	users ports.UserRepository,
	quotes ports.QuoteRepository,
	events ports.EventRecorder,
	logger zerolog.Logger,
) *LifecycleService {
	return &LifecycleService{
		services: services,
		vehicles: vehicles,
		users:    users,
		quotes:   quotes,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

// Create opens a service request. Clients may only open requests for their
// own vehicles and always start in StatusAwaitingQuote; staff may pick the
// initial status and the assigned mechanic.
func (s *LifecycleService) Create(ctx context.Context, p domain.Principal, in ports.CreateServiceInput) (*domain.Service, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Invalid("descricao is required")
	}
	if in.VehicleID == 0 {
		return nil, domain.Invalid("veiculo_id is required")
	}

	// 1. Resolve the vehicle and check ownership.
	vehicle, err := s.vehicles.FindByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceService, domain.ActionCreate, domain.Target{OwnerID: vehicle.OwnerID}); err != nil {
		return nil, err
	}

	// 2. Staff-only fields.
	status := domain.StatusAwaitingQuote
	if !p.Role.IsStaff() && (in.Status != "" || in.MechanicID != nil || in.ExpectedAt != nil) {
		return nil, errStaffOnlyFields
	}
	if in.Status != "" {
		if status, err = domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}
	if in.MechanicID != nil {
		if err := s.checkAssignee(ctx, p, *in.MechanicID); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	svc := &domain.Service{
		Description: description,
		Notes:       strings.TrimSpace(in.Notes),
		VehicleID:   vehicle.ID,
		OwnerID:     vehicle.OwnerID,
		MechanicID:  in.MechanicID,
		ExpectedAt:  in.ExpectedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	svc.SetStatus(status, now)

	// 3. Persist.
	if err := s.services.Create(ctx, svc); err != nil {
		s.logger.Error().Err(err).Uint("vehicle_id", vehicle.ID).Msg("failed to create service")
		return nil, err
	}

	s.record(p, svc, domain.EventServiceCreated, "", nil)
	s.logger.Info().
		Uint("service_id", svc.ID).
		Uint("vehicle_id", vehicle.ID).
		Str("status", string(svc.Status)).
		Str("role", string(p.Role)).
		Msg("service created")

	return svc, nil
}

func (s *LifecycleService) Get(ctx context.Context, p domain.Principal, id uint) (*ports.ServiceDetail, error) {
	svc, err := s.load(ctx, p, id, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	quotes, err := s.quotes.ListByService(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	return &ports.ServiceDetail{Service: svc, Quotes: quotes}, nil
}

// List returns only what the caller may see; it never fails on permissions.
func (s *LifecycleService) List(ctx context.Context, p domain.Principal, in ports.ListServicesInput) ([]*domain.Service, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	filter := ports.ServiceFilter{Visibility: domain.VisibilityFor(p, domain.ResourceService)}
	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Statuses = []domain.ServiceStatus{st}
	}
	if filter.Visibility.Scope == domain.ScopeNone {
		return []*domain.Service{}, nil
	}
	return s.services.List(ctx, filter)
}

// Update applies a partial update. Managers may change any editable field
// and set any status; assigned mechanics may only move the status along the
// lifecycle graph.
func (s *LifecycleService) Update(ctx context.Context, p domain.Principal, id uint, in ports.UpdateServiceInput) (*domain.Service, error) {
	svc, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}

	mechanic := p.Role == domain.RoleMechanic
	if mechanic && (in.Description != nil || in.Notes != nil || in.MechanicID != nil || in.ExpectedAt != nil || in.ClearMechanic) {
		return nil, errMechanicFields
	}
	if in.ClearMechanic && in.MechanicID != nil {
		return nil, domain.Invalid("mecanico_id and remover_mecanico are mutually exclusive")
	}

	// 1. Validate everything before mutating.
	from := svc.Status
	next := from
	if in.Status != nil {
		if next, err = domain.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
		if mechanic && next != from && !from.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, from, next)
		}
	}
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		return nil, domain.Invalid("descricao must not be empty")
	}
	assigned := in.MechanicID != nil && (svc.MechanicID == nil || *svc.MechanicID != *in.MechanicID)
	if assigned {
		if err := s.checkAssignee(ctx, p, *in.MechanicID); err != nil {
			return nil, err
		}
	}

	// 2. Apply.
	now := s.now().UTC()
	if in.Description != nil {
		svc.Description = strings.TrimSpace(*in.Description)
	}
	if in.Notes != nil {
		svc.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.ExpectedAt != nil {
		svc.ExpectedAt = in.ExpectedAt
	}
	if assigned {
		mid := *in.MechanicID
		svc.MechanicID = &mid
	}
	unassigned := in.ClearMechanic && svc.MechanicID != nil
	if unassigned {
		svc.MechanicID = nil
	}
	svc.SetStatus(next, now)
	svc.UpdatedAt = now

	// 3. Persist.
	if err := s.services.Update(ctx, svc); err != nil {
		s.logger.Error().Err(err).Uint("service_id", id).Msg("failed to update service")
		return nil, err
	}

	if next != from {
		s.record(p, svc, domain.EventStatusChanged, from, nil)
		s.logger.Info().
			Uint("service_id", svc.ID).
			Str("from", string(from)).
			Str("to", string(next)).
			Uint("actor_id", p.UserID).
			Msg("service status changed")
	}
	if assigned {
		s.record(p, svc, domain.EventMechanicAssigned, from, nil)
	}
	if unassigned {
		s.record(p, svc, domain.EventMechanicRemoved, from, nil)
	}
	return svc, nil
}

// load fetches a service and authorizes act on it.
func (s *LifecycleService) load(ctx context.Context, p domain.Principal, id uint, act domain.Action) (*domain.Service, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceService, act, svc.Target()); err != nil {
		return nil, err
	}
	return svc, nil
}

// checkAssignee verifies that mechanicID references a mechanic the caller may assign.
func (s *LifecycleService) checkAssignee(ctx context.Context, p domain.Principal, mechanicID uint) error {
	if p.Role == domain.RoleMechanic && mechanicID != p.UserID {
		return errAssignOther
	}
	u, err := s.users.FindByID(ctx, mechanicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidMechanic
		}
		return err
	}
	if u.Role != domain.RoleMechanic {
		return domain.ErrInvalidMechanic
	}
	return nil
}

func (s *LifecycleService) record(p domain.Principal, svc *domain.Service, typ domain.EventType, from domain.ServiceStatus, quote *domain.Quote) {
	recordEvent(s.events, p, svc, typ, from, quote, s.now())
}

// recordEvent hands a lifecycle event to the recorder. A nil recorder is allowed.
func recordEvent(rec ports.EventRecorder, p domain.Principal, svc *domain.Service, typ domain.EventType, from domain.ServiceStatus, quote *domain.Quote, at time.Time) {
	if rec == nil {
		return
	}
	ev := domain.ServiceEvent{
		ServiceID:  svc.ID,
		Type:       typ,
		FromStatus: from,
		ToStatus:   svc.Status,
		ActorID:    p.UserID,
		ActorRole:  p.Role,
		OccurredAt: at.UTC(),
	}
	if svc.MechanicID != nil {
		mid := *svc.MechanicID
		ev.MechanicID = &mid
	}
	if quote != nil {
		qid, amount := quote.ID, quote.Amount
		ev.QuoteID = &qid
		ev.Amount = &amount
	}
	rec.Record(ev)
}
