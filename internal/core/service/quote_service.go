package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// QuoteService implements the quote ledger.
type QuoteService struct {
	quotes   ports.QuoteRepository
	services ports.ServiceRepository
	events   ports.EventRecorder
	logger   zerolog.Logger
	now      func() time.Time
}

func NewQuoteService(quotes ports.QuoteRepository, services ports.ServiceRepository, events ports.EventRecorder, logger zerolog.Logger) *QuoteService {
	return &QuoteService{quotes: quotes, services: services, events: events, logger: logger, now: time.Now}
}

// Create appends a quote to a service. A mechanic quoting an unassigned
// service claims it in the same transaction.
func (s *QuoteService) Create(ctx context.Context, p domain.Principal, in ports.CreateQuoteInput) (*domain.Quote, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	if !domain.Can(p.Role, domain.ResourceQuote, domain.ActionCreate) {
		return nil, domain.ErrForbidden
	}

	amount := domain.RoundMoney(in.Amount)
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.Invalid("descricao is required")
	}

	svc, err := s.services.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceQuote, domain.ActionCreate, svc.Target()); err != nil {
		return nil, err
	}

	var claimant *uint
	if p.Role == domain.RoleMechanic && svc.MechanicID == nil {
		id := p.UserID
		claimant = &id
	}

	q := &domain.Quote{
		Description: description,
		Amount:      amount,
		ServiceID:   svc.ID,
		CreatedAt:   s.now().UTC(),
	}
	claimed, err := s.quotes.CreateAndClaim(ctx, q, claimant)
	if err != nil {
		s.logger.Error().Err(err).Uint("service_id", svc.ID).Msg("failed to create quote")
		return nil, err
	}

	if claimed {
		svc.MechanicID = claimant
		recordEvent(s.events, p, svc, domain.EventMechanicAssigned, svc.Status, nil, s.now())
		s.logger.Info().Uint("service_id", svc.ID).Uint("mechanic_id", p.UserID).Msg("service claimed by mechanic")
	}
	recordEvent(s.events, p, svc, domain.EventQuoteCreated, svc.Status, q, s.now())
	s.logger.Info().Uint("quote_id", q.ID).Uint("service_id", svc.ID).Float64("amount", q.Amount).Msg("quote created")

	return q, nil
}

// Approve binds the quote's amount to its service and moves it to
// orcamento_aprovado from any state. Approving another quote later re-binds
// the value: the last approval wins.
func (s *QuoteService) Approve(ctx context.Context, p domain.Principal, quoteID uint) (*domain.Service, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	q, err := s.quotes.FindByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	svc, err := s.services.FindByID(ctx, q.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceQuote, domain.ActionApprove, svc.Target()); err != nil {
		return nil, err
	}

	from := svc.Status
	reapproval := svc.ApprovedQuoteID != nil
	updated, err := s.quotes.Approve(ctx, q.ID, s.now().UTC())
	if err != nil {
		s.logger.Error().Err(err).Uint("quote_id", q.ID).Msg("failed to approve quote")
		return nil, err
	}

	recordEvent(s.events, p, updated, domain.EventQuoteApproved, from, q, s.now())
	s.logger.Info().
		Uint("quote_id", q.ID).
		Uint("service_id", updated.ID).
		Float64("amount", q.Amount).
		Bool("reapproval", reapproval).
		Msg("quote approved")

	return updated, nil
}

func (s *QuoteService) List(ctx context.Context, p domain.Principal, serviceID uint) ([]*domain.Quote, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceQuote, domain.ActionRead, svc.Target()); err != nil {
		return nil, err
	}
	return s.quotes.ListByService(ctx, svc.ID)
}
