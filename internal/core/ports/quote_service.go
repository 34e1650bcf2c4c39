package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// CreateQuoteInput carries a new quote for a service.
type CreateQuoteInput struct {
	ServiceID   uint
	Description string
	Amount      float64
}

// QuoteService defines the quote ledger use cases.
type QuoteService interface {
	Create(ctx context.Context, p domain.Principal, in CreateQuoteInput) (*domain.Quote, error)
	// Approve binds the quote to its service and returns the updated service.
	Approve(ctx context.Context, p domain.Principal, quoteID uint) (*domain.Service, error)
	List(ctx context.Context, p domain.Principal, serviceID uint) ([]*domain.Quote, error)
}
