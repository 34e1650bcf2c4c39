package ports

import (
	"context"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
)

// QuoteRepository handles quote persistence and the service mutations that
// quotes trigger. Each method is a single transaction.
type QuoteRepository interface {
	// CreateAndClaim inserts q. When claimant is non-nil and the service is
	// still unassigned, the service is assigned to claimant in the same
	// transaction; claimed reports whether that happened.
	CreateAndClaim(ctx context.Context, q *domain.Quote, claimant *uint) (claimed bool, err error)
	FindByID(ctx context.Context, id uint) (*domain.Quote, error)
	// ListByService returns a service's quotes, newest first.
	ListByService(ctx context.Context, serviceID uint) ([]*domain.Quote, error)
	// Approve sets the quote's service to StatusQuoteApproved, binds its value
	// to the quote amount and stamps the quote as approved at the given time.
	Approve(ctx context.Context, quoteID uint, at time.Time) (*domain.Service, error)
}
