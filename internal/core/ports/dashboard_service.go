package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// DashboardStats holds the aggregate counters. Fields not relevant to the
// caller's role are left zero.
type DashboardStats struct {
	TotalClients   int64
	TotalMechanics int64
	TotalVehicles  int64
	TotalServices  int64
	ActiveServices int64
	AwaitingQuote  int64 // mechanic: queue plus own services awaiting a quote
	Revenue        float64
	ByStatus       domain.StatusCounts
}

// Dashboard is the role-specific landing view.
type Dashboard struct {
	Role      domain.Role
	Stats     DashboardStats
	Workloads []domain.MechanicWorkload // manager only
	Vehicles  []*domain.Vehicle         // client only
	// Services is the recent list for managers and clients, and the work
	// queue for mechanics.
	Services []*domain.Service
}

// DashboardService builds dashboards.
type DashboardService interface {
	Dashboard(ctx context.Context, p domain.Principal) (*Dashboard, error)
}

// HistoryService reads the audit trail of a service.
type HistoryService interface {
	History(ctx context.Context, p domain.Principal, serviceID uint) ([]*domain.ServiceEvent, error)
}
