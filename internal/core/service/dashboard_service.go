package service

import (
	"context"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

const (
	managerRecentServices = 15
	clientRecentServices  = 10
)

// DashboardService builds the role-specific dashboards.
type DashboardService struct {
	stats    ports.StatsRepository
	services ports.ServiceRepository
	vehicles ports.VehicleRepository
	now      func() time.Time
}

func NewDashboardService(stats ports.StatsRepository, services ports.ServiceRepository, vehicles ports.VehicleRepository) *DashboardService {
	return &DashboardService{stats: stats, services: services, vehicles: vehicles, now: time.Now}
}

func (s *DashboardService) Dashboard(ctx context.Context, p domain.Principal) (*ports.Dashboard, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	switch p.Role {
	case domain.RoleManager:
		return s.manager(ctx)
	case domain.RoleMechanic:
		return s.mechanic(ctx, p)
	default:
		return s.client(ctx, p)
	}
}

func (s *DashboardService) manager(ctx context.Context) (*ports.Dashboard, error) {
	all := domain.Visibility{Scope: domain.ScopeAll}

	counts, err := s.stats.StatusCounts(ctx, all)
	if err != nil {
		return nil, err
	}
	clients, err := s.stats.CountUsers(ctx, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	mechanics, err := s.stats.CountUsers(ctx, domain.RoleMechanic)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.stats.CountVehicles(ctx, all)
	if err != nil {
		return nil, err
	}
	revenue, err := s.stats.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	workloads, err := s.stats.MechanicWorkloads(ctx, monthStart(s.now()))
	if err != nil {
		return nil, err
	}
	recent, err := s.services.List(ctx, ports.ServiceFilter{Visibility: all, Limit: managerRecentServices})
	if err != nil {
		return nil, err
	}

	return &ports.Dashboard{
		Role: domain.RoleManager,
		Stats: ports.DashboardStats{
			TotalClients:   clients,
			TotalMechanics: mechanics,
			TotalVehicles:  vehicles,
			TotalServices:  counts.Total(),
			ActiveServices: counts.Active(),
			Revenue:        revenue,
			ByStatus:       counts,
		},
		Workloads: workloads,
		Services:  recent,
	}, nil
}

func (s *DashboardService) mechanic(ctx context.Context, p domain.Principal) (*ports.Dashboard, error) {
	queue := domain.Visibility{Scope: domain.ScopeQueue, UserID: p.UserID}
	mine := domain.Visibility{Scope: domain.ScopeAssigned, UserID: p.UserID}

	queueCounts, err := s.stats.StatusCounts(ctx, queue)
	if err != nil {
		return nil, err
	}
	own, err := s.stats.StatusCounts(ctx, mine)
	if err != nil {
		return nil, err
	}
	work, err := s.services.List(ctx, ports.ServiceFilter{Visibility: queue, Statuses: domain.ActiveStatuses})
	if err != nil {
		return nil, err
	}

	return &ports.Dashboard{
		Role: domain.RoleMechanic,
		Stats: ports.DashboardStats{
			TotalServices:  own.Total(),
			ActiveServices: own.Active(),
			AwaitingQuote:  queueCounts[domain.StatusAwaitingQuote],
			ByStatus:       own,
		},
		Services: work,
	}, nil
}

func (s *DashboardService) client(ctx context.Context, p domain.Principal) (*ports.Dashboard, error) {
	vis := domain.VisibilityFor(p, domain.ResourceService)

	counts, err := s.stats.StatusCounts(ctx, vis)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.List(ctx, domain.VisibilityFor(p, domain.ResourceVehicle))
	if err != nil {
		return nil, err
	}
	recent, err := s.services.List(ctx, ports.ServiceFilter{Visibility: vis, Limit: clientRecentServices})
	if err != nil {
		return nil, err
	}

	return &ports.Dashboard{
		Role: domain.RoleClient,
		Stats: ports.DashboardStats{
			TotalVehicles:  int64(len(vehicles)),
			TotalServices:  counts.Total(),
			ActiveServices: counts.Active(),
			ByStatus:       counts,
		},
		Vehicles: vehicles,
		Services: recent,
	}, nil
}

func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
