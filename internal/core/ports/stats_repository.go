package ports

import (
	"context"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
)

// StatsRepository answers the aggregate queries behind the dashboards.
type StatsRepository interface {
	CountUsers(ctx context.Context, role domain.Role) (int64, error)
	CountVehicles(ctx context.Context, vis domain.Visibility) (int64, error)
	StatusCounts(ctx context.Context, vis domain.Visibility) (domain.StatusCounts, error)
	// Revenue sums the bound value of completed services.
	Revenue(ctx context.Context) (float64, error)
	// MechanicWorkloads returns one row per mechanic; completions are counted from since.
	MechanicWorkloads(ctx context.Context, since time.Time) ([]domain.MechanicWorkload, error)
}
