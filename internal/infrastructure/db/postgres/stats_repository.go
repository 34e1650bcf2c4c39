package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oficina/workshop/internal/core/domain"
)

// StatsRepository implements ports.StatsRepository with aggregate queries.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Where("tipo = ?", string(role)).Count(&n).Error
	return n, translate("count users", err, nil, nil)
}

func (r *StatsRepository) CountVehicles(ctx context.Context, vis domain.Visibility) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&vehicleRow{}).Scopes(ownedBy(vis, "usuario_id")).Count(&n).Error
	return n, translate("count vehicles", err, nil, nil)
}

func (r *StatsRepository) StatusCounts(ctx context.Context, vis domain.Visibility) (domain.StatusCounts, error) {
	var rows []struct {
		Status string
		N      int64
	}
	err := r.db.WithContext(ctx).
		Table("servicos").
		Joins("JOIN veiculos ON veiculos.id = servicos.veiculo_id").
		Scopes(serviceVisibility(vis)).
		Select("servicos.status AS status, COUNT(*) AS n").
		Group("servicos.status").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("count services", err, nil, nil)
	}

	counts := make(domain.StatusCounts, len(rows))
	for _, row := range rows {
		counts[domain.ServiceStatus(row.Status)] = row.N
	}
	return counts, nil
}

func (r *StatsRepository) Revenue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&serviceRow{}).
		Where("status = ?", string(domain.StatusCompleted)).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&sum).Error
	return domain.RoundMoney(sum), translate("sum revenue", err, nil, nil)
}

// MechanicWorkloads lists every mechanic by name, including those with no work.
func (r *StatsRepository) MechanicWorkloads(ctx context.Context, since time.Time) ([]domain.MechanicWorkload, error) {
	var rows []struct {
		MechanicID         uint
		Name               string
		AwaitingQuote      int64
		InProgress         int64
		CompletedThisMonth int64
		Total              int64
	}
	err := r.db.WithContext(ctx).
		Table("usuarios").
		Select(`usuarios.id AS mechanic_id, usuarios.nome AS name,
			COALESCE(SUM(CASE WHEN servicos.status = ? THEN 1 ELSE 0 END), 0) AS awaiting_quote,
			COALESCE(SUM(CASE WHEN servicos.status = ? THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN servicos.status = ? AND servicos.data_conclusao >= ? THEN 1 ELSE 0 END), 0) AS completed_this_month,
			COUNT(servicos.id) AS total`,
			string(domain.StatusAwaitingQuote), string(domain.StatusInProgress), string(domain.StatusCompleted), since.UTC()).
		Joins("LEFT JOIN servicos ON servicos.mecanico_id = usuarios.id").
		Where("usuarios.tipo = ?", string(domain.RoleMechanic)).
		Group("usuarios.id, usuarios.nome").
		Order("usuarios.nome ASC, usuarios.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("mechanic workloads", err, nil, nil)
	}

	out := make([]domain.MechanicWorkload, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.MechanicWorkload(row))
	}
	return out, nil
}
