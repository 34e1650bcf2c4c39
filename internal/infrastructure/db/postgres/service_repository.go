package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// ServiceRepository implements ports.ServiceRepository using gorm.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	row := newServiceRow(s)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("insert service", err, nil, nil)
	}
	s.ID = row.ID
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*domain.Service, error) {
	return findService(r.db.WithContext(ctx), id)
}

func (r *ServiceRepository) List(ctx context.Context, f ports.ServiceFilter) ([]*domain.Service, error) {
	q := servicesJoined(r.db.WithContext(ctx)).Scopes(serviceVisibility(f.Visibility))
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, st := range f.Statuses {
			statuses[i] = string(st)
		}
		q = q.Where("servicos.status IN ?", statuses)
	}
	if f.VehicleID != 0 {
		q = q.Where("servicos.veiculo_id = ?", f.VehicleID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []serviceView
	if err := q.Order("servicos.criado_em DESC, servicos.id DESC").Find(&rows).Error; err != nil {
		return nil, translate("list services", err, nil, nil)
	}
	out := make([]*domain.Service, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	res := r.db.WithContext(ctx).Model(&serviceRow{ID: s.ID}).Select("*").Omit("id", "veiculo_id").Updates(newServiceRow(s))
	if res.Error != nil {
		return translate("update service", res.Error, nil, nil)
	}
	if res.RowsAffected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func findService(db *gorm.DB, id uint) (*domain.Service, error) {
	var row serviceView
	if err := servicesJoined(db).Where("servicos.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate("find service", err, domain.ErrServiceNotFound, nil)
	}
	return row.toDomain(), nil
}
