package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficina/workshop/internal/core/domain"
)

// VehicleRepository implements ports.VehicleRepository using gorm.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	row := newVehicleRow(v)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("insert vehicle", err, nil, domain.ErrPlateTaken)
	}
	v.ID = row.ID
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uint) (*domain.Vehicle, error) {
	var row vehicleRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("find vehicle", err, domain.ErrVehicleNotFound, nil)
	}
	return row.toDomain(), nil
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	var row vehicleRow
	if err := r.db.WithContext(ctx).Where("placa = ?", plate).First(&row).Error; err != nil {
		return nil, translate("find vehicle by plate", err, domain.ErrVehicleNotFound, nil)
	}
	return row.toDomain(), nil
}

func (r *VehicleRepository) List(ctx context.Context, vis domain.Visibility) ([]*domain.Vehicle, error) {
	var rows []vehicleRow
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(vis, "usuario_id")).
		Order("criado_em DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translate("list vehicles", err, nil, nil)
	}
	out := make([]*domain.Vehicle, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	res := r.db.WithContext(ctx).Model(&vehicleRow{ID: v.ID}).Select("*").Omit("id").Updates(newVehicleRow(v))
	if res.Error != nil {
		return translate("update vehicle", res.Error, nil, domain.ErrPlateTaken)
	}
	if res.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// Delete refuses while any service references the vehicle.
func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&serviceRow{}).Where("veiculo_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrVehicleHasServices
		}
		res := tx.Delete(&vehicleRow{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrVehicleNotFound
		}
		return nil
	})
	return translate("delete vehicle", err, nil, nil)
}
