package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// UserRepository implements ports.UserRepository using gorm.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	row := newUserRow(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translate("insert user", err, nil, domain.ErrEmailTaken)
	}
	u.ID = row.ID
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("find user", err, domain.ErrUserNotFound, nil)
	}
	return row.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, translate("find user by email", err, domain.ErrUserNotFound, nil)
	}
	return row.toDomain(), nil
}

// List orders users by name.
func (r *UserRepository) List(ctx context.Context, f ports.UserFilter) ([]*domain.User, error) {
	q := r.db.WithContext(ctx).Model(&userRow{}).Scopes(ownedBy(f.Visibility, "id"))
	if f.Role != "" {
		q = q.Where("tipo = ?", string(f.Role))
	}

	var rows []userRow
	if err := q.Order("nome ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, translate("list users", err, nil, nil)
	}
	out := make([]*domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

// Update saves u. A user who is no longer a mechanic is unassigned from
// every service in the same transaction.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userRow{ID: u.ID}).Select("*").Omit("id").Updates(newUserRow(u))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		if u.Role == domain.RoleMechanic {
			return nil
		}
		return tx.Model(&serviceRow{}).Where("mecanico_id = ?", u.ID).Update("mecanico_id", nil).Error
	})
	return translate("update user", err, nil, domain.ErrEmailTaken)
}

// Delete removes the user, their vehicles with those vehicles' services and
// quotes, and unassigns them from other services, in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vehicles := tx.Model(&vehicleRow{}).Select("id").Where("usuario_id = ?", id)
		services := tx.Model(&serviceRow{}).Select("id").Where("veiculo_id IN (?)", vehicles)

		if err := tx.Where("servico_id IN (?)", services).Delete(&quoteRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("veiculo_id IN (?)", vehicles).Delete(&serviceRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("usuario_id = ?", id).Delete(&vehicleRow{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&serviceRow{}).Where("mecanico_id = ?", id).Update("mecanico_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&userRow{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
	return translate("delete user", err, nil, nil)
}
