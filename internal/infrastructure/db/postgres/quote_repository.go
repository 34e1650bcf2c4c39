package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/oficina/workshop/internal/core/domain"
)

// QuoteRepository implements ports.QuoteRepository using gorm.
type QuoteRepository struct {
	db *gorm.DB
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// CreateAndClaim inserts the quote and, for a non-nil claimant, assigns the
// service only if it is still unassigned.
func (r *QuoteRepository) CreateAndClaim(ctx context.Context, q *domain.Quote, claimant *uint) (bool, error) {
	var claimed bool
	row := newQuoteRow(q)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		if claimant == nil {
			return nil
		}
		res := tx.Model(&serviceRow{}).
			Where("id = ? AND mecanico_id IS NULL", q.ServiceID).
			Updates(map[string]any{"mecanico_id": *claimant, "atualizado_em": q.CreatedAt})
		if res.Error != nil {
			return res.Error
		}
		claimed = res.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, translate("insert quote", err, nil, nil)
	}

	q.ID = row.ID
	return claimed, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uint) (*domain.Quote, error) {
	var row quoteRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translate("find quote", err, domain.ErrQuoteNotFound, nil)
	}
	return row.toDomain(), nil
}

func (r *QuoteRepository) ListByService(ctx context.Context, serviceID uint) ([]*domain.Quote, error) {
	var rows []quoteRow
	err := r.db.WithContext(ctx).
		Where("servico_id = ?", serviceID).
		Order("criado_em DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, translate("list quotes", err, nil, nil)
	}
	out := make([]*domain.Quote, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

// Approve stamps the quote and binds its amount to the service in one
// transaction. Concurrent approvals resolve as last commit wins.
func (r *QuoteRepository) Approve(ctx context.Context, quoteID uint, at time.Time) (*domain.Service, error) {
	var svc *domain.Service

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q quoteRow
		if err := tx.First(&q, quoteID).Error; err != nil {
			return translate("find quote", err, domain.ErrQuoteNotFound, nil)
		}

		if err := tx.Model(&quoteRow{ID: q.ID}).Update("aprovado_em", at).Error; err != nil {
			return err
		}
		res := tx.Model(&serviceRow{ID: q.ServiceID}).Updates(map[string]any{
			"status":                string(domain.StatusQuoteApproved),
			"valor":                 q.Amount,
			"orcamento_aprovado_id": q.ID,
			"atualizado_em":         at,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrServiceNotFound
		}

		var err error
		svc, err = findService(tx, q.ServiceID)
		return err
	})
	if err != nil {
		return nil, translate("approve quote", err, nil, nil)
	}
	return svc, nil
}
