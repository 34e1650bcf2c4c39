package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/oficina/workshop/internal/core/domain"
)

// Visibility predicates. Each takes the domain visibility and the column
// that identifies ownership for the queried table.

func ownedBy(vis domain.Visibility, ownerColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch vis.Scope {
		case domain.ScopeAll:
			return db
		case domain.ScopeOwn:
			return db.Where(ownerColumn+" = ?", vis.UserID)
		}
		return db.Where("1 = 0")
	}
}

// serviceVisibility expects the veiculos join to be present.
func serviceVisibility(vis domain.Visibility) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch vis.Scope {
		case domain.ScopeAll:
			return db
		case domain.ScopeOwn:
			return db.Where("veiculos.usuario_id = ?", vis.UserID)
		case domain.ScopeAssigned:
			return db.Where("servicos.mecanico_id = ?", vis.UserID)
		case domain.ScopeQueue:
			return db.Where("(servicos.mecanico_id = ? OR (servicos.mecanico_id IS NULL AND servicos.status = ?))",
				vis.UserID, string(domain.StatusAwaitingQuote))
		}
		return db.Where("1 = 0")
	}
}

// servicesJoined starts a servicos query carrying the vehicle owner.
func servicesJoined(db *gorm.DB) *gorm.DB {
	return db.Table("servicos").
		Select("servicos.*, veiculos.usuario_id AS owner_id").
		Joins("JOIN veiculos ON veiculos.id = servicos.veiculo_id")
}

// translate maps gorm failures onto domain errors. notFound is returned for
// missing records and conflict for unique violations; either may be nil.
func translate(op string, err error, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case conflict != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict
	}
	return domain.Persistence(op, err)
}
