package postgres

import (
	"time"

	"github.com/oficina/workshop/internal/core/domain"
)

type userRow struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"column:nome;size:100;not null"`
	Email        string    `gorm:"column:email;size:120;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:senha_hash;size:255;not null"`
	Phone        string    `gorm:"column:telefone;size:20"`
	Role         string    `gorm:"column:tipo;size:20;not null;index"`
	CreatedAt    time.Time `gorm:"column:data_cadastro;autoCreateTime:false"`
}

func (userRow) TableName() string { return "usuarios" }

func newUserRow(u *domain.User) *userRow {
	return &userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
	}
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Phone:        r.Phone,
		Role:         domain.Role(r.Role),
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

type vehicleRow struct {
	ID        uint      `gorm:"primaryKey"`
	Plate     string    `gorm:"column:placa;size:10;not null;uniqueIndex"`
	Make      string    `gorm:"column:marca;size:50;not null"`
	Model     string    `gorm:"column:modelo;size:50;not null"`
	Year      int       `gorm:"column:ano;not null"`
	Color     string    `gorm:"column:cor;size:30"`
	OwnerID   uint      `gorm:"column:usuario_id;not null;index"`
	CreatedAt time.Time `gorm:"column:criado_em;autoCreateTime:false"`
}

func (vehicleRow) TableName() string { return "veiculos" }

func newVehicleRow(v *domain.Vehicle) *vehicleRow {
	return &vehicleRow{
		ID:        v.ID,
		Plate:     v.Plate,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		OwnerID:   v.OwnerID,
		CreatedAt: v.CreatedAt,
	}
}

func (r *vehicleRow) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:        r.ID,
		Plate:     r.Plate,
		Make:      r.Make,
		Model:     r.Model,
		Year:      r.Year,
		Color:     r.Color,
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

type serviceRow struct {
	ID              uint       `gorm:"primaryKey"`
	Description     string     `gorm:"column:descricao;type:text;not null"`
	Notes           string     `gorm:"column:observacoes;type:text"`
	Status          string     `gorm:"column:status;size:30;not null;index"`
	Value           *float64   `gorm:"column:valor;type:numeric(10,2)"`
	VehicleID       uint       `gorm:"column:veiculo_id;not null;index"`
	MechanicID      *uint      `gorm:"column:mecanico_id;index"`
	ApprovedQuoteID *uint      `gorm:"column:orcamento_aprovado_id"`
	CreatedAt       time.Time  `gorm:"column:criado_em;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"column:atualizado_em;autoUpdateTime:false"`
	ExpectedAt      *time.Time `gorm:"column:data_previsao"`
	CompletedAt     *time.Time `gorm:"column:data_conclusao"`
}

func (serviceRow) TableName() string { return "servicos" }

// serviceView is a service joined with its vehicle owner.
type serviceView struct {
	Service serviceRow `gorm:"embedded"`
	OwnerID uint       `gorm:"column:owner_id"`
}

func newServiceRow(s *domain.Service) *serviceRow {
	return &serviceRow{
		ID:              s.ID,
		Description:     s.Description,
		Notes:           s.Notes,
		Status:          string(s.Status),
		Value:           s.Value,
		VehicleID:       s.VehicleID,
		MechanicID:      s.MechanicID,
		ApprovedQuoteID: s.ApprovedQuoteID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		ExpectedAt:      s.ExpectedAt,
		CompletedAt:     s.CompletedAt,
	}
}

func (v *serviceView) toDomain() *domain.Service {
	r := &v.Service
	return &domain.Service{
		ID:              r.ID,
		Description:     r.Description,
		Notes:           r.Notes,
		Status:          domain.ServiceStatus(r.Status),
		Value:           r.Value,
		VehicleID:       r.VehicleID,
		MechanicID:      r.MechanicID,
		ApprovedQuoteID: r.ApprovedQuoteID,
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
		ExpectedAt:      utcPtr(r.ExpectedAt),
		CompletedAt:     utcPtr(r.CompletedAt),
		OwnerID:         v.OwnerID,
	}
}

type quoteRow struct {
	ID          uint       `gorm:"primaryKey"`
	Description string     `gorm:"column:descricao;type:text;not null"`
	Amount      float64    `gorm:"column:valor;type:numeric(10,2);not null"`
	ServiceID   uint       `gorm:"column:servico_id;not null;index"`
	CreatedAt   time.Time  `gorm:"column:criado_em;autoCreateTime:false"`
	ApprovedAt  *time.Time `gorm:"column:aprovado_em"`
}

func (quoteRow) TableName() string { return "orcamentos" }

func newQuoteRow(q *domain.Quote) *quoteRow {
	return &quoteRow{
		ID:          q.ID,
		Description: q.Description,
		Amount:      q.Amount,
		ServiceID:   q.ServiceID,
		CreatedAt:   q.CreatedAt,
		ApprovedAt:  q.ApprovedAt,
	}
}

func (r *quoteRow) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		ServiceID:   r.ServiceID,
		CreatedAt:   r.CreatedAt.UTC(),
		ApprovedAt:  utcPtr(r.ApprovedAt),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
