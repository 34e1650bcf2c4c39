package web

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

const phoneDigits = 11

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"senha"`
}

// registerForm is the public sign-up form. It always creates clients.
type registerForm struct {
	Name            string `form:"nome"`
	Email           string `form:"email"`
	Phone           string `form:"telefone"`
	Password        string `form:"senha"`
	PasswordConfirm string `form:"senha_confirm"`
}

// validate applies the sign-up rules and returns the cleaned phone digits.
func (f *registerForm) validate() (string, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	phone := nonDigits.ReplaceAllString(f.Phone, "")

	switch {
	case len([]rune(f.Name)) < 3:
		return "", domain.Invalid("O nome deve ter pelo menos 3 caracteres.")
	case !emailPattern.MatchString(f.Email):
		return "", domain.Invalid("Digite um email válido.")
	case len(phone) != phoneDigits:
		return "", domain.Invalid("O telefone deve ter 11 dígitos (DDD + número).")
	case len(f.Password) < 6:
		return "", domain.Invalid("A senha deve ter pelo menos 6 caracteres.")
	case f.Password != f.PasswordConfirm:
		return "", domain.Invalid("As senhas não coincidem.")
	}
	return phone, nil
}

type vehicleForm struct {
	Plate   string `form:"placa"      validate:"required"`
	Make    string `form:"marca"      validate:"required"`
	Model   string `form:"modelo"     validate:"required"`
	Year    int    `form:"ano"        validate:"required"`
	Color   string `form:"cor"`
	OwnerID uint   `form:"usuario_id"`
}

type requestServiceForm struct {
	VehicleID   uint   `form:"veiculo_id" validate:"required"`
	Description string `form:"descricao"  validate:"required"`
}

// serviceForm is the staff form for creating and editing services.
type serviceForm struct {
	VehicleID   uint   `form:"veiculo_id"`
	Description string `form:"descricao"`
	Notes       string `form:"observacoes"`
	Status      string `form:"status"`
	MechanicID  string `form:"mecanico_id"`
	ExpectedAt  string `form:"data_previsao"`
}

func (f serviceForm) mechanic() (*uint, error) {
	if strings.TrimSpace(f.MechanicID) == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(strings.TrimSpace(f.MechanicID), 10, 64)
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidMechanic
	}
	v := uint(id)
	return &v, nil
}

func (f serviceForm) expected() (*time.Time, error) {
	if strings.TrimSpace(f.ExpectedAt) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(f.ExpectedAt))
	if err != nil {
		return nil, domain.Invalid("Data de previsão inválida.")
	}
	return &t, nil
}

type quoteForm struct {
	Description string `form:"descricao" validate:"required"`
	Amount      string `form:"valor"     validate:"required"`
}

// amount accepts both "250.00" and "250,00".
func (f quoteForm) amount() (float64, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(f.Amount), "R$"))
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.Invalid("Valor inválido.")
	}
	return v, nil
}

type userForm struct {
	Name     string `form:"nome"     validate:"required"`
	Email    string `form:"email"    validate:"required,email"`
	Phone    string `form:"telefone"`
	Password string `form:"senha"    validate:"required,min=6"`
	Role     string `form:"tipo"     validate:"required"`
}
