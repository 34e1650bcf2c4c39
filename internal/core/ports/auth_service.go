package ports

import (
	"context"

	"github.com/oficina/workshop/internal/core/domain"
)

// RegisterInput carries the self-registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

// AuthService issues and checks credentials.
type AuthService interface {
	// Register creates the account and returns it with a fresh token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate verifies credentials without issuing a token.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// ParseToken resolves a bearer token into a principal.
	ParseToken(token string) (domain.Principal, error)
	Profile(ctx context.Context, p domain.Principal) (*UserDetail, error)
}
