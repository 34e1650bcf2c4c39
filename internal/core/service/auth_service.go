package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// AuthService implements registration, login and token resolution.
type AuthService struct {
	users    ports.UserRepository
	vehicles ports.VehicleRepository
	tokens   *TokenManager
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, vehicles ports.VehicleRepository, tokens *TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, vehicles: vehicles, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	user, err := newUser(ctx, s.users, in.Name, in.Email, in.Password, in.Phone, in.Role)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate never reveals whether the email exists.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.Invalid("email and senha are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !checkPassword(user.PasswordHash, password) {
		s.logger.Warn().Str("email", email).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) ParseToken(token string) (domain.Principal, error) {
	return s.tokens.Parse(token)
}

func (s *AuthService) Profile(ctx context.Context, p domain.Principal) (*ports.UserDetail, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	return loadUserDetail(ctx, s.users, s.vehicles, p.UserID)
}

// newUser validates and persists an account. It is shared by self
// registration and manager-created users.
func newUser(ctx context.Context, users ports.UserRepository, name, email, password, phone, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	switch {
	case name == "":
		return nil, domain.Invalid("nome is required")
	case email == "":
		return nil, domain.Invalid("email is required")
	case password == "":
		return nil, domain.Invalid("senha is required")
	case role == "":
		return nil, domain.Invalid("tipo is required")
	}

	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(phone),
		Role:         r,
		CreatedAt:    time.Now().UTC(),
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func loadUserDetail(ctx context.Context, users ports.UserRepository, vehicles ports.VehicleRepository, id uint) (*ports.UserDetail, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	owned, err := vehicles.List(ctx, domain.Visibility{Scope: domain.ScopeOwn, UserID: id})
	if err != nil {
		return nil, err
	}
	return &ports.UserDetail{User: user, Vehicles: owned}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
