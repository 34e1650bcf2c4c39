package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

var errRoleChangeForbidden = domain.NewError(domain.ErrAccessDenied, "only managers can change the user type")

// UserService implements account management.
type UserService struct {
	users    ports.UserRepository
	vehicles ports.VehicleRepository
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, vehicles ports.VehicleRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, vehicles: vehicles, logger: logger}
}

// List never fails on permissions: non-managers only get their own profile.
func (s *UserService) List(ctx context.Context, p domain.Principal, role string) ([]*domain.User, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	filter := ports.UserFilter{Visibility: domain.VisibilityFor(p, domain.ResourceUser)}
	if role != "" {
		r, err := domain.ParseRole(role)
		if err != nil {
			return nil, err
		}
		filter.Role = r
	}
	if filter.Visibility.Scope == domain.ScopeNone {
		return []*domain.User{}, nil
	}
	return s.users.List(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, p domain.Principal, id uint) (*ports.UserDetail, error) {
	if err := domain.Authorize(p, domain.ResourceUser, domain.ActionRead, domain.Target{OwnerID: id}); err != nil {
		return nil, err
	}
	return loadUserDetail(ctx, s.users, s.vehicles, id)
}

func (s *UserService) Create(ctx context.Context, p domain.Principal, in ports.CreateUserInput) (*domain.User, error) {
	if err := domain.Authorize(p, domain.ResourceUser, domain.ActionCreate, domain.Target{}); err != nil {
		return nil, err
	}

	user, err := newUser(ctx, s.users, in.Name, in.Email, in.Password, in.Phone, in.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Uint("created_by", p.UserID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *UserService) Update(ctx context.Context, p domain.Principal, id uint, in ports.UpdateUserInput) (*domain.User, error) {
	if err := domain.Authorize(p, domain.ResourceUser, domain.ActionUpdate, domain.Target{OwnerID: id}); err != nil {
		return nil, err
	}
	if in.Role != nil && p.Role != domain.RoleManager {
		return nil, errRoleChangeForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Invalid("nome must not be empty")
		}
		user.Name = name
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return nil, domain.Invalid("email must not be empty")
		}
		existing, err := s.users.FindByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != id:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
		user.Email = email
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if in.Phone != nil {
		user.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Role != nil {
		r, err := domain.ParseRole(*in.Role)
		if err != nil {
			return nil, err
		}
		user.Role = r
	}

	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Uint("user_id", id).Msg("failed to update user")
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if err := domain.Authorize(p, domain.ResourceUser, domain.ActionDelete, domain.Target{OwnerID: id}); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Uint("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Uint("user_id", id).Uint("deleted_by", p.UserID).Msg("user deleted")
	return nil
}
