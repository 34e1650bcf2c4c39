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

const maxPlateLen = 10

// VehicleService implements the vehicle registry.
type VehicleService struct {
	vehicles ports.VehicleRepository
	users    ports.UserRepository
	services ports.ServiceRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewVehicleService(vehicles ports.VehicleRepository, users ports.UserRepository, services ports.ServiceRepository, logger zerolog.Logger) *VehicleService {
	return &VehicleService{vehicles: vehicles, users: users, services: services, logger: logger, now: time.Now}
}

func (s *VehicleService) Create(ctx context.Context, p domain.Principal, in ports.CreateVehicleInput) (*domain.Vehicle, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}

	ownerID := p.UserID
	if p.Role == domain.RoleManager && in.OwnerID != 0 {
		ownerID = in.OwnerID
	}
	if err := domain.Authorize(p, domain.ResourceVehicle, domain.ActionCreate, domain.Target{OwnerID: ownerID}); err != nil {
		return nil, err
	}

	v := &domain.Vehicle{
		Plate:     domain.NormalizePlate(in.Plate),
		Make:      strings.TrimSpace(in.Make),
		Model:     strings.TrimSpace(in.Model),
		Year:      in.Year,
		Color:     strings.TrimSpace(in.Color),
		OwnerID:   ownerID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.validate(v); err != nil {
		return nil, err
	}

	if ownerID != p.UserID {
		if _, err := s.users.FindByID(ctx, ownerID); err != nil {
			return nil, err
		}
	}
	if err := s.ensurePlateFree(ctx, v.Plate, 0); err != nil {
		return nil, err
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		s.logger.Error().Err(err).Str("plate", v.Plate).Msg("failed to create vehicle")
		return nil, err
	}

	s.logger.Info().Uint("vehicle_id", v.ID).Str("plate", v.Plate).Uint("owner_id", ownerID).Msg("vehicle created")
	return v, nil
}

func (s *VehicleService) Get(ctx context.Context, p domain.Principal, id uint) (*ports.VehicleDetail, error) {
	v, err := s.authorized(ctx, p, id, domain.ActionRead)
	if err != nil {
		return nil, err
	}

	services, err := s.services.List(ctx, ports.ServiceFilter{
		Visibility: domain.VisibilityFor(p, domain.ResourceService),
		VehicleID:  v.ID,
	})
	if err != nil {
		return nil, err
	}
	return &ports.VehicleDetail{Vehicle: v, Services: services}, nil
}

func (s *VehicleService) List(ctx context.Context, p domain.Principal) ([]*domain.Vehicle, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	vis := domain.VisibilityFor(p, domain.ResourceVehicle)
	if vis.Scope == domain.ScopeNone {
		return []*domain.Vehicle{}, nil
	}
	return s.vehicles.List(ctx, vis)
}

func (s *VehicleService) Update(ctx context.Context, p domain.Principal, id uint, in ports.UpdateVehicleInput) (*domain.Vehicle, error) {
	v, err := s.authorized(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}

	if in.Plate != nil {
		v.Plate = domain.NormalizePlate(*in.Plate)
	}
	if in.Make != nil {
		v.Make = strings.TrimSpace(*in.Make)
	}
	if in.Model != nil {
		v.Model = strings.TrimSpace(*in.Model)
	}
	if in.Year != nil {
		v.Year = *in.Year
	}
	if in.Color != nil {
		v.Color = strings.TrimSpace(*in.Color)
	}
	if err := s.validate(v); err != nil {
		return nil, err
	}
	if in.Plate != nil {
		if err := s.ensurePlateFree(ctx, v.Plate, v.ID); err != nil {
			return nil, err
		}
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		s.logger.Error().Err(err).Uint("vehicle_id", id).Msg("failed to update vehicle")
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, p domain.Principal, id uint) error {
	if _, err := s.authorized(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.vehicles.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("vehicle_id", id).Uint("deleted_by", p.UserID).Msg("vehicle deleted")
	return nil
}

// authorized loads the vehicle and checks act against its owner.
func (s *VehicleService) authorized(ctx context.Context, p domain.Principal, id uint, act domain.Action) (*domain.Vehicle, error) {
	if !p.Valid() {
		return nil, domain.ErrNotAuthenticated
	}
	v, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ResourceVehicle, act, domain.Target{OwnerID: v.OwnerID}); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) validate(v *domain.Vehicle) error {
	switch {
	case v.Plate == "":
		return domain.Invalid("placa is required")
	case len(v.Plate) > maxPlateLen:
		return domain.Invalid("placa must have at most 10 characters")
	case v.Make == "":
		return domain.Invalid("marca is required")
	case v.Model == "":
		return domain.Invalid("modelo is required")
	case !domain.ValidYear(v.Year, s.now()):
		return domain.Invalid("ano is out of range")
	}
	return nil
}

func (s *VehicleService) ensurePlateFree(ctx context.Context, plate string, selfID uint) error {
	existing, err := s.vehicles.FindByPlate(ctx, plate)
	switch {
	case err == nil && existing.ID != selfID:
		return domain.ErrPlateTaken
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return err
	}
	return nil
}
