package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

func TestVehicleCreate_ClientOwnsIt(t *testing.T) {
	f := newFixture(t)
	v, err := f.vehicle.Create(context.Background(), f.client, ports.CreateVehicleInput{
		Plate: " def5678 ", Make: "VW", Model: "Gol", Year: 2020,
		OwnerID: f.client2.UserID, // ignored for clients
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.OwnerID != f.client.UserID {
		t.Errorf("client vehicles must belong to the caller, got owner %d", v.OwnerID)
	}
	if v.Plate != "DEF5678" {
		t.Errorf("plate not normalized: %q", v.Plate)
	}
}

func TestVehicleCreate_ManagerForAnotherOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v, err := f.vehicle.Create(ctx, f.manager, ports.CreateVehicleInput{
		Plate: "GHI0001", Make: "Ford", Model: "Ka", Year: 2018, OwnerID: f.client2.UserID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.OwnerID != f.client2.UserID {
		t.Errorf("expected owner %d, got %d", f.client2.UserID, v.OwnerID)
	}

	_, err = f.vehicle.Create(ctx, f.manager, ports.CreateVehicleInput{
		Plate: "GHI0002", Make: "Ford", Model: "Ka", Year: 2018, OwnerID: 999,
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown owner: expected ErrUserNotFound, got %v", err)
	}
}

func TestVehicleCreate_MechanicForbidden(t *testing.T) {
	f := newFixture(t)
	_, err := f.vehicle.Create(context.Background(), f.mechanic, ports.CreateVehicleInput{
		Plate: "MEC0001", Make: "VW", Model: "Gol", Year: 2020,
	})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestVehicleCreate_Validation(t *testing.T) {
	f := newFixture(t)
	f.vehicle.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	cases := []struct {
		name string
		in   ports.CreateVehicleInput
		want error
	}{
		{"missing plate", ports.CreateVehicleInput{Make: "VW", Model: "Gol", Year: 2020}, domain.ErrValidation},
		{"long plate", ports.CreateVehicleInput{Plate: "ABCDEFGHIJK", Make: "VW", Model: "Gol", Year: 2020}, domain.ErrValidation},
		{"missing make", ports.CreateVehicleInput{Plate: "A1", Model: "Gol", Year: 2020}, domain.ErrValidation},
		{"year too old", ports.CreateVehicleInput{Plate: "A1", Make: "VW", Model: "Gol", Year: 1899}, domain.ErrValidation},
		{"year too new", ports.CreateVehicleInput{Plate: "A1", Make: "VW", Model: "Gol", Year: 2026}, domain.ErrValidation},
		{"duplicate plate", ports.CreateVehicleInput{Plate: "abc1234", Make: "VW", Model: "Gol", Year: 2020}, domain.ErrPlateTaken},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.vehicle.Create(ctx, f.client, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := f.vehicle.Create(ctx, f.client, ports.CreateVehicleInput{Plate: "NEXT001", Make: "VW", Model: "Gol", Year: 2025}); err != nil {
		t.Fatalf("next model year should be accepted: %v", err)
	}
}

func TestVehicleList_Visibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		p    domain.Principal
		want int
	}{
		{"client", f.client, 1},
		{"mechanic", f.mechanic, 2},
		{"manager", f.manager, 2},
	} {
		got, err := f.vehicle.List(ctx, tc.p)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(got) != tc.want {
			t.Errorf("%s: expected %d vehicles, got %d", tc.name, tc.want, len(got))
		}
	}
}

func TestVehicleGet_OtherClientForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.vehicle.Get(ctx, f.client, f.client2Car.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
	if _, err := f.vehicle.Get(ctx, f.client, 999); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	svc := f.request(t)
	detail, err := f.vehicle.Get(ctx, f.client, f.clientCar.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Services) != 1 || detail.Services[0].ID != svc.ID {
		t.Errorf("expected the vehicle's service, got %+v", detail.Services)
	}
}

func TestVehicleUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.vehicle.Update(ctx, f.mechanic, f.clientCar.ID, ports.UpdateVehicleInput{Color: strPtr("Azul")}); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("mechanic update: expected access denied, got %v", err)
	}
	if _, err := f.vehicle.Update(ctx, f.client, f.clientCar.ID, ports.UpdateVehicleInput{Plate: strPtr("xyz9876")}); !errors.Is(err, domain.ErrPlateTaken) {
		t.Fatalf("expected ErrPlateTaken, got %v", err)
	}

	v, err := f.vehicle.Update(ctx, f.client, f.clientCar.ID, ports.UpdateVehicleInput{Plate: strPtr("abc1234"), Color: strPtr("Azul")})
	if err != nil {
		t.Fatalf("keeping the own plate must not conflict: %v", err)
	}
	if v.Color != "Azul" {
		t.Errorf("color not updated: %q", v.Color)
	}
}

func TestVehicleDelete_RefusedWhileServicesExist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.request(t)

	if err := f.vehicle.Delete(ctx, f.client, f.clientCar.ID); !errors.Is(err, domain.ErrVehicleHasServices) {
		t.Fatalf("expected ErrVehicleHasServices, got %v", err)
	}
	if err := f.vehicle.Delete(ctx, f.client, f.client2Car.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
	if err := f.vehicle.Delete(ctx, f.client2, f.client2Car.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.vehicle.Get(ctx, f.client2, f.client2Car.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
