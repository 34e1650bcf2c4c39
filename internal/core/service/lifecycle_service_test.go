package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

func TestCreateService_ClientDefaultsToAwaitingQuote(t *testing.T) {
	f := newFixture(t)
	svc := f.request(t)

	if svc.Status != domain.StatusAwaitingQuote {
		t.Errorf("expected %s, got %s", domain.StatusAwaitingQuote, svc.Status)
	}
	if svc.Value != nil {
		t.Error("a new service has no bound value")
	}
	if svc.MechanicID != nil {
		t.Error("a client request starts unassigned")
	}
	if got := f.recorder.types(); len(got) != 1 || got[0] != domain.EventServiceCreated {
		t.Errorf("expected one service_created event, got %v", got)
	}
}

func TestCreateService_ClientRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.lifecycle.Create(ctx, f.client, ports.CreateServiceInput{VehicleID: f.client2Car.ID, Description: "Freio"})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("foreign vehicle: expected access denied, got %v", err)
	}

	_, err = f.lifecycle.Create(ctx, f.client, ports.CreateServiceInput{VehicleID: f.clientCar.ID, Description: "Freio", Status: "em_andamento"})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("client setting status: expected access denied, got %v", err)
	}

	_, err = f.lifecycle.Create(ctx, f.client, ports.CreateServiceInput{VehicleID: f.clientCar.ID})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing description: expected validation error, got %v", err)
	}

	_, err = f.lifecycle.Create(ctx, f.client, ports.CreateServiceInput{VehicleID: 999, Description: "Freio"})
	if !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Errorf("unknown vehicle: expected not found, got %v", err)
	}
}

func TestCreateService_StaffChoosesStatusAndMechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	expected := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	svc, err := f.lifecycle.Create(ctx, f.manager, ports.CreateServiceInput{
		VehicleID:   f.clientCar.ID,
		Description: "Revisão",
		Status:      "pendente",
		MechanicID:  uintPtr(f.mechanic.UserID),
		ExpectedAt:  &expected,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Status != domain.StatusPending || svc.MechanicID == nil || *svc.MechanicID != f.mechanic.UserID {
		t.Errorf("unexpected service %+v", svc)
	}

	_, err = f.lifecycle.Create(ctx, f.manager, ports.CreateServiceInput{
		VehicleID: f.clientCar.ID, Description: "Revisão", MechanicID: uintPtr(f.client.UserID),
	})
	if !errors.Is(err, domain.ErrInvalidMechanic) {
		t.Errorf("assigning a client: expected ErrInvalidMechanic, got %v", err)
	}

	_, err = f.lifecycle.Create(ctx, f.mechanic, ports.CreateServiceInput{
		VehicleID: f.clientCar.ID, Description: "Revisão", MechanicID: uintPtr(f.mechanic2.UserID),
	})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("mechanic assigning another: expected access denied, got %v", err)
	}

	_, err = f.lifecycle.Create(ctx, f.manager, ports.CreateServiceInput{
		VehicleID: f.clientCar.ID, Description: "Revisão", Status: "quebrado",
	})
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("unknown status: expected ErrInvalidStatus, got %v", err)
	}
}

func TestListServices_Visibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	open := f.request(t) // unassigned, awaiting quote
	mine, err := f.lifecycle.Create(ctx, f.manager, ports.CreateServiceInput{
		VehicleID: f.client2Car.ID, Description: "Motor", Status: "em_andamento", MechanicID: uintPtr(f.mechanic.UserID),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.lifecycle.Create(ctx, f.manager, ports.CreateServiceInput{
		VehicleID: f.client2Car.ID, Description: "Pintura", Status: "em_andamento", MechanicID: uintPtr(f.mechanic2.UserID),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.lifecycle.Create(ctx, f.manager, ports.CreateServiceInput{
		VehicleID: f.client2Car.ID, Description: "Pendente", Status: "pendente",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	ids := func(list []*domain.Service) map[uint]bool {
		out := make(map[uint]bool, len(list))
		for _, s := range list {
			out[s.ID] = true
		}
		return out
	}

	got, err := f.lifecycle.List(ctx, f.mechanic, ports.ListServicesInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	seen := ids(got)
	if len(got) != 2 || !seen[open.ID] || !seen[mine.ID] {
		t.Errorf("mechanic should see the open queue and own work, got %v", seen)
	}

	got, _ = f.lifecycle.List(ctx, f.client, ports.ListServicesInput{})
	if len(got) != 1 || got[0].ID != open.ID {
		t.Errorf("client should only see services of own vehicles, got %v", ids(got))
	}

	got, _ = f.lifecycle.List(ctx, f.manager, ports.ListServicesInput{})
	if len(got) != 4 {
		t.Errorf("manager should see all 4 services, got %d", len(got))
	}

	got, _ = f.lifecycle.List(ctx, f.manager, ports.ListServicesInput{Status: "em_andamento"})
	if len(got) != 2 {
		t.Errorf("status filter: expected 2, got %d", len(got))
	}

	if _, err := f.lifecycle.List(ctx, f.manager, ports.ListServicesInput{Status: "x"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestGetService_ReadRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)

	if _, err := f.lifecycle.Get(ctx, f.client2, svc.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("other client: expected access denied, got %v", err)
	}
	if _, err := f.lifecycle.Get(ctx, f.mechanic, svc.ID); err != nil {
		t.Errorf("queue item must be readable by mechanics: %v", err)
	}

	// once claimed by mechanic, mechanic2 loses access
	if _, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Óleo", Amount: 80}); err != nil {
		t.Fatalf("quote: %v", err)
	}
	if _, err := f.lifecycle.Get(ctx, f.mechanic2, svc.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("claimed service: expected access denied for other mechanic, got %v", err)
	}

	detail, err := f.lifecycle.Get(ctx, f.client, svc.ID)
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	if len(detail.Quotes) != 1 {
		t.Errorf("expected 1 quote in detail, got %d", len(detail.Quotes))
	}

	if _, err := f.lifecycle.Get(ctx, f.manager, 999); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

// approvedFor walks a request through quote and approval, assigned to f.mechanic.
func approvedFor(t *testing.T, f *fixture) *domain.Service {
	t.Helper()
	ctx := context.Background()
	svc := f.request(t)
	q, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Óleo", Amount: 150})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	approved, err := f.quote.Approve(ctx, f.client, q.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	return approved
}

func TestUpdateService_MechanicFollowsGraph(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := approvedFor(t, f)

	_, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("concluido")})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("skipping in-progress: expected ErrInvalidTransition, got %v", err)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("invalid transition must be a conflict, got %v", err)
	}

	updated, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("em_andamento")})
	if err != nil {
		t.Fatalf("start work: %v", err)
	}
	if updated.Status != domain.StatusInProgress {
		t.Errorf("expected em_andamento, got %s", updated.Status)
	}

	updated, err = f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("concluido")})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Fatal("completed_at must be stamped on completion")
	}
	if updated.Value == nil || *updated.Value != 150 {
		t.Errorf("bound value must survive updates, got %v", updated.Value)
	}
}

func TestUpdateService_MechanicRestrictions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := approvedFor(t, f)

	_, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Description: strPtr("outra")})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("mechanic editing description: expected access denied, got %v", err)
	}
	_, err = f.lifecycle.Update(ctx, f.mechanic2, svc.ID, ports.UpdateServiceInput{Status: strPtr("em_andamento")})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("unassigned mechanic: expected access denied, got %v", err)
	}
	_, err = f.lifecycle.Update(ctx, f.client, svc.ID, ports.UpdateServiceInput{Status: strPtr("cancelado")})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("client update: expected access denied, got %v", err)
	}
	_, err = f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("aguardando_orcamento")})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("moving back: expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdateService_ManagerUnguarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)

	updated, err := f.lifecycle.Update(ctx, f.manager, svc.ID, ports.UpdateServiceInput{
		Status:     strPtr("concluido"),
		MechanicID: uintPtr(f.mechanic2.UserID),
		Notes:      strPtr("cliente pediu urgência"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.StatusCompleted || updated.CompletedAt == nil {
		t.Fatalf("expected completed with timestamp, got %+v", updated)
	}
	first := *updated.CompletedAt

	f.lifecycle.now = func() time.Time { return first.Add(48 * time.Hour) }
	if _, err := f.lifecycle.Update(ctx, f.manager, svc.ID, ports.UpdateServiceInput{Status: strPtr("em_andamento")}); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	again, err := f.lifecycle.Update(ctx, f.manager, svc.ID, ports.UpdateServiceInput{Status: strPtr("concluido")})
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if !again.CompletedAt.Equal(first) {
		t.Errorf("completed_at must be set only once: first %v, now %v", first, *again.CompletedAt)
	}

	types := f.recorder.types()
	want := []domain.EventType{
		domain.EventServiceCreated,
		domain.EventStatusChanged,
		domain.EventMechanicAssigned,
		domain.EventStatusChanged,
		domain.EventStatusChanged,
	}
	if len(types) != len(want) {
		t.Fatalf("expected events %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], types[i])
		}
	}
}

func TestUpdateService_ManagerUnassignsMechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := approvedFor(t, f)
	if svc.MechanicID == nil {
		t.Fatal("fixture service should be assigned")
	}

	_, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{ClearMechanic: true})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("mechanic unassigning: expected access denied, got %v", err)
	}
	_, err = f.lifecycle.Update(ctx, f.manager, svc.ID, ports.UpdateServiceInput{ClearMechanic: true, MechanicID: uintPtr(f.mechanic2.UserID)})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("clear plus assign: expected validation error, got %v", err)
	}

	before := len(f.recorder.types())
	updated, err := f.lifecycle.Update(ctx, f.manager, svc.ID, ports.UpdateServiceInput{ClearMechanic: true})
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if updated.MechanicID != nil || f.db.services[svc.ID].MechanicID != nil {
		t.Fatalf("expected no mechanic, got %v", updated.MechanicID)
	}
	types := f.recorder.types()
	if len(types) != before+1 || types[len(types)-1] != domain.EventMechanicRemoved {
		t.Errorf("expected one mechanic_unassigned event, got %v", types[before:])
	}

	if _, err := f.lifecycle.Update(ctx, f.manager, svc.ID, ports.UpdateServiceInput{ClearMechanic: true}); err != nil {
		t.Fatalf("unassign again: %v", err)
	}
	if len(f.recorder.types()) != before+1 {
		t.Error("clearing an unassigned service must not record an event")
	}
}

func TestUpdateService_PersistenceFailureLeavesNoEvent(t *testing.T) {
	f := newFixture(t)
	svc := f.request(t)
	f.services.updateErr = domain.Persistence("update service", errors.New("connection reset"))

	_, err := f.lifecycle.Update(context.Background(), f.manager, svc.ID, ports.UpdateServiceInput{Status: strPtr("cancelado")})
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if n := len(f.recorder.recorded); n != 1 {
		t.Errorf("only the creation event should be recorded, got %d", n)
	}
	if f.db.services[svc.ID].Status != domain.StatusAwaitingQuote {
		t.Error("stored status must be unchanged")
	}
}
