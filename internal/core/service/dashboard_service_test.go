package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// stubStatsRepo computes the aggregates from memDB the way the SQL queries do.
type stubStatsRepo struct{ db *memDB }

func (r stubStatsRepo) CountUsers(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.db.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r stubStatsRepo) CountVehicles(_ context.Context, vis domain.Visibility) (int64, error) {
	var n int64
	for _, v := range r.db.vehicles {
		if vis.Allows(domain.Target{OwnerID: v.OwnerID}) {
			n++
		}
	}
	return n, nil
}

func (r stubStatsRepo) StatusCounts(_ context.Context, vis domain.Visibility) (domain.StatusCounts, error) {
	out := domain.StatusCounts{}
	for _, s := range r.db.services {
		if vis.Allows(r.db.withOwner(s).Target()) {
			out[s.Status]++
		}
	}
	return out, nil
}

func (r stubStatsRepo) Revenue(_ context.Context) (float64, error) {
	var sum float64
	for _, s := range r.db.services {
		if s.Status == domain.StatusCompleted && s.Value != nil {
			sum += *s.Value
		}
	}
	return sum, nil
}

func (r stubStatsRepo) MechanicWorkloads(_ context.Context, since time.Time) ([]domain.MechanicWorkload, error) {
	var out []domain.MechanicWorkload
	for _, u := range r.db.users {
		if u.Role != domain.RoleMechanic {
			continue
		}
		w := domain.MechanicWorkload{MechanicID: u.ID, Name: u.Name}
		for _, s := range r.db.services {
			if s.MechanicID == nil || *s.MechanicID != u.ID {
				continue
			}
			w.Total++
			switch s.Status {
			case domain.StatusAwaitingQuote:
				w.AwaitingQuote++
			case domain.StatusInProgress:
				w.InProgress++
			case domain.StatusCompleted:
				if s.CompletedAt != nil && !s.CompletedAt.Before(since) {
					w.CompletedThisMonth++
				}
			}
		}
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MechanicID < out[j].MechanicID })
	return out, nil
}

func TestDashboard_Manager(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := approvedFor(t, f) // worth 150, assigned to f.mechanic
	if _, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("em_andamento")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("concluido")}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	f.request(t)

	d, err := f.dashboard.Dashboard(ctx, f.manager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Stats.TotalClients != 2 || d.Stats.TotalMechanics != 2 || d.Stats.TotalVehicles != 2 {
		t.Errorf("unexpected counters %+v", d.Stats)
	}
	if d.Stats.TotalServices != 2 || d.Stats.ActiveServices != 1 {
		t.Errorf("expected 2 services with 1 active, got %+v", d.Stats)
	}
	if d.Stats.Revenue != 150 {
		t.Errorf("revenue must sum completed values, got %v", d.Stats.Revenue)
	}
	if len(d.Workloads) != 2 || d.Workloads[0].CompletedThisMonth != 1 {
		t.Errorf("unexpected workloads %+v", d.Workloads)
	}
	if len(d.Services) != 2 {
		t.Errorf("expected 2 recent services, got %d", len(d.Services))
	}
}

func TestDashboard_Mechanic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approvedFor(t, f)
	f.request(t) // open queue item

	d, err := f.dashboard.Dashboard(ctx, f.mechanic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Stats.TotalServices != 1 {
		t.Errorf("mechanic totals count assigned work only, got %d", d.Stats.TotalServices)
	}
	if d.Stats.AwaitingQuote != 1 {
		t.Errorf("expected one service awaiting a quote, got %d", d.Stats.AwaitingQuote)
	}
	if len(d.Services) != 2 {
		t.Errorf("work queue should hold own and open services, got %d", len(d.Services))
	}

	other, err := f.dashboard.Dashboard(ctx, f.mechanic2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.Stats.TotalServices != 0 || len(other.Services) != 1 {
		t.Errorf("second mechanic should only see the open item, got %+v", other.Stats)
	}
}

func TestDashboard_Client(t *testing.T) {
	f := newFixture(t)
	f.request(t)

	d, err := f.dashboard.Dashboard(context.Background(), f.client2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Stats.TotalVehicles != 1 || d.Stats.TotalServices != 0 || len(d.Services) != 0 {
		t.Errorf("client2 must not see client's service, got %+v", d.Stats)
	}

	d, err = f.dashboard.Dashboard(context.Background(), f.client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Stats.TotalServices != 1 || len(d.Vehicles) != 1 {
		t.Errorf("unexpected client dashboard %+v", d.Stats)
	}
}

func TestMonthStart(t *testing.T) {
	got := monthStart(time.Date(2024, 2, 29, 23, 59, 0, 0, time.FixedZone("BRT", -3*3600)))
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
