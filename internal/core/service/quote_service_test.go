package service

import (
	"context"
	"errors"
	"testing"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

func TestCreateQuote_MechanicClaimsUnassigned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)

	q, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Óleo e filtro", Amount: 120.456})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Amount != 120.46 {
		t.Errorf("amount must be rounded to cents, got %v", q.Amount)
	}

	stored := f.db.services[svc.ID]
	if stored.MechanicID == nil || *stored.MechanicID != f.mechanic.UserID {
		t.Fatalf("service should be claimed by the quoting mechanic")
	}
	if stored.Status != domain.StatusAwaitingQuote {
		t.Errorf("quoting must not change status, got %s", stored.Status)
	}

	got := f.recorder.types()
	if len(got) != 3 || got[1] != domain.EventMechanicAssigned || got[2] != domain.EventQuoteCreated {
		t.Errorf("unexpected events %v", got)
	}

	// the claim closes the queue for everyone else
	_, err = f.quote.Create(ctx, f.mechanic2, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Mais barato", Amount: 90})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("second mechanic: expected access denied, got %v", err)
	}
}

func TestCreateQuote_ManagerDoesNotClaim(t *testing.T) {
	f := newFixture(t)
	svc := f.request(t)

	if _, err := f.quote.Create(context.Background(), f.manager, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Revisão", Amount: 300}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.db.services[svc.ID].MechanicID != nil {
		t.Error("manager quotes must leave the service unassigned")
	}
}

func TestCreateQuote_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)

	cases := []struct {
		name string
		p    domain.Principal
		in   ports.CreateQuoteInput
		want error
	}{
		{"client", f.client, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "x", Amount: 10}, domain.ErrAccessDenied},
		{"zero amount", f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "x", Amount: 0}, domain.ErrInvalidAmount},
		{"negative amount", f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "x", Amount: -5}, domain.ErrInvalidAmount},
		{"sub-cent amount", f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "x", Amount: 0.004}, domain.ErrInvalidAmount},
		{"missing description", f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Amount: 10}, domain.ErrValidation},
		{"unknown service", f.mechanic, ports.CreateQuoteInput{ServiceID: 999, Description: "x", Amount: 10}, domain.ErrServiceNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.quote.Create(ctx, tc.p, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(f.db.quotes) != 0 {
		t.Errorf("no quote should be stored, got %d", len(f.db.quotes))
	}
}

func TestApproveQuote_BindsValue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)
	q, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Freios", Amount: 450})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if _, err := f.quote.Approve(ctx, f.client2, q.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("other client: expected access denied, got %v", err)
	}
	if _, err := f.quote.Approve(ctx, f.manager, q.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("manager: expected access denied, got %v", err)
	}
	if _, err := f.quote.Approve(ctx, f.client, 999); !errors.Is(err, domain.ErrQuoteNotFound) {
		t.Errorf("unknown quote: expected not found, got %v", err)
	}

	updated, err := f.quote.Approve(ctx, f.client, q.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != domain.StatusQuoteApproved {
		t.Errorf("expected %s, got %s", domain.StatusQuoteApproved, updated.Status)
	}
	if updated.Value == nil || *updated.Value != 450 {
		t.Errorf("value must equal the approved amount, got %v", updated.Value)
	}
	if f.db.quotes[q.ID].ApprovedAt == nil {
		t.Error("quote approval time must be stamped")
	}
}

func TestApproveQuote_LastApprovalWins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)

	first, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Completo", Amount: 500})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	second, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Básico", Amount: 200})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}

	if _, err := f.quote.Approve(ctx, f.client, first.ID); err != nil {
		t.Fatalf("approve first: %v", err)
	}
	updated, err := f.quote.Approve(ctx, f.client, second.ID)
	if err != nil {
		t.Fatalf("approve second: %v", err)
	}
	if *updated.Value != 200 || *updated.ApprovedQuoteID != second.ID {
		t.Errorf("last approval must win, got value %v quote %v", *updated.Value, *updated.ApprovedQuoteID)
	}
}

func TestApproveQuote_AfterWorkStartedRebinds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)
	first, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Motor", Amount: 1000})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if _, err := f.quote.Approve(ctx, f.client, first.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.lifecycle.Update(ctx, f.mechanic, svc.ID, ports.UpdateServiceInput{Status: strPtr("em_andamento")}); err != nil {
		t.Fatalf("start: %v", err)
	}
	second, err := f.quote.Create(ctx, f.mechanic, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "Motor e embreagem", Amount: 1400})
	if err != nil {
		t.Fatalf("second quote: %v", err)
	}

	updated, err := f.quote.Approve(ctx, f.client, second.ID)
	if err != nil {
		t.Fatalf("approval while in progress: %v", err)
	}
	if updated.Status != domain.StatusQuoteApproved {
		t.Errorf("expected orcamento_aprovado, got %s", updated.Status)
	}
	if *updated.Value != 1400 || *updated.ApprovedQuoteID != second.ID {
		t.Errorf("last approval must win, got value %v quote %v", *updated.Value, *updated.ApprovedQuoteID)
	}
}

func TestListQuotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := f.request(t)
	for _, amount := range []float64{100, 200} {
		if _, err := f.quote.Create(ctx, f.manager, ports.CreateQuoteInput{ServiceID: svc.ID, Description: "q", Amount: amount}); err != nil {
			t.Fatalf("quote: %v", err)
		}
	}

	quotes, err := f.quote.List(ctx, f.client, svc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 || quotes[0].Amount != 200 {
		t.Errorf("expected newest first, got %+v", quotes)
	}
	if _, err := f.quote.List(ctx, f.client2, svc.ID); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("expected access denied, got %v", err)
	}
}
