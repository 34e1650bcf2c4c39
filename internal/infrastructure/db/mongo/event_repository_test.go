package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/oficina/workshop/internal/core/domain"
)

func TestEventDocument_RoundTrip(t *testing.T) {
	mech, quote, amount := uint(4), uint(9), 320.5
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := &domain.ServiceEvent{
		ServiceID:  7,
		Type:       domain.EventQuoteApproved,
		FromStatus: domain.StatusAwaitingQuote,
		ToStatus:   domain.StatusQuoteApproved,
		ActorID:    3,
		ActorRole:  domain.RoleClient,
		MechanicID: &mech,
		QuoteID:    &quote,
		Amount:     &amount,
		OccurredAt: at,
	}

	raw, err := bson.Marshal(toDocument(in, at.Add(time.Second)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc eventDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out := doc.toDomain()

	if out.ServiceID != 7 || out.Type != domain.EventQuoteApproved || out.ActorRole != domain.RoleClient {
		t.Errorf("unexpected event %+v", out)
	}
	if out.MechanicID == nil || *out.MechanicID != 4 || out.QuoteID == nil || *out.QuoteID != 9 {
		t.Errorf("optional ids lost: %+v", out)
	}
	if !out.OccurredAt.Equal(at) {
		t.Errorf("occurred_at changed: %v", out.OccurredAt)
	}
}

func TestEventDocument_OmitsEmptyOptionals(t *testing.T) {
	raw, err := bson.Marshal(toDocument(&domain.ServiceEvent{ServiceID: 1, Type: domain.EventServiceCreated}, time.Now()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"from_status", "mechanic_id", "quote_id", "amount"} {
		if _, ok := m[key]; ok {
			t.Errorf("%s must be omitted when empty", key)
		}
	}
}
