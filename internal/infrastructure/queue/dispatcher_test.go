package queue

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubEventRepo struct {
	mu        sync.Mutex
	insertErr error
	inserted  []domain.ServiceEvent
}

func (r *stubEventRepo) Insert(_ context.Context, e *domain.ServiceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, *e)
	return nil
}

func (r *stubEventRepo) ListByService(context.Context, uint) ([]*domain.ServiceEvent, error) {
	return nil, nil
}

type countingObserver struct {
	mu       sync.Mutex
	failures int
	maxDepth int
}

func (o *countingObserver) QueueDepth(n int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if n > o.maxDepth {
		o.maxDepth = n
	}
}

func (o *countingObserver) WriteFailed() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures++
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestDispatcher_PreservesPerServiceOrder(t *testing.T) {
	repo := &stubEventRepo{}
	d := NewDispatcher(3, repo, nil, zerolog.Nop())
	d.Start(context.Background())

	statuses := []domain.ServiceStatus{
		domain.StatusAwaitingQuote,
		domain.StatusQuoteApproved,
		domain.StatusInProgress,
		domain.StatusCompleted,
	}
	for _, st := range statuses {
		for id := uint(1); id <= 10; id++ {
			d.Record(domain.ServiceEvent{ServiceID: id, Type: domain.EventStatusChanged, ToStatus: st})
		}
	}
	d.Stop()

	if len(repo.inserted) != 40 {
		t.Fatalf("expected 40 events, got %d", len(repo.inserted))
	}
	next := make(map[uint]int)
	for _, e := range repo.inserted {
		i := next[e.ServiceID]
		if e.ToStatus != statuses[i] {
			t.Fatalf("service %d: event %d out of order: got %s, want %s", e.ServiceID, i, e.ToStatus, statuses[i])
		}
		next[e.ServiceID] = i + 1
	}
}

func TestDispatcher_WriteFailuresAreNonFatal(t *testing.T) {
	repo := &stubEventRepo{insertErr: errors.New("mongo down")}
	obs := &countingObserver{}
	d := NewDispatcher(1, repo, obs, zerolog.Nop())
	d.Start(context.Background())

	d.Record(domain.ServiceEvent{ServiceID: 1, Type: domain.EventServiceCreated})
	d.Record(domain.ServiceEvent{ServiceID: 2, Type: domain.EventServiceCreated})
	d.Stop()

	if obs.failures != 2 {
		t.Errorf("expected 2 failed writes, got %d", obs.failures)
	}
}

func TestDispatcher_RecordAfterStopIsDropped(t *testing.T) {
	repo := &stubEventRepo{}
	d := NewDispatcher(2, repo, nil, zerolog.Nop())
	d.Start(context.Background())
	d.Stop()
	d.Stop()

	d.Record(domain.ServiceEvent{ServiceID: 1})
	if len(repo.inserted) != 0 {
		t.Errorf("expected no writes after stop, got %d", len(repo.inserted))
	}
}

func TestShardIndex_Deterministic(t *testing.T) {
	d := NewDispatcher(8, &stubEventRepo{}, nil, zerolog.Nop())
	for id := uint(1); id < 100; id++ {
		a, b := d.shardIndex(id), d.shardIndex(id)
		if a != b || a < 0 || a >= 8 {
			t.Fatalf("shard for %d unstable or out of range: %d %d", id, a, b)
		}
	}
}
