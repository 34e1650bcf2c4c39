package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oficina/workshop/internal/core/domain"
)

const eventsCollection = "service_events"

// EventRepository implements ports.EventRepository using MongoDB.
type EventRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection), now: time.Now}
}

type eventDocument struct {
	ServiceID  uint64    `bson:"service_id"`
	Type       string    `bson:"type"`
	FromStatus string    `bson:"from_status,omitempty"`
	ToStatus   string    `bson:"to_status"`
	ActorID    uint64    `bson:"actor_id"`
	ActorRole  string    `bson:"actor_role"`
	MechanicID *uint64   `bson:"mechanic_id,omitempty"`
	QuoteID    *uint64   `bson:"quote_id,omitempty"`
	Amount     *float64  `bson:"amount,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
	RecordedAt time.Time `bson:"recorded_at"`
}

// EnsureIndexes creates the history lookup index. Safe to call repeatedly.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "service_id", Value: 1}, {Key: "occurred_at", Value: 1}},
		Options: options.Index().SetName("service_history"),
	})
	if err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}
	return nil
}

// Insert persists an event to the service_events audit collection.
func (r *EventRepository) Insert(ctx context.Context, event *domain.ServiceEvent) error {
	if _, err := r.coll.InsertOne(ctx, toDocument(event, r.now())); err != nil {
		return domain.Persistence("insert service event", err)
	}
	return nil
}

// ListByService returns a service's events, oldest first.
func (r *EventRepository) ListByService(ctx context.Context, serviceID uint) ([]*domain.ServiceEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"service_id": uint64(serviceID)}, opts)
	if err != nil {
		return nil, domain.Persistence("list service events", err)
	}
	defer cur.Close(ctx)

	var docs []eventDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, domain.Persistence("decode service events", err)
	}
	out := make([]*domain.ServiceEvent, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func toDocument(e *domain.ServiceEvent, recordedAt time.Time) eventDocument {
	return eventDocument{
		ServiceID:  uint64(e.ServiceID),
		Type:       string(e.Type),
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorID:    uint64(e.ActorID),
		ActorRole:  string(e.ActorRole),
		MechanicID: widen(e.MechanicID),
		QuoteID:    widen(e.QuoteID),
		Amount:     e.Amount,
		OccurredAt: e.OccurredAt.UTC(),
		RecordedAt: recordedAt.UTC(),
	}
}

func (d *eventDocument) toDomain() *domain.ServiceEvent {
	return &domain.ServiceEvent{
		ServiceID:  uint(d.ServiceID),
		Type:       domain.EventType(d.Type),
		FromStatus: domain.ServiceStatus(d.FromStatus),
		ToStatus:   domain.ServiceStatus(d.ToStatus),
		ActorID:    uint(d.ActorID),
		ActorRole:  domain.Role(d.ActorRole),
		MechanicID: narrow(d.MechanicID),
		QuoteID:    narrow(d.QuoteID),
		Amount:     d.Amount,
		OccurredAt: d.OccurredAt.UTC(),
	}
}

func widen(id *uint) *uint64 {
	if id == nil {
		return nil
	}
	v := uint64(*id)
	return &v
}

func narrow(id *uint64) *uint {
	if id == nil {
		return nil
	}
	v := uint(*id)
	return &v
}
