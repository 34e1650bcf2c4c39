package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

// memDB backs every stub repository so cross-entity rules (ownership through
// the vehicle, cascades) behave like the relational store.
type memDB struct {
	nextID   uint
	users    map[uint]*domain.User
	vehicles map[uint]*domain.Vehicle
	services map[uint]*domain.Service
	quotes   map[uint]*domain.Quote
	events   []*domain.ServiceEvent
}

func newMemDB() *memDB {
	return &memDB{
		users:    make(map[uint]*domain.User),
		vehicles: make(map[uint]*domain.Vehicle),
		services: make(map[uint]*domain.Service),
		quotes:   make(map[uint]*domain.Quote),
	}
}

func (db *memDB) id() uint {
	db.nextID++
	return db.nextID
}

// withOwner returns a copy of s with OwnerID loaded from its vehicle.
func (db *memDB) withOwner(s *domain.Service) *domain.Service {
	clone := *s
	if v, ok := db.vehicles[s.VehicleID]; ok {
		clone.OwnerID = v.OwnerID
	}
	return &clone
}

type stubUserRepo struct{ db *memDB }

func (r stubUserRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	u.ID = r.db.id()
	clone := *u
	r.db.users[u.ID] = &clone
	if u.Role != domain.RoleMechanic {
		for _, svc := range r.db.services {
			if svc.MechanicID != nil && *svc.MechanicID == u.ID {
				svc.MechanicID = nil
			}
		}
	}
	return nil
}

func (r stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.db.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.db.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.db.users {
		if !f.Visibility.Allows(domain.Target{OwnerID: u.ID}) {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r stubUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.db.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.db.users[u.ID] = &clone
	return nil
}

func (r stubUserRepo) Delete(_ context.Context, id uint) error {
	for vid, v := range r.db.vehicles {
		if v.OwnerID != id {
			continue
		}
		for sid, s := range r.db.services {
			if s.VehicleID != vid {
				continue
			}
			for qid, q := range r.db.quotes {
				if q.ServiceID == sid {
					delete(r.db.quotes, qid)
				}
			}
			delete(r.db.services, sid)
		}
		delete(r.db.vehicles, vid)
	}
	for _, s := range r.db.services {
		if s.MechanicID != nil && *s.MechanicID == id {
			s.MechanicID = nil
		}
	}
	delete(r.db.users, id)
	return nil
}

type stubVehicleRepo struct{ db *memDB }

func (r stubVehicleRepo) Create(_ context.Context, v *domain.Vehicle) error {
	v.ID = r.db.id()
	clone := *v
	r.db.vehicles[v.ID] = &clone
	return nil
}

func (r stubVehicleRepo) FindByID(_ context.Context, id uint) (*domain.Vehicle, error) {
	v, ok := r.db.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	clone := *v
	return &clone, nil
}

func (r stubVehicleRepo) FindByPlate(_ context.Context, plate string) (*domain.Vehicle, error) {
	for _, v := range r.db.vehicles {
		if v.Plate == plate {
			clone := *v
			return &clone, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (r stubVehicleRepo) List(_ context.Context, vis domain.Visibility) ([]*domain.Vehicle, error) {
	out := []*domain.Vehicle{}
	for _, v := range r.db.vehicles {
		if !vis.Allows(domain.Target{OwnerID: v.OwnerID}) {
			continue
		}
		clone := *v
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r stubVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	clone := *v
	r.db.vehicles[v.ID] = &clone
	return nil
}

func (r stubVehicleRepo) Delete(_ context.Context, id uint) error {
	for _, s := range r.db.services {
		if s.VehicleID == id {
			return domain.ErrVehicleHasServices
		}
	}
	delete(r.db.vehicles, id)
	return nil
}

type stubServiceRepo struct {
	db        *memDB
	updateErr error // if set, Update returns this error
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) error {
	s.ID = r.db.id()
	clone := *s
	r.db.services[s.ID] = &clone
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id uint) (*domain.Service, error) {
	s, ok := r.db.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return r.db.withOwner(s), nil
}

func (r *stubServiceRepo) List(_ context.Context, f ports.ServiceFilter) ([]*domain.Service, error) {
	out := []*domain.Service{}
	for _, s := range r.db.services {
		svc := r.db.withOwner(s)
		if !f.Visibility.Allows(svc.Target()) {
			continue
		}
		if f.VehicleID != 0 && svc.VehicleID != f.VehicleID {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, svc.Status) {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *stubServiceRepo) Update(_ context.Context, s *domain.Service) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *s
	r.db.services[s.ID] = &clone
	return nil
}

type stubQuoteRepo struct{ db *memDB }

func (r stubQuoteRepo) CreateAndClaim(_ context.Context, q *domain.Quote, claimant *uint) (bool, error) {
	s, ok := r.db.services[q.ServiceID]
	if !ok {
		return false, domain.ErrServiceNotFound
	}
	q.ID = r.db.id()
	clone := *q
	r.db.quotes[q.ID] = &clone
	if claimant != nil && s.MechanicID == nil {
		id := *claimant
		s.MechanicID = &id
		return true, nil
	}
	return false, nil
}

func (r stubQuoteRepo) FindByID(_ context.Context, id uint) (*domain.Quote, error) {
	q, ok := r.db.quotes[id]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	clone := *q
	return &clone, nil
}

func (r stubQuoteRepo) ListByService(_ context.Context, serviceID uint) ([]*domain.Quote, error) {
	out := []*domain.Quote{}
	for _, q := range r.db.quotes {
		if q.ServiceID == serviceID {
			clone := *q
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r stubQuoteRepo) Approve(_ context.Context, quoteID uint, at time.Time) (*domain.Service, error) {
	q, ok := r.db.quotes[quoteID]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	s := r.db.services[q.ServiceID]
	amount, qid := q.Amount, q.ID
	s.Value = &amount
	s.ApprovedQuoteID = &qid
	s.Status = domain.StatusQuoteApproved
	s.UpdatedAt = at
	stamp := at
	q.ApprovedAt = &stamp
	return r.db.withOwner(s), nil
}

type stubEventRepo struct{ db *memDB }

func (r stubEventRepo) Insert(_ context.Context, e *domain.ServiceEvent) error {
	clone := *e
	r.db.events = append(r.db.events, &clone)
	return nil
}

func (r stubEventRepo) ListByService(_ context.Context, serviceID uint) ([]*domain.ServiceEvent, error) {
	out := []*domain.ServiceEvent{}
	for _, e := range r.db.events {
		if e.ServiceID == serviceID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubRecorder writes events synchronously into the event repo.
type stubRecorder struct {
	repo     stubEventRepo
	recorded []domain.ServiceEvent
}

func (r *stubRecorder) Record(e domain.ServiceEvent) {
	r.recorded = append(r.recorded, e)
	_ = r.repo.Insert(context.Background(), &e)
}

func (r *stubRecorder) types() []domain.EventType {
	out := make([]domain.EventType, 0, len(r.recorded))
	for _, e := range r.recorded {
		out = append(out, e.Type)
	}
	return out
}

func containsStatus(list []domain.ServiceStatus, st domain.ServiceStatus) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// fixture wires every service over one memDB, with a manager, a mechanic, a
// second mechanic and two clients, each owning one vehicle.
type fixture struct {
	db       *memDB
	users    stubUserRepo
	vehicles stubVehicleRepo
	services *stubServiceRepo
	quotes   stubQuoteRepo
	recorder *stubRecorder

	auth      *AuthService
	userSvc   *UserService
	vehicle   *VehicleService
	lifecycle *LifecycleService
	quote     *QuoteService
	dashboard *DashboardService
	history   *HistoryService

	manager, mechanic, mechanic2, client, client2 domain.Principal
	clientCar, client2Car                         *domain.Vehicle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newMemDB()
	f := &fixture{
		db:       db,
		users:    stubUserRepo{db: db},
		vehicles: stubVehicleRepo{db: db},
		services: &stubServiceRepo{db: db},
		quotes:   stubQuoteRepo{db: db},
		recorder: &stubRecorder{repo: stubEventRepo{db: db}},
	}
	f.auth = NewAuthService(f.users, f.vehicles, NewTokenManager("test-secret", time.Hour), discardLogger)
	f.userSvc = NewUserService(f.users, f.vehicles, discardLogger)
	f.vehicle = NewVehicleService(f.vehicles, f.users, f.services, discardLogger)
	f.lifecycle = NewLifecycleService(f.services, f.vehicles, f.users, f.quotes, f.recorder, discardLogger)
	f.quote = NewQuoteService(f.quotes, f.services, f.recorder, discardLogger)
	f.dashboard = NewDashboardService(stubStatsRepo{db: db}, f.services, f.vehicles)
	f.history = NewHistoryService(f.services, stubEventRepo{db: db})

	f.manager = f.seedUser(t, "Gerente", "gerente@oficina.com", domain.RoleManager)
	f.mechanic = f.seedUser(t, "Mecanico", "mecanico@oficina.com", domain.RoleMechanic)
	f.mechanic2 = f.seedUser(t, "Mecanico Dois", "mecanico2@oficina.com", domain.RoleMechanic)
	f.client = f.seedUser(t, "Cliente", "cliente@oficina.com", domain.RoleClient)
	f.client2 = f.seedUser(t, "Cliente Dois", "cliente2@oficina.com", domain.RoleClient)
	f.clientCar = f.seedVehicle(t, f.client, "ABC1234")
	f.client2Car = f.seedVehicle(t, f.client2, "XYZ9876")
	return f
}

// seedUser stores a user directly; the password hash is not a real digest.
func (f *fixture) seedUser(t *testing.T, name, email string, role domain.Role) domain.Principal {
	t.Helper()
	u := &domain.User{Name: name, Email: email, PasswordHash: "x", Role: role}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return domain.Principal{UserID: u.ID, Role: role}
}

func (f *fixture) seedVehicle(t *testing.T, owner domain.Principal, plate string) *domain.Vehicle {
	t.Helper()
	v := &domain.Vehicle{Plate: plate, Make: "Fiat", Model: "Uno", Year: 2015, OwnerID: owner.UserID}
	if err := f.vehicles.Create(context.Background(), v); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}

// request opens a service as the client owning the first vehicle.
func (f *fixture) request(t *testing.T) *domain.Service {
	t.Helper()
	svc, err := f.lifecycle.Create(context.Background(), f.client, ports.CreateServiceInput{
		VehicleID:   f.clientCar.ID,
		Description: "Troca de óleo",
	})
	if err != nil {
		t.Fatalf("request service: %v", err)
	}
	return svc
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }
