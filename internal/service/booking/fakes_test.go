package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
)

// memStore is an in-memory stand-in for the persistence layer so the
// scheduling core can be exercised without a database. Book and Transition
// reproduce the transactional semantics of the real repository: overlap
// re-check under a lock, optimistic status update, client aggregates.
type memStore struct {
	mu sync.Mutex

	salons   map[uuid.UUID]*model.Salon
	masters  map[uuid.UUID]*model.Master
	services map[uuid.UUID]*model.Service
	offers   map[uuid.UUID]map[uuid.UUID]bool
	clients  map[uuid.UUID]*model.Client
	appts    map[uuid.UUID]*model.Appointment
}

func newMemStore() *memStore {
	return &memStore{
		salons:   map[uuid.UUID]*model.Salon{},
		masters:  map[uuid.UUID]*model.Master{},
		services: map[uuid.UUID]*model.Service{},
		offers:   map[uuid.UUID]map[uuid.UUID]bool{},
		clients:  map[uuid.UUID]*model.Client{},
		appts:    map[uuid.UUID]*model.Appointment{},
	}
}

func (s *memStore) repo() *repository.Repository {
	return &repository.Repository{
		Salon:       &memSalonRepo{s},
		Master:      &memMasterRepo{s},
		Service:     &memServiceRepo{s},
		Client:      &memClientRepo{s},
		Appointment: &memApptRepo{s},
	}
}

func (s *memStore) addOffer(masterID, serviceID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.offers[masterID] == nil {
		s.offers[masterID] = map[uuid.UUID]bool{}
	}
	s.offers[masterID][serviceID] = true
}

// ---------------------------------------------------------------------------
// salons
// ---------------------------------------------------------------------------

type memSalonRepo struct{ s *memStore }

func (r *memSalonRepo) Create(_ context.Context, salon *model.Salon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if salon.ID == uuid.Nil {
		salon.ID = uuid.New()
	}
	r.s.salons[salon.ID] = salon
	return nil
}

func (r *memSalonRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Salon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	salon, ok := r.s.salons[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *salon
	return &cp, nil
}

func (r *memSalonRepo) GetByEmail(_ context.Context, email string) (*model.Salon, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, salon := range r.s.salons {
		if salon.Email == email {
			cp := *salon
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memSalonRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == repository.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *memSalonRepo) Update(_ context.Context, salon *model.Salon) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.salons[salon.ID] = salon
	return nil
}

func (r *memSalonRepo) Stats(context.Context, uuid.UUID, string, string) (*repository.Stats, error) {
	return &repository.Stats{}, nil
}

// ---------------------------------------------------------------------------
// masters
// ---------------------------------------------------------------------------

type memMasterRepo struct{ s *memStore }

func (r *memMasterRepo) List(_ context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Master, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Master
	for _, m := range r.s.masters {
		if m.SalonID != salonID {
			continue
		}
		if activeOnly && !m.IsActive {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *memMasterRepo) GetByID(_ context.Context, salonID, id uuid.UUID) (*model.Master, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.masters[id]
	if !ok || m.SalonID != salonID {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memMasterRepo) Create(_ context.Context, m *model.Master) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.s.masters[m.ID] = m
	return nil
}

func (r *memMasterRepo) Update(_ context.Context, m *model.Master) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.masters[m.ID] = m
	return nil
}

func (r *memMasterRepo) Delete(_ context.Context, salonID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.masters[id]
	if !ok || m.SalonID != salonID {
		return repository.ErrNotFound
	}
	delete(r.s.masters, id)
	return nil
}

func (r *memMasterRepo) SetServices(_ context.Context, m *model.Master, services []model.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.offers[m.ID] = map[uuid.UUID]bool{}
	for _, svc := range services {
		r.s.offers[m.ID][svc.ID] = true
	}
	return nil
}

func (r *memMasterRepo) OffersService(_ context.Context, masterID, serviceID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.offers[masterID][serviceID], nil
}

// ---------------------------------------------------------------------------
// services
// ---------------------------------------------------------------------------

type memServiceRepo struct{ s *memStore }

func (r *memServiceRepo) List(_ context.Context, salonID uuid.UUID, activeOnly bool) ([]model.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Service
	for _, svc := range r.s.services {
		if svc.SalonID != salonID {
			continue
		}
		if activeOnly && !svc.IsActive {
			continue
		}
		out = append(out, *svc)
	}
	return out, nil
}

func (r *memServiceRepo) GetByID(_ context.Context, salonID, id uuid.UUID) (*model.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	svc, ok := r.s.services[id]
	if !ok || svc.SalonID != salonID {
		return nil, repository.ErrNotFound
	}
	cp := *svc
	return &cp, nil
}

func (r *memServiceRepo) GetByIDs(_ context.Context, salonID uuid.UUID, ids []uuid.UUID) ([]model.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Service
	for _, id := range ids {
		if svc, ok := r.s.services[id]; ok && svc.SalonID == salonID {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *memServiceRepo) Create(_ context.Context, svc *model.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	r.s.services[svc.ID] = svc
	return nil
}

func (r *memServiceRepo) Update(_ context.Context, svc *model.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.services[svc.ID] = svc
	return nil
}

func (r *memServiceRepo) Delete(_ context.Context, salonID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	svc, ok := r.s.services[id]
	if !ok || svc.SalonID != salonID {
		return repository.ErrNotFound
	}
	delete(r.s.services, id)
	return nil
}

// ---------------------------------------------------------------------------
// clients
// ---------------------------------------------------------------------------

type memClientRepo struct{ s *memStore }

func (r *memClientRepo) List(_ context.Context, salonID uuid.UUID, _ string) ([]model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Client
	for _, c := range r.s.clients {
		if c.SalonID == salonID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memClientRepo) GetByID(_ context.Context, salonID, id uuid.UUID) (*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.SalonID != salonID {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) GetByPhone(_ context.Context, salonID uuid.UUID, phone string) (*model.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.clients {
		if c.SalonID == salonID && c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memClientRepo) Create(_ context.Context, c *model.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.s.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) Update(_ context.Context, c *model.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) Delete(_ context.Context, salonID, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.SalonID != salonID {
		return repository.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}

// ---------------------------------------------------------------------------
// appointments
// ---------------------------------------------------------------------------

type memApptRepo struct{ s *memStore }

func (r *memApptRepo) List(_ context.Context, salonID uuid.UUID, f repository.ListFilter) ([]model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Appointment
	for _, a := range r.s.appts {
		if a.SalonID != salonID {
			continue
		}
		if f.MasterID != nil && a.MasterID != *f.MasterID {
			continue
		}
		if f.ClientID != nil && a.ClientID != *f.ClientID {
			continue
		}
		if f.Status != nil && a.Status != *f.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *memApptRepo) GetByID(_ context.Context, salonID, id uuid.UUID) (*model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appts[id]
	if !ok || a.SalonID != salonID {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memApptRepo) Blocking(_ context.Context, masterID uuid.UUID, date string) ([]model.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.blockingLocked(masterID, date), nil
}

func (r *memApptRepo) blockingLocked(masterID uuid.UUID, date string) []model.Appointment {
	var out []model.Appointment
	for _, a := range r.s.appts {
		if a.MasterID == masterID && a.Date == date && a.Status.Blocks() {
			out = append(out, *a)
		}
	}
	return out
}

func (r *memApptRepo) Book(_ context.Context, appt *model.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.blockingLocked(appt.MasterID, appt.Date) {
		if existing.Range().Overlaps(appt.Range()) {
			return repository.ErrOverlap
		}
	}
	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}
	cp := *appt
	r.s.appts[appt.ID] = &cp
	return nil
}

func (r *memApptRepo) Transition(_ context.Context, appt *model.Appointment, to model.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.appts[appt.ID]
	if !ok || cur.Status != appt.Status {
		return repository.ErrNotFound
	}
	cur.Status = to

	if to == model.StatusCompleted {
		if c, ok := r.s.clients[appt.ClientID]; ok {
			visitDate, err := time.Parse(model.DateLayout, appt.Date)
			if err != nil {
				return err
			}
			c.VisitsCount++
			c.TotalSpent += appt.Price
			c.LastVisit = &visitDate
		}
	}

	appt.Status = to
	return nil
}
