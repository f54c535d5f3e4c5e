// Package booking implements the scheduling core: the availability
// calculator, the booking validator and the appointment state machine.
// All decisions are minute-granular salon-local wall clock.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/repository"
	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
	"github.com/Alijeyrad/glowdesk_backend/pkg/observability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	MasterID  uuid.UUID
	ServiceID uuid.UUID
	ClientID  uuid.UUID
	Date      string // model.DateLayout
	Start     string // "HH:MM"
	Notes     string

	// Price overrides the service price snapshot when set (discounts,
	// custom quotes). Nil means snapshot the catalog price.
	Price *int64

	// Public marks bookings arriving through the unauthenticated surface.
	Public bool
}

// TransitionResult reports the outcome of a status change. LateCancellation
// is set when a cancellation landed inside the salon's cutoff window; it is
// advisory and never blocks the transition.
type TransitionResult struct {
	Appointment      *model.Appointment
	LateCancellation bool
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// FreeSlots computes the bookable start times for a master, service
	// and date. Inactive master, unoffered service, closed weekday and
	// out-of-window dates all yield an empty list, not an error.
	FreeSlots(ctx context.Context, salonID uuid.UUID, masterID, serviceID uuid.UUID, date string) ([]schedule.Range, error)

	// Book validates and atomically persists a confirmed appointment.
	Book(ctx context.Context, salonID uuid.UUID, req BookRequest) (*model.Appointment, error)

	// Transition moves an appointment through the state machine.
	Transition(ctx context.Context, salonID, apptID uuid.UUID, to model.Status) (*TransitionResult, error)

	List(ctx context.Context, salonID uuid.UUID, f repository.ListFilter) ([]model.Appointment, error)
	Get(ctx context.Context, salonID, id uuid.UUID) (*model.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	salons   repository.SalonRepository
	masters  repository.MasterRepository
	services repository.ServiceRepository
	clients  repository.ClientRepository
	appts    repository.AppointmentRepository

	calendar *keyedMutex
	nc       *nats.Conn
	metrics  *observability.BookingMetrics

	// now is swappable in tests.
	now func() time.Time
}

func New(
	repo *repository.Repository,
	nc *nats.Conn,
	metrics *observability.BookingMetrics,
) Service {
	return &bookingService{
		salons:   repo.Salon,
		masters:  repo.Master,
		services: repo.Service,
		clients:  repo.Client,
		appts:    repo.Appointment,
		calendar: newKeyedMutex(),
		nc:       nc,
		metrics:  metrics,
		now:      time.Now,
	}
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func (s *bookingService) FreeSlots(ctx context.Context, salonID, masterID, serviceID uuid.UUID, date string) ([]schedule.Range, error) {
	day, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("get salon: %w", err)
	}

	master, err := s.masters.GetByID(ctx, salonID, masterID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrMasterNotFound
		}
		return nil, fmt.Errorf("get master: %w", err)
	}

	service, err := s.services.GetByID(ctx, salonID, serviceID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	// Advisory preconditions: empty availability, not an error.
	if !master.IsActive || !service.IsActive {
		return []schedule.Range{}, nil
	}
	offers, err := s.masters.OffersService(ctx, masterID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("check offering: %w", err)
	}
	if !offers {
		return []schedule.Range{}, nil
	}
	if !s.withinBookingWindow(day, salon.Settings.AdvanceBookingDays) {
		return []schedule.Range{}, nil
	}

	sched := master.WorkSchedule.Day(day.Weekday())
	if sched == nil {
		return []schedule.Range{}, nil
	}

	busy, err := s.blockingRanges(ctx, masterID, date)
	if err != nil {
		return nil, err
	}

	free := schedule.SubtractAll(sched.FreeWindows(), busy)
	slots := schedule.CandidateSlots(free, sched.Start, salon.Settings.SlotDurationMin, service.DurationMin)
	if slots == nil {
		slots = []schedule.Range{}
	}
	return slots, nil
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func (s *bookingService) Book(ctx context.Context, salonID uuid.UUID, req BookRequest) (*model.Appointment, error) {
	day, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start, err := schedule.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, ErrInvalidStart
	}

	salon, err := s.salons.GetByID(ctx, salonID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("get salon: %w", err)
	}

	master, err := s.masters.GetByID(ctx, salonID, req.MasterID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrMasterNotFound
		}
		return nil, fmt.Errorf("get master: %w", err)
	}
	if !master.IsActive {
		return nil, ErrMasterInactive
	}

	service, err := s.services.GetByID(ctx, salonID, req.ServiceID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !service.IsActive {
		return nil, ErrServiceInactive
	}

	offers, err := s.masters.OffersService(ctx, req.MasterID, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check offering: %w", err)
	}
	if !offers {
		return nil, ErrServiceNotOffered
	}

	if _, err := s.clients.GetByID(ctx, salonID, req.ClientID); err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}

	price := service.Price
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		price = *req.Price
	}

	// End time is derived, never supplied. A slot running past midnight
	// is rejected, not wrapped.
	end := start.Add(service.DurationMin)
	if end > schedule.MinutesPerDay {
		return nil, ErrOutOfHours
	}
	slot := schedule.Range{Start: start, End: end}

	if !s.withinBookingWindow(day, salon.Settings.AdvanceBookingDays) {
		return nil, ErrOutsideWindow
	}

	sched := master.WorkSchedule.Day(day.Weekday())
	if sched == nil {
		return nil, ErrOutOfHours
	}
	if !containedInAny(sched.FreeWindows(), slot) {
		return nil, ErrOutOfHours
	}

	appt := &model.Appointment{
		SalonID:   salonID,
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		ClientID:  req.ClientID,
		Date:      req.Date,
		StartTime: start,
		EndTime:   end,
		Status:    model.StatusConfirmed,
		Price:     price,
		Notes:     req.Notes,
	}

	// Serialize the check-then-insert per calendar. The transaction in
	// the repository re-checks overlap under a row lock; the mutex keeps
	// same-process callers from burning retries against each other.
	unlock := s.calendar.Lock(req.MasterID.String() + "|" + req.Date)
	defer unlock()

	err = s.appts.Book(ctx, appt)
	if err != nil && repository.IsRetryable(err) {
		err = s.appts.Book(ctx, appt)
	}
	if err != nil {
		if err == repository.ErrOverlap {
			if s.metrics != nil {
				s.metrics.RecordConflict(ctx)
			}
			return nil, ErrSlotTaken
		}
		if repository.IsRetryable(err) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("book appointment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordCreated(ctx, req.Public)
	}
	s.publish(ctx, "created", appt)
	return appt, nil
}

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

func (s *bookingService) Transition(ctx context.Context, salonID, apptID uuid.UUID, to model.Status) (*TransitionResult, error) {
	if !to.Valid() || to == model.StatusConfirmed {
		return nil, ErrInvalidStatus
	}

	appt, err := s.appts.GetByID(ctx, salonID, apptID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrApptNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	if !appt.Status.CanTransitionTo(to) {
		return nil, ErrIllegalTransition
	}

	if err := s.appts.Transition(ctx, appt, to); err != nil {
		if err == repository.ErrNotFound {
			// Lost the race against a concurrent transition.
			return nil, ErrIllegalTransition
		}
		return nil, fmt.Errorf("transition appointment: %w", err)
	}

	res := &TransitionResult{Appointment: appt}
	if to == model.StatusCancelled {
		res.LateCancellation = s.insideCancellationCutoff(ctx, salonID, appt)
	}

	if s.metrics != nil {
		s.metrics.RecordTransition(ctx, string(to))
	}
	s.publish(ctx, string(to), appt)
	return res, nil
}

func (s *bookingService) List(ctx context.Context, salonID uuid.UUID, f repository.ListFilter) ([]model.Appointment, error) {
	return s.appts.List(ctx, salonID, f)
}

func (s *bookingService) Get(ctx context.Context, salonID, id uuid.UUID) (*model.Appointment, error) {
	appt, err := s.appts.GetByID(ctx, salonID, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrApptNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// withinBookingWindow accepts dates from today through today+advanceDays,
// comparing calendar days on the local wall clock.
func (s *bookingService) withinBookingWindow(day time.Time, advanceDays int) bool {
	today, _ := time.Parse(model.DateLayout, s.now().Format(model.DateLayout))
	if day.Before(today) {
		return false
	}
	horizon := today.AddDate(0, 0, advanceDays)
	return !day.After(horizon)
}

func (s *bookingService) insideCancellationCutoff(ctx context.Context, salonID uuid.UUID, appt *model.Appointment) bool {
	salon := appt.Salon
	if salon == nil {
		var err error
		salon, err = s.salons.GetByID(ctx, salonID)
		if err != nil {
			return false
		}
	}
	cutoff := time.Duration(salon.Settings.CancellationHours) * time.Hour
	if cutoff <= 0 {
		return false
	}

	day, err := time.Parse(model.DateLayout, appt.Date)
	if err != nil {
		return false
	}
	startsAt := day.Add(time.Duration(appt.StartTime) * time.Minute)
	return wallClock(s.now()).Add(cutoff).After(startsAt)
}

// wallClock strips the location so salon-local wall time compares cleanly
// against dates parsed from DateLayout strings.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func (s *bookingService) blockingRanges(ctx context.Context, masterID uuid.UUID, date string) ([]schedule.Range, error) {
	appts, err := s.appts.Blocking(ctx, masterID, date)
	if err != nil {
		return nil, fmt.Errorf("load blocking appointments: %w", err)
	}
	out := make([]schedule.Range, 0, len(appts))
	for i := range appts {
		out = append(out, appts[i].Range())
	}
	return out, nil
}

func containedInAny(windows []schedule.Range, slot schedule.Range) bool {
	for _, w := range windows {
		if w.Contains(slot) {
			return true
		}
	}
	return false
}

// publish emits an appointment lifecycle event. Best-effort: a dropped
// event only delays cache invalidation.
func (s *bookingService) publish(ctx context.Context, event string, appt *model.Appointment) {
	if s.nc == nil {
		return
	}
	subject := "glowdesk.appointment." + event + "." + appt.SalonID.String()
	if err := s.nc.Publish(subject, []byte(appt.ID.String())); err != nil {
		slog.Warn("publish appointment event failed", "subject", subject, "err", err)
	}
}
