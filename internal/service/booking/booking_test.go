package booking

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/glowdesk_backend/internal/model"
	"github.com/Alijeyrad/glowdesk_backend/internal/schedule"
	"github.com/Alijeyrad/glowdesk_backend/pkg/observability"
)

// The reference calendar: master works Mondays 09:00-21:00 with a
// 13:00-14:00 break, the haircut takes 60 minutes, slots on a 30 minute
// grid. "Now" is pinned to Monday 2026-03-02 08:00.
const (
	monday     = "2026-03-02"
	nextMonday = "2026-03-09"
)

type fixture struct {
	store   *memStore
	svc     *bookingService
	salonID uuid.UUID
	master  *model.Master
	haircut *model.Service
	client  *model.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	ctx := context.Background()
	repo := store.repo()

	salon := &model.Salon{
		Name:      "Glow",
		Email:     "glow@example.com",
		WorkHours: schedule.DefaultSalonWeek(),
		Settings:  model.DefaultSettings(),
	}
	if err := repo.Salon.Create(ctx, salon); err != nil {
		t.Fatalf("seed salon: %v", err)
	}

	master := &model.Master{
		SalonID: salon.ID,
		Name:    "Anna",
		WorkSchedule: schedule.Week{
			Mon: &schedule.Day{
				Start: 9 * 60,
				End:   21 * 60,
				Break: &schedule.Range{Start: 13 * 60, End: 14 * 60},
			},
		},
		IsActive: true,
	}
	if err := repo.Master.Create(ctx, master); err != nil {
		t.Fatalf("seed master: %v", err)
	}

	haircut := &model.Service{
		SalonID:     salon.ID,
		Name:        "Haircut",
		DurationMin: 60,
		Price:       4500,
		IsActive:    true,
	}
	if err := repo.Service.Create(ctx, haircut); err != nil {
		t.Fatalf("seed service: %v", err)
	}
	store.addOffer(master.ID, haircut.ID)

	client := &model.Client{SalonID: salon.ID, Name: "Maria", Phone: "+15551234567"}
	if err := repo.Client.Create(ctx, client); err != nil {
		t.Fatalf("seed client: %v", err)
	}

	svc := New(repo, nil, observability.NewBookingMetrics()).(*bookingService)
	svc.now = func() time.Time {
		return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	}

	return &fixture{
		store:   store,
		svc:     svc,
		salonID: salon.ID,
		master:  master,
		haircut: haircut,
		client:  client,
	}
}

func (f *fixture) book(t *testing.T, date, start string) *model.Appointment {
	t.Helper()
	appt, err := f.svc.Book(context.Background(), f.salonID, BookRequest{
		MasterID:  f.master.ID,
		ServiceID: f.haircut.ID,
		ClientID:  f.client.ID,
		Date:      date,
		Start:     start,
	})
	if err != nil {
		t.Fatalf("Book(%s %s) failed: %v", date, start, err)
	}
	return appt
}

func slotStarts(slots []schedule.Range) map[string]bool {
	out := make(map[string]bool, len(slots))
	for _, s := range slots {
		out[s.Start.String()] = true
	}
	return out
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func TestFreeSlotsAroundBreakAndClose(t *testing.T) {
	f := newFixture(t)

	slots, err := f.svc.FreeSlots(context.Background(), f.salonID, f.master.ID, f.haircut.ID, monday)
	if err != nil {
		t.Fatalf("FreeSlots failed: %v", err)
	}

	starts := slotStarts(slots)
	for _, want := range []string{"09:00", "12:00", "14:00", "20:00"} {
		if !starts[want] {
			t.Errorf("expected slot at %s", want)
		}
	}
	for _, reject := range []string{"12:30", "13:00", "13:30", "20:30"} {
		if starts[reject] {
			t.Errorf("slot at %s must not be offered", reject)
		}
	}
}

func TestFreeSlotsExcludeBookedIntervals(t *testing.T) {
	f := newFixture(t)
	f.book(t, monday, "14:00")

	slots, err := f.svc.FreeSlots(context.Background(), f.salonID, f.master.ID, f.haircut.ID, monday)
	if err != nil {
		t.Fatalf("FreeSlots failed: %v", err)
	}

	starts := slotStarts(slots)
	for _, reject := range []string{"14:00", "14:30"} {
		if starts[reject] {
			t.Errorf("slot at %s collides with the 14:00-15:00 booking", reject)
		}
	}
	if !starts["15:00"] {
		t.Error("15:00 should remain bookable after the 14:00-15:00 booking")
	}
}

func TestFreeSlotsRecomputationStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, monday, "09:30")
	f.book(t, monday, "16:00")

	first, err := f.svc.FreeSlots(ctx, f.salonID, f.master.ID, f.haircut.ID, monday)
	if err != nil {
		t.Fatalf("first FreeSlots failed: %v", err)
	}
	second, err := f.svc.FreeSlots(ctx, f.salonID, f.master.ID, f.haircut.ID, monday)
	if err != nil {
		t.Fatalf("second FreeSlots failed: %v", err)
	}

	// With no writes in between, recomputation returns the same slots in
	// the same order.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("recomputation diverged:\nfirst  = %v\nsecond = %v", first, second)
	}
}

func TestFreeSlotsAdvisoryEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	check := func(name, date string) {
		t.Helper()
		slots, err := f.svc.FreeSlots(ctx, f.salonID, f.master.ID, f.haircut.ID, date)
		if err != nil {
			t.Fatalf("%s: FreeSlots failed: %v", name, err)
		}
		if len(slots) != 0 {
			t.Errorf("%s: expected no slots, got %v", name, slots)
		}
	}

	// Closed weekday (schedule only covers Monday).
	check("closed day", "2026-03-03")
	// Beyond the 30 day advance window.
	check("beyond window", "2026-04-06")
	// Past date.
	check("past date", "2026-02-23")

	// Inactive master.
	f.master.IsActive = false
	if err := f.store.repo().Master.Update(ctx, f.master); err != nil {
		t.Fatalf("deactivate master: %v", err)
	}
	check("inactive master", monday)
	f.master.IsActive = true
	if err := f.store.repo().Master.Update(ctx, f.master); err != nil {
		t.Fatalf("reactivate master: %v", err)
	}

	// Service the master does not offer.
	other := &model.Service{SalonID: f.salonID, Name: "Massage", DurationMin: 30, Price: 2000, IsActive: true}
	if err := f.store.repo().Service.Create(ctx, other); err != nil {
		t.Fatalf("seed service: %v", err)
	}
	slots, err := f.svc.FreeSlots(ctx, f.salonID, f.master.ID, other.ID, monday)
	if err != nil {
		t.Fatalf("FreeSlots failed: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("unoffered service: expected no slots, got %v", slots)
	}
}

func TestFreeSlotsInvalidDate(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.FreeSlots(context.Background(), f.salonID, f.master.ID, f.haircut.ID, "03/02/2026")
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func TestBookDerivesEndAndSnapshotsPrice(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, monday, "14:00")

	if appt.Status != model.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", appt.Status)
	}
	if appt.StartTime.String() != "14:00" || appt.EndTime.String() != "15:00" {
		t.Errorf("interval = %s-%s, want 14:00-15:00", appt.StartTime, appt.EndTime)
	}
	if appt.Price != 4500 {
		t.Errorf("price snapshot = %d, want 4500", appt.Price)
	}

	// Later catalog edits must not touch the snapshot.
	f.haircut.Price = 9900
	if err := f.store.repo().Service.Update(context.Background(), f.haircut); err != nil {
		t.Fatalf("update service: %v", err)
	}
	got, err := f.svc.Get(context.Background(), f.salonID, appt.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Price != 4500 {
		t.Errorf("price drifted to %d after catalog edit", got.Price)
	}
}

func TestBookPriceOverride(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	override := int64(3800)
	appt, err := f.svc.Book(ctx, f.salonID, BookRequest{
		MasterID:  f.master.ID,
		ServiceID: f.haircut.ID,
		ClientID:  f.client.ID,
		Date:      monday,
		Start:     "14:00",
		Price:     &override,
	})
	if err != nil {
		t.Fatalf("Book with override failed: %v", err)
	}
	if appt.Price != 3800 {
		t.Errorf("price = %d, want override 3800", appt.Price)
	}

	negative := int64(-1)
	_, err = f.svc.Book(ctx, f.salonID, BookRequest{
		MasterID:  f.master.ID,
		ServiceID: f.haircut.ID,
		ClientID:  f.client.ID,
		Date:      monday,
		Start:     "15:00",
		Price:     &negative,
	})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative override: expected ErrInvalidPrice, got %v", err)
	}
}

func TestBookRejectsOutOfHours(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		date  string
		start string
	}{
		{name: "runs into break", date: monday, start: "12:30"},
		{name: "inside break", date: monday, start: "13:00"},
		{name: "runs past closing", date: monday, start: "20:30"},
		{name: "before opening", date: monday, start: "08:00"},
		{name: "closed weekday", date: "2026-03-03", start: "10:00"},
		{name: "would cross midnight", date: monday, start: "23:30"},
	}
	for _, tc := range cases {
		_, err := f.svc.Book(ctx, f.salonID, BookRequest{
			MasterID:  f.master.ID,
			ServiceID: f.haircut.ID,
			ClientID:  f.client.ID,
			Date:      tc.date,
			Start:     tc.start,
		})
		if !errors.Is(err, ErrOutOfHours) {
			t.Errorf("%s: expected ErrOutOfHours, got %v", tc.name, err)
		}
	}
}

func TestBookRejectsOutsideWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, date := range []string{"2026-04-06", "2026-02-23"} {
		_, err := f.svc.Book(ctx, f.salonID, BookRequest{
			MasterID:  f.master.ID,
			ServiceID: f.haircut.ID,
			ClientID:  f.client.ID,
			Date:      date,
			Start:     "14:00",
		})
		if !errors.Is(err, ErrOutsideWindow) {
			t.Errorf("%s: expected ErrOutsideWindow, got %v", date, err)
		}
	}
}

func TestBookSlotTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, monday, "14:00")

	// Identical and partially overlapping requests both collide.
	for _, start := range []string{"14:00", "14:30"} {
		_, err := f.svc.Book(ctx, f.salonID, BookRequest{
			MasterID:  f.master.ID,
			ServiceID: f.haircut.ID,
			ClientID:  f.client.ID,
			Date:      monday,
			Start:     start,
		})
		if !errors.Is(err, ErrSlotTaken) {
			t.Errorf("%s: expected ErrSlotTaken, got %v", start, err)
		}
	}

	// Back-to-back is fine: [14:00,15:00) and [15:00,16:00) touch, not overlap.
	f.book(t, monday, "15:00")
}

func TestBookAfterCancellationFreesSlot(t *testing.T) {
	f := newFixture(t)
	appt := f.book(t, nextMonday, "14:00")

	if _, err := f.svc.Transition(context.Background(), f.salonID, appt.ID, model.StatusCancelled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// The cancelled appointment no longer blocks the interval.
	f.book(t, nextMonday, "14:00")
}

func TestBookUnknownAndInactiveEntities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := BookRequest{
		MasterID:  f.master.ID,
		ServiceID: f.haircut.ID,
		ClientID:  f.client.ID,
		Date:      monday,
		Start:     "14:00",
	}

	if _, err := f.svc.Book(ctx, uuid.New(), base); !errors.Is(err, ErrSalonNotFound) {
		t.Errorf("unknown salon: expected ErrSalonNotFound, got %v", err)
	}
	if _, err := f.svc.FreeSlots(ctx, uuid.New(), f.master.ID, f.haircut.ID, monday); !errors.Is(err, ErrSalonNotFound) {
		t.Errorf("unknown salon availability: expected ErrSalonNotFound, got %v", err)
	}

	req := base
	req.MasterID = uuid.New()
	if _, err := f.svc.Book(ctx, f.salonID, req); !errors.Is(err, ErrMasterNotFound) {
		t.Errorf("unknown master: expected ErrMasterNotFound, got %v", err)
	}

	req = base
	req.ServiceID = uuid.New()
	if _, err := f.svc.Book(ctx, f.salonID, req); !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("unknown service: expected ErrServiceNotFound, got %v", err)
	}

	req = base
	req.ClientID = uuid.New()
	if _, err := f.svc.Book(ctx, f.salonID, req); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("unknown client: expected ErrClientNotFound, got %v", err)
	}

	f.haircut.IsActive = false
	if err := f.store.repo().Service.Update(ctx, f.haircut); err != nil {
		t.Fatalf("deactivate service: %v", err)
	}
	if _, err := f.svc.Book(ctx, f.salonID, base); !errors.Is(err, ErrServiceInactive) {
		t.Errorf("inactive service: expected ErrServiceInactive, got %v", err)
	}
	f.haircut.IsActive = true
	if err := f.store.repo().Service.Update(ctx, f.haircut); err != nil {
		t.Fatalf("reactivate service: %v", err)
	}

	other := &model.Service{SalonID: f.salonID, Name: "Massage", DurationMin: 30, Price: 2000, IsActive: true}
	if err := f.store.repo().Service.Create(ctx, other); err != nil {
		t.Fatalf("seed service: %v", err)
	}
	req = base
	req.ServiceID = other.ID
	if _, err := f.svc.Book(ctx, f.salonID, req); !errors.Is(err, ErrServiceNotOffered) {
		t.Errorf("unoffered service: expected ErrServiceNotOffered, got %v", err)
	}
}

func TestBookConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Book(ctx, f.salonID, BookRequest{
				MasterID:  f.master.ID,
				ServiceID: f.haircut.ID,
				ClientID:  f.client.ID,
				Date:      monday,
				Start:     "14:00",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotTaken):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("wins = %d, want exactly 1", wins)
	}
	if conflicts != attempts-1 {
		t.Errorf("conflicts = %d, want %d", conflicts, attempts-1)
	}
}

func TestPreviewMatchesBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slots, err := f.svc.FreeSlots(ctx, f.salonID, f.master.ID, f.haircut.ID, monday)
	if err != nil {
		t.Fatalf("FreeSlots failed: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected available slots")
	}

	// Every previewed slot must be bookable, and disappear once taken.
	first := slots[0]
	f.book(t, monday, first.Start.String())

	after, err := f.svc.FreeSlots(ctx, f.salonID, f.master.ID, f.haircut.ID, monday)
	if err != nil {
		t.Fatalf("FreeSlots failed: %v", err)
	}
	if slotStarts(after)[first.Start.String()] {
		t.Errorf("slot %s still offered after being booked", first.Start)
	}
}

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

func TestTransitionCompleteUpdatesAggregates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt := f.book(t, monday, "14:00")

	res, err := f.svc.Transition(ctx, f.salonID, appt.ID, model.StatusCompleted)
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if res.Appointment.Status != model.StatusCompleted {
		t.Errorf("status = %s, want completed", res.Appointment.Status)
	}
	if res.LateCancellation {
		t.Error("completion must never carry the late cancellation flag")
	}

	client, err := f.store.repo().Client.GetByID(ctx, f.salonID, f.client.ID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if client.VisitsCount != 1 {
		t.Errorf("VisitsCount = %d, want 1", client.VisitsCount)
	}
	if client.TotalSpent != 4500 {
		t.Errorf("TotalSpent = %d, want 4500", client.TotalSpent)
	}
	if client.LastVisit == nil || client.LastVisit.Format(model.DateLayout) != monday {
		t.Errorf("LastVisit = %v, want %s", client.LastVisit, monday)
	}
}

func TestTransitionTerminalStatesFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt := f.book(t, monday, "14:00")

	if _, err := f.svc.Transition(ctx, f.salonID, appt.ID, model.StatusCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	for _, to := range []model.Status{model.StatusCancelled, model.StatusNoShow, model.StatusCompleted} {
		_, err := f.svc.Transition(ctx, f.salonID, appt.ID, to)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Errorf("completed -> %s: expected ErrIllegalTransition, got %v", to, err)
		}
	}
}

func TestTransitionRejectsInvalidTargets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appt := f.book(t, monday, "14:00")

	for _, to := range []model.Status{model.StatusConfirmed, model.Status("bogus")} {
		_, err := f.svc.Transition(ctx, f.salonID, appt.ID, to)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("-> %q: expected ErrInvalidStatus, got %v", to, err)
		}
	}

	_, err := f.svc.Transition(ctx, f.salonID, uuid.New(), model.StatusCancelled)
	if !errors.Is(err, ErrApptNotFound) {
		t.Errorf("unknown appointment: expected ErrApptNotFound, got %v", err)
	}
}

func TestLateCancellationFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Now is 08:00, the cutoff is 2 hours. An appointment at 09:00 today is
	// inside the cutoff; one at 15:00 is comfortably outside it.
	late := f.book(t, monday, "09:00")
	early := f.book(t, monday, "15:00")

	res, err := f.svc.Transition(ctx, f.salonID, late.ID, model.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if !res.LateCancellation {
		t.Error("cancellation 1h before start must be flagged late")
	}

	res, err = f.svc.Transition(ctx, f.salonID, early.ID, model.StatusCancelled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if res.LateCancellation {
		t.Error("cancellation 7h before start must not be flagged late")
	}
}
