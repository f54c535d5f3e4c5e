package model

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusNoShow, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusNoShow, StatusCompleted, false},
		{StatusConfirmed, Status("unknown"), false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusBlocks(t *testing.T) {
	if !StatusConfirmed.Blocks() {
		t.Error("confirmed must occupy its slot")
	}
	if !StatusCompleted.Blocks() {
		t.Error("completed must occupy its slot")
	}
	if StatusCancelled.Blocks() {
		t.Error("cancelled must free its slot")
	}
	if StatusNoShow.Blocks() {
		t.Error("no_show must free its slot")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.SlotDurationMin != 30 {
		t.Errorf("SlotDurationMin = %d, want 30", s.SlotDurationMin)
	}
}

func TestSettingsValidate(t *testing.T) {
	bad := []Settings{
		{SlotDurationMin: 0, AdvanceBookingDays: 30, CancellationHours: 2},
		{SlotDurationMin: 30, AdvanceBookingDays: 0, CancellationHours: 2},
		{SlotDurationMin: 30, AdvanceBookingDays: 30, CancellationHours: -1},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, s)
		}
	}
}
