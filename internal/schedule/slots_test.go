package schedule

import (
	"reflect"
	"testing"
)

// The canonical working day: 09:00-21:00 with a 13:00-14:00 break, 30 minute
// grid, 60 minute service. 12:30 must not appear (would run into the break),
// 14:00 must appear, 20:30 must not (would run past closing).
func TestCandidateSlotsAroundBreak(t *testing.T) {
	day := &Day{Start: 9 * 60, End: 21 * 60, Break: &Range{Start: 13 * 60, End: 14 * 60}}
	slots := CandidateSlots(day.FreeWindows(), day.Start, 30, 60)

	starts := make(map[string]bool, len(slots))
	for _, s := range slots {
		starts[s.Start.String()] = true
	}

	for _, want := range []string{"09:00", "12:00", "14:00", "20:00"} {
		if !starts[want] {
			t.Errorf("expected slot at %s, got %v", want, keys(starts))
		}
	}
	for _, reject := range []string{"12:30", "13:00", "13:30", "20:30"} {
		if starts[reject] {
			t.Errorf("slot at %s must not be offered", reject)
		}
	}
}

func TestCandidateSlotsExactFit(t *testing.T) {
	// One free hour fits exactly one 60 minute slot.
	free := []Range{{Start: 10 * 60, End: 11 * 60}}
	got := CandidateSlots(free, 9*60, 30, 60)
	want := []Range{{Start: 10 * 60, End: 11 * 60}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidateSlots = %v, want %v", got, want)
	}
}

func TestCandidateSlotsTooShortWindow(t *testing.T) {
	free := []Range{{Start: 10 * 60, End: 10*60 + 45}}
	if got := CandidateSlots(free, 9*60, 30, 60); got != nil {
		t.Errorf("45 minute window should fit no 60 minute slot, got %v", got)
	}
}

func TestCandidateSlotsGridAlignment(t *testing.T) {
	// Free window starts off-grid at 09:10; first candidate snaps to 09:30.
	free := []Range{{Start: 9*60 + 10, End: 11 * 60}}
	got := CandidateSlots(free, 9*60, 30, 30)
	want := []Range{
		{Start: 9*60 + 30, End: 10 * 60},
		{Start: 10 * 60, End: 10*60 + 30},
		{Start: 10*60 + 30, End: 11 * 60},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidateSlots = %v, want %v", got, want)
	}
}

func TestCandidateSlotsDegenerateInputs(t *testing.T) {
	free := []Range{{Start: 9 * 60, End: 17 * 60}}
	if got := CandidateSlots(free, 9*60, 0, 60); got != nil {
		t.Errorf("zero step must yield nil, got %v", got)
	}
	if got := CandidateSlots(free, 9*60, 30, 0); got != nil {
		t.Errorf("zero duration must yield nil, got %v", got)
	}
	if got := CandidateSlots(nil, 9*60, 30, 60); got != nil {
		t.Errorf("no free windows must yield nil, got %v", got)
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct {
		t    TimeOfDay
		want TimeOfDay
	}{
		{t: 9 * 60, want: 9 * 60},
		{t: 8 * 60, want: 9 * 60},
		{t: 9*60 + 1, want: 9*60 + 30},
		{t: 9*60 + 30, want: 9*60 + 30},
		{t: 9*60 + 31, want: 10 * 60},
	}
	for _, tc := range cases {
		if got := alignUp(tc.t, 9*60, 30); got != tc.want {
			t.Errorf("alignUp(%s) = %s, want %s", tc.t, got, tc.want)
		}
	}
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
