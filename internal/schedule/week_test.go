package schedule

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestDayValidate(t *testing.T) {
	valid := &Day{Start: 9 * 60, End: 21 * 60, Break: &Range{Start: 13 * 60, End: 14 * 60}}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid day rejected: %v", err)
	}

	var nilDay *Day
	if err := nilDay.Validate(); err != nil {
		t.Errorf("nil (closed) day rejected: %v", err)
	}

	cases := []struct {
		name string
		day  *Day
	}{
		{name: "start after end", day: &Day{Start: 21 * 60, End: 9 * 60}},
		{name: "zero length", day: &Day{Start: 9 * 60, End: 9 * 60}},
		{name: "inverted break", day: &Day{Start: 9 * 60, End: 21 * 60, Break: &Range{Start: 14 * 60, End: 13 * 60}}},
		{name: "break outside window", day: &Day{Start: 9 * 60, End: 21 * 60, Break: &Range{Start: 8 * 60, End: 10 * 60}}},
	}
	for _, tc := range cases {
		if err := tc.day.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestDayFreeWindows(t *testing.T) {
	withBreak := &Day{Start: 9 * 60, End: 21 * 60, Break: &Range{Start: 13 * 60, End: 14 * 60}}
	got := withBreak.FreeWindows()
	want := []Range{{Start: 9 * 60, End: 13 * 60}, {Start: 14 * 60, End: 21 * 60}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeWindows = %v, want %v", got, want)
	}

	noBreak := &Day{Start: 10 * 60, End: 20 * 60}
	got = noBreak.FreeWindows()
	want = []Range{{Start: 10 * 60, End: 20 * 60}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FreeWindows = %v, want %v", got, want)
	}

	var closed *Day
	if got := closed.FreeWindows(); got != nil {
		t.Errorf("closed day FreeWindows = %v, want nil", got)
	}
}

func TestWeekDayLookup(t *testing.T) {
	w := DefaultSalonWeek()

	for _, wd := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	} {
		d := w.Day(wd)
		if d == nil {
			t.Fatalf("%s: expected open day", wd)
		}
		if d.Start != 9*60 || d.End != 21*60 {
			t.Errorf("%s: window %s-%s, want 09:00-21:00", wd, d.Start, d.End)
		}
	}
	for _, wd := range []time.Weekday{time.Saturday, time.Sunday} {
		d := w.Day(wd)
		if d == nil {
			t.Fatalf("%s: expected open day", wd)
		}
		if d.Start != 10*60 || d.End != 20*60 {
			t.Errorf("%s: window %s-%s, want 10:00-20:00", wd, d.Start, d.End)
		}
	}
}

func TestWeekJSONOmitsClosedDays(t *testing.T) {
	w := Week{Mon: &Day{Start: 9 * 60, End: 17 * 60}}
	b, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(m) != 1 {
		t.Errorf("expected only mon in payload, got keys %v", m)
	}

	var back Week
	if err := back.Scan(b); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if back.Mon == nil || back.Tue != nil {
		t.Errorf("round trip lost day shape: %+v", back)
	}
}
