package schedule

import (
	"reflect"
	"testing"
)

func rng(start, end TimeOfDay) Range { return Range{Start: start, End: end} }

func TestRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Range
		want bool
	}{
		{name: "disjoint", a: rng(540, 600), b: rng(660, 720), want: false},
		{name: "touching endpoints do not overlap", a: rng(540, 600), b: rng(600, 660), want: false},
		{name: "partial overlap", a: rng(540, 620), b: rng(600, 660), want: true},
		{name: "contained", a: rng(540, 720), b: rng(600, 660), want: true},
		{name: "identical", a: rng(540, 600), b: rng(540, 600), want: true},
	}

	for _, tc := range cases {
		if got := tc.a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		// symmetric
		if got := tc.b.Overlaps(tc.a); got != tc.want {
			t.Errorf("%s: reversed Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRangeContains(t *testing.T) {
	outer := rng(540, 780)
	if !outer.Contains(rng(540, 780)) {
		t.Error("range should contain itself")
	}
	if !outer.Contains(rng(600, 660)) {
		t.Error("range should contain inner range")
	}
	if outer.Contains(rng(500, 600)) {
		t.Error("range should not contain range starting earlier")
	}
	if outer.Contains(rng(700, 800)) {
		t.Error("range should not contain range ending later")
	}
}

func TestRangeSubtract(t *testing.T) {
	cases := []struct {
		name string
		r    Range
		busy Range
		want []Range
	}{
		{
			name: "no overlap leaves range intact",
			r:    rng(540, 780),
			busy: rng(800, 860),
			want: []Range{rng(540, 780)},
		},
		{
			name: "middle split",
			r:    rng(540, 780),
			busy: rng(600, 660),
			want: []Range{rng(540, 600), rng(660, 780)},
		},
		{
			name: "leading cut",
			r:    rng(540, 780),
			busy: rng(500, 600),
			want: []Range{rng(600, 780)},
		},
		{
			name: "trailing cut",
			r:    rng(540, 780),
			busy: rng(700, 800),
			want: []Range{rng(540, 700)},
		},
		{
			name: "full cover removes range",
			r:    rng(540, 780),
			busy: rng(500, 800),
			want: nil,
		},
	}

	for _, tc := range cases {
		got := tc.r.Subtract(tc.busy)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Subtract = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSubtractAll(t *testing.T) {
	// 09:00-21:00 minus lunch 13:00-14:00 and two appointments.
	free := []Range{rng(9*60, 21*60)}
	busy := []Range{
		rng(13*60, 14*60),
		rng(10*60, 11*60),
		rng(15*60, 15*60+30),
	}

	got := SubtractAll(free, busy)
	want := []Range{
		rng(9*60, 10*60),
		rng(11*60, 13*60),
		rng(14*60, 15*60),
		rng(15*60+30, 21*60),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubtractAll = %v, want %v", got, want)
	}
}
