package schedule

// Range is a half-open interval [Start, End) within a single day.
type Range struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// IsValid reports whether the range has positive length.
func (r Range) IsValid() bool {
	return r.Start < r.End
}

// Duration returns the range length in minutes.
func (r Range) Duration() int {
	return int(r.End - r.Start)
}

// Overlaps implements the half-open overlap test: two ranges overlap iff
// s1 < e2 && s2 < e1. Touching endpoints do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Contains reports whether other lies fully inside r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Subtract removes busy from r and returns the remaining free pieces
// in chronological order. Busy ranges outside r are ignored.
func (r Range) Subtract(busy Range) []Range {
	if !r.Overlaps(busy) {
		return []Range{r}
	}
	var out []Range
	if r.Start < busy.Start {
		out = append(out, Range{Start: r.Start, End: busy.Start})
	}
	if busy.End < r.End {
		out = append(out, Range{Start: busy.End, End: r.End})
	}
	return out
}

// SubtractAll removes every busy range from the free set, keeping the
// result sorted. Free input must be sorted and non-overlapping.
func SubtractAll(free []Range, busy []Range) []Range {
	for _, b := range busy {
		var next []Range
		for _, f := range free {
			next = append(next, f.Subtract(b)...)
		}
		free = next
	}
	return free
}
