package schedule

// CandidateSlots quantizes free intervals into bookable slots of the given
// duration. Candidate start times lie on a grid anchored at gridStart and
// spaced by step minutes; a candidate survives only when both the start and
// the full [start, start+duration) interval fit inside one free interval.
// The result is chronological. Free input must be sorted.
func CandidateSlots(free []Range, gridStart TimeOfDay, step, duration int) []Range {
	if step <= 0 || duration <= 0 {
		return nil
	}
	var out []Range
	for _, f := range free {
		start := alignUp(f.Start, gridStart, step)
		for ; start.Add(duration) <= f.End; start = start.Add(step) {
			out = append(out, Range{Start: start, End: start.Add(duration)})
		}
	}
	return out
}

// alignUp returns the first grid point at or after t.
func alignUp(t, gridStart TimeOfDay, step int) TimeOfDay {
	if t <= gridStart {
		return gridStart
	}
	offset := int(t - gridStart)
	rem := offset % step
	if rem == 0 {
		return t
	}
	return t.Add(step - rem)
}
