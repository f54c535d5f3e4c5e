package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Day is one weekday's working window. A nil *Day in a Week means the
// day is closed. Break, when present, must lie inside [Start, End).
type Day struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
	Break *Range    `json:"break,omitempty"`
}

// Validate enforces the write-time invariants: start < end and the break
// window, if any, inside the working window.
func (d *Day) Validate() error {
	if d == nil {
		return nil
	}
	if d.Start >= d.End {
		return fmt.Errorf("day window %s-%s: start must be before end", d.Start, d.End)
	}
	if d.End > MinutesPerDay {
		return fmt.Errorf("day window ends past midnight")
	}
	if d.Break != nil {
		if !d.Break.IsValid() {
			return fmt.Errorf("break %s-%s: start must be before end", d.Break.Start, d.Break.End)
		}
		if !(Range{Start: d.Start, End: d.End}).Contains(*d.Break) {
			return fmt.Errorf("break %s-%s lies outside working window %s-%s",
				d.Break.Start, d.Break.End, d.Start, d.End)
		}
	}
	return nil
}

// Window returns the open-to-close range.
func (d *Day) Window() Range {
	return Range{Start: d.Start, End: d.End}
}

// FreeWindows returns the working window minus the break, in order.
func (d *Day) FreeWindows() []Range {
	if d == nil {
		return nil
	}
	if d.Break == nil {
		return []Range{d.Window()}
	}
	return d.Window().Subtract(*d.Break)
}

// Week is a per-weekday working calendar. It is stored as a JSONB column;
// a missing or null day means closed.
type Week struct {
	Mon *Day `json:"mon,omitempty"`
	Tue *Day `json:"tue,omitempty"`
	Wed *Day `json:"wed,omitempty"`
	Thu *Day `json:"thu,omitempty"`
	Fri *Day `json:"fri,omitempty"`
	Sat *Day `json:"sat,omitempty"`
	Sun *Day `json:"sun,omitempty"`
}

// Day returns the schedule for the given weekday, nil if closed.
func (w Week) Day(wd time.Weekday) *Day {
	switch wd {
	case time.Monday:
		return w.Mon
	case time.Tuesday:
		return w.Tue
	case time.Wednesday:
		return w.Wed
	case time.Thursday:
		return w.Thu
	case time.Friday:
		return w.Fri
	case time.Saturday:
		return w.Sat
	default:
		return w.Sun
	}
}

// Validate checks every open day.
func (w Week) Validate() error {
	for name, d := range map[string]*Day{
		"mon": w.Mon, "tue": w.Tue, "wed": w.Wed, "thu": w.Thu,
		"fri": w.Fri, "sat": w.Sat, "sun": w.Sun,
	} {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (w Week) Value() (driver.Value, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w *Week) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	case nil:
		*w = Week{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Week", src)
	}
}

// DefaultSalonWeek is the calendar a new salon starts with.
func DefaultSalonWeek() Week {
	wk := &Day{Start: 9 * 60, End: 21 * 60}
	we := &Day{Start: 10 * 60, End: 20 * 60}
	return Week{Mon: wk, Tue: wk, Wed: wk, Thu: wk, Fri: wk, Sat: we, Sun: we}
}
