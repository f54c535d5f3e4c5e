package schedule

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:00", want: 9 * 60},
		{in: "13:30", want: 13*60 + 30},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", want: MinutesPerDay},
		{in: "9:05", want: 9*60 + 5},
		{in: "14:00:00", want: 14 * 60},
		{in: "25:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(9*60 + 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want %q", got, "09:05")
	}
	if got := TimeOfDay(0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	orig := TimeOfDay(13 * 60)
	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(b) != `"13:00"` {
		t.Errorf("Marshal = %s, want %q", b, `"13:00"`)
	}

	var back TimeOfDay
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != orig {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestTimeOfDaySQLValue(t *testing.T) {
	v, err := TimeOfDay(20*60 + 30).Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "20:30:00" {
		t.Errorf("Value = %v, want %q", v, "20:30:00")
	}

	var scanned TimeOfDay
	if err := scanned.Scan("08:15:00"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if scanned != TimeOfDay(8*60+15) {
		t.Errorf("Scan = %v, want %v", scanned, TimeOfDay(8*60+15))
	}
}
