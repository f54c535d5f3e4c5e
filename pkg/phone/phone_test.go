package phone

import "testing"

func TestNormalize(t *testing.T) {
	n := NewNormalizer("US")

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "national format",
			raw:  "(415) 555-2671",
			want: "+14155552671",
		},
		{
			name: "already e164",
			raw:  "+14155552671",
			want: "+14155552671",
		},
		{
			name: "e164 from another region",
			raw:  "+442071838750",
			want: "+442071838750",
		},
		{
			name: "whitespace around number",
			raw:  "  +1 415 555 2671  ",
			want: "+14155552671",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "garbage",
			raw:     "not-a-number",
			wantErr: true,
		},
		{
			name:    "too short",
			raw:     "123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Normalize(%q) error = nil, want error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeSamePersonTwoFormats(t *testing.T) {
	n := NewNormalizer("GB")

	a, err := n.Normalize("020 7183 8750")
	if err != nil {
		t.Fatalf("Normalize national: %v", err)
	}
	b, err := n.Normalize("+44 20 7183 8750")
	if err != nil {
		t.Fatalf("Normalize international: %v", err)
	}
	if a != b {
		t.Errorf("same number normalized differently: %q vs %q", a, b)
	}
}
