package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			input: "2026-03-15T10:30:00Z",
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			input: "2026-03-15",
			want:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "15/03/2026",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	base := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	inputs := []time.Time{
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 9, 45, 12, 999, time.UTC),
		time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC),
	}
	for _, in := range inputs {
		if got := NormalizeDate(in); !got.Equal(base) {
			t.Errorf("NormalizeDate(%v) = %v, want %v", in, got, base)
		}
	}

	// Same wall-clock day in a non-UTC zone normalizes to the UTC day the
	// instant actually falls on.
	ist := time.FixedZone("IST", 5*3600+1800)
	early := time.Date(2026, 3, 15, 2, 30, 0, 0, ist) // 2026-03-14T21:00Z
	if got := NormalizeDate(early); !got.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("NormalizeDate across zones = %v, want 2026-03-14T00:00:00Z", got)
	}

	// Idempotent.
	if got := NormalizeDate(NormalizeDate(base)); !got.Equal(base) {
		t.Errorf("NormalizeDate not idempotent: %v", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{66.666666, 66.67},
		{33.333333, 33.33},
		{0, 0},
		{100, 100},
		{87.5, 87.5},
		{0.005, 0.01},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Errorf("ParseDuration(90s) = %v", got)
	}
	if got := ParseDuration("bogus", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration fallback = %v, want 1m", got)
	}
}
