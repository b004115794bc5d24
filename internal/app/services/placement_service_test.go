package services

import (
	"testing"
	"time"

	"github.com/campushub/backend/internal/app/models"
)

func TestApplicationWindowOpen(t *testing.T) {
	deadline := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		active bool
		now    time.Time
		want   bool
	}{
		{"well before deadline", true, time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), true},
		{"on the deadline day", true, time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC), true},
		{"day after deadline", true, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), false},
		{"inactive drive", false, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Placement{Active: tt.active, Deadline: deadline}
			if got := ApplicationWindowOpen(p, tt.now); got != tt.want {
				t.Errorf("ApplicationWindowOpen(now=%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestDeadlinePassed(t *testing.T) {
	deadline := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		active bool
		now    time.Time
		want   bool
	}{
		{"well before deadline", true, time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC), false},
		{"on the deadline day", true, time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC), false},
		{"day after deadline", true, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), true},
		// Deactivating a drive must not close the withdrawal window early.
		{"inactive drive before deadline", false, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), false},
		{"inactive drive after deadline", false, time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Placement{Active: tt.active, Deadline: deadline}
			if got := DeadlinePassed(p, tt.now); got != tt.want {
				t.Errorf("DeadlinePassed(now=%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestApplicationWindowOpenTimestampedDeadline(t *testing.T) {
	// A deadline stored with a time-of-day still closes at end of that day.
	p := &models.Placement{
		Active:   true,
		Deadline: time.Date(2026, 6, 30, 9, 30, 0, 0, time.UTC),
	}
	if !ApplicationWindowOpen(p, time.Date(2026, 6, 30, 18, 0, 0, 0, time.UTC)) {
		t.Error("window should stay open for the rest of the deadline day")
	}
	if ApplicationWindowOpen(p, time.Date(2026, 7, 1, 0, 0, 1, 0, time.UTC)) {
		t.Error("window should be closed after the deadline day ends")
	}
}
