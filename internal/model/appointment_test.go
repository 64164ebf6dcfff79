package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2025, time.June, 16, hour, 0, 0, 0, time.Local)
	}

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint before", 9, 10, 11, 12, false},
		{"disjoint after", 11, 12, 9, 10, false},
		{"touching boundary", 9, 10, 10, 11, false},
		{"touching boundary reversed", 10, 11, 9, 10, false},
		{"partial overlap at start", 9, 11, 10, 12, true},
		{"partial overlap at end", 10, 12, 9, 11, true},
		{"a contains b", 9, 13, 10, 11, true},
		{"b contains a", 10, 11, 9, 13, true},
		{"identical", 9, 10, 9, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(at(tt.bStart), at(tt.bEnd), at(tt.aStart), at(tt.aEnd)))
		})
	}
}

func TestAppointmentDuration(t *testing.T) {
	appointment := &Appointment{
		StartTime: time.Date(2025, time.June, 16, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2025, time.June, 16, 10, 30, 0, 0, time.Local),
	}
	assert.Equal(t, 90*time.Minute, appointment.Duration())
}
