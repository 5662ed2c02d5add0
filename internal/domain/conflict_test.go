package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		s1, e1   string
		s2, e2   string
		expected bool
	}{
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"touching end to start", "10:00", "11:00", "11:00", "12:00", false},
		{"touching start to end", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(ts(tc.s1), ts(tc.e1), ts(tc.s2), ts(tc.e2))
			assert.Equal(t, tc.expected, got)

			// Симметричность
			got = Overlaps(ts(tc.s2), ts(tc.e2), ts(tc.s1), ts(tc.e1))
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFirstConflict_ReturnsEarliest(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, StartTime: ts("09:00"), EndTime: ts("10:00"), Status: StatusScheduled},
		{ID: 2, StartTime: ts("10:00"), EndTime: ts("11:00"), Status: StatusScheduled},
		{ID: 3, StartTime: ts("11:00"), EndTime: ts("12:00"), Status: StatusScheduled},
	}

	conflict := FirstConflict(ts("10:30"), ts("11:30"), bookings, 0)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(2), conflict.ID)
}

func TestFirstConflict_TouchingBoundariesAllowed(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, StartTime: ts("10:00"), EndTime: ts("11:00"), Status: StatusScheduled},
	}

	assert.Nil(t, FirstConflict(ts("11:00"), ts("12:00"), bookings, 0))
	assert.Nil(t, FirstConflict(ts("09:00"), ts("10:00"), bookings, 0))
}

func TestFirstConflict_IgnoresNonScheduled(t *testing.T) {
	bookings := []*Booking{
		{ID: 1, StartTime: ts("10:00"), EndTime: ts("11:00"), Status: StatusCancelled},
		{ID: 2, StartTime: ts("10:00"), EndTime: ts("11:00"), Status: StatusCompleted},
		{ID: 3, StartTime: ts("10:00"), EndTime: ts("11:00"), Status: StatusNoShow},
	}

	assert.Nil(t, FirstConflict(ts("10:00"), ts("11:00"), bookings, 0))
}

func TestFirstConflict_ExcludesBookingID(t *testing.T) {
	bookings := []*Booking{
		{ID: 7, StartTime: ts("10:00"), EndTime: ts("11:00"), Status: StatusScheduled},
	}

	assert.Nil(t, FirstConflict(ts("10:00"), ts("11:00"), bookings, 7))
	require.NotNil(t, FirstConflict(ts("10:00"), ts("11:00"), bookings, 8))
}
