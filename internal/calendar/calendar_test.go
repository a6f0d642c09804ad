package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	testCases := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"January", 2025, 1, 31},
		{"April", 2025, 4, 30},
		{"February non-leap", 2025, 2, 28},
		{"February leap", 2024, 2, 29},
		{"February century non-leap", 1900, 2, 28},
		{"February 400-year leap", 2000, 2, 29},
		{"December", 2025, 12, 31},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysInMonth(tc.year, tc.month))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-08-01 was a Friday
	assert.Equal(t, time.Friday, WeekdayOf(2025, 8, 1))
	assert.Equal(t, time.Saturday, WeekdayOf(2025, 8, 2))
	assert.Equal(t, time.Monday, WeekdayOf(2025, 8, 4))
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday(2025, 8, 1))   // Friday
	assert.False(t, IsWeekday(2025, 8, 2))  // Saturday
	assert.False(t, IsWeekday(2025, 8, 3))  // Sunday
	assert.True(t, IsWeekday(2025, 8, 4))   // Monday
}

func TestPreviousMonth(t *testing.T) {
	y, m := PreviousMonth(2025, 9)
	assert.Equal(t, 2025, y)
	assert.Equal(t, 8, m)

	y, m = PreviousMonth(2025, 1)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 12, m)
}
