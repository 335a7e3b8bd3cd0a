package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{"same day counts as one", date(2025, 3, 10), date(2025, 3, 10), 1},
		{"full january", date(2025, 1, 1), date(2025, 1, 31), 31},
		{"across february non-leap", date(2025, 2, 1), date(2025, 3, 1), 29},
		{"across february leap year", date(2024, 2, 1), date(2024, 3, 1), 30},
		{"full non-leap year", date(2025, 1, 1), date(2025, 12, 31), 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInclusive(tt.from, tt.to))
		})
	}
}

func TestDaysInclusiveIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)
	to := time.Date(2025, 1, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysInclusive(from, to))
}

func TestWholeDaysBetween(t *testing.T) {
	assert.Equal(t, 9, WholeDaysBetween(date(2025, 1, 1), date(2025, 1, 10)))
	assert.Equal(t, -9, WholeDaysBetween(date(2025, 1, 10), date(2025, 1, 1)))
	assert.Equal(t, 0, WholeDaysBetween(date(2025, 1, 1), date(2025, 1, 1)))
}

func TestClampToYearOf(t *testing.T) {
	anchor := date(2025, 6, 15)

	// A start in a prior year clamps to January 1 of the anchor's year.
	assert.Equal(t, date(2025, 1, 1), ClampToYearOf(date(2024, 12, 1), anchor))

	// A start within the anchor's year passes through.
	assert.Equal(t, date(2025, 3, 10), ClampToYearOf(date(2025, 3, 10), anchor))

	// January 1 itself is not clamped.
	assert.Equal(t, date(2025, 1, 1), ClampToYearOf(date(2025, 1, 1), anchor))
}

func TestYearBoundaries(t *testing.T) {
	d := date(2025, 7, 4)
	assert.Equal(t, date(2025, 1, 1), BeginningOfYear(d))
	assert.Equal(t, date(2025, 12, 31), EndOfYear(d))
	assert.True(t, SameYear(d, date(2025, 1, 1)))
	assert.False(t, SameYear(d, date(2024, 12, 31)))
}

func TestLeapYears(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2025))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2000))
	assert.Equal(t, 366, DaysInYear(2024))
	assert.Equal(t, 365, DaysInYear(2025))
}
