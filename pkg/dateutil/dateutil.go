package dateutil

import (
	"time"
)

// DateOnly truncates a time to midnight UTC so that time-of-day and zone
// differences never affect day arithmetic.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysBetween returns the number of whole calendar days from one date to
// another. Negative when to precedes from.
func WholeDaysBetween(from, to time.Time) int {
	f := DateOnly(from)
	t := DateOnly(to)
	return int(t.Sub(f).Hours() / 24)
}

// DaysInclusive returns the day count between two dates counting both
// endpoints, so DaysInclusive(d, d) == 1.
func DaysInclusive(from, to time.Time) int {
	return WholeDaysBetween(from, to) + 1
}

// BeginningOfYear returns January 1 of the given date's year
func BeginningOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfYear returns December 31 of the given date's year
func EndOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
}

// ClampToYearOf returns date, or January 1 of anchor's year when date falls in
// an earlier year. Dates already within anchor's year pass through unchanged.
func ClampToYearOf(date, anchor time.Time) time.Time {
	jan1 := BeginningOfYear(anchor)
	if DateOnly(date).Before(jan1) {
		return jan1
	}
	return DateOnly(date)
}

// SameYear checks if two dates fall in the same calendar year
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
