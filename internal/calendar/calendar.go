// Package calendar supplies the pure date arithmetic the scheduling core
// depends on: month lengths and weekday resolution. No other package does
// its own calendar math.
package calendar

import "time"

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOf returns the weekday of the given calendar date.
func WeekdayOf(year, month, day int) time.Weekday {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
}

// IsWeekday reports whether the given date falls on Monday through Friday.
func IsWeekday(year, month, day int) bool {
	wd := WeekdayOf(year, month, day)
	return wd != time.Saturday && wd != time.Sunday
}

// PreviousMonth returns the (year, month) pair preceding the given month.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
