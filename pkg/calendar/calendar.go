// Package calendar provides pure day/month/year arithmetic on the
// proleptic Gregorian calendar. All functions are stateless; dates are
// represented as time.Time values at midnight UTC.
package calendar

import (
	"fmt"
	"time"
)

// ISOFormat is the YYYY-MM-DD layout used across the service.
const ISOFormat = "2006-01-02"

// Date builds a midnight-UTC time for the given calendar day.
// The day is NOT clamped; callers that may exceed the month length
// should go through AddMonths/AddYears instead.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseISO parses a YYYY-MM-DD string into a midnight-UTC date.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}

// FormatISO formats a date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOFormat)
}

// IsLeapYear reports whether year is a Gregorian leap year:
// divisible by 4, not by 100 unless by 400.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// WeekdayOf returns the weekday of the given date.
func WeekdayOf(t time.Time) time.Weekday {
	return t.Weekday()
}

// AddDays shifts a date by n days (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddMonths shifts a date by n months, clamping the day to the length of
// the target month (Jan 31 + 1 month = Feb 28/29, never Mar 2/3).
func AddMonths(t time.Time, n int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + n
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	target := time.Month(month + 1)

	day := t.Day()
	if max := DaysInMonth(year, target); day > max {
		day = max
	}
	return Date(year, target, day)
}

// AddYears shifts a date by n years. Feb 29 clamps to Feb 28 in non-leap
// target years.
func AddYears(t time.Time, n int) time.Time {
	year := t.Year() + n
	day := t.Day()
	if max := DaysInMonth(year, t.Month()); day > max {
		day = max
	}
	return Date(year, t.Month(), day)
}

// NthWeekdayOfMonth resolves the n-th occurrence of weekday in the given
// month (n starting at 1). The second return value is false when the
// month has no n-th occurrence (for example a 5th Friday in a four-Friday
// month) or when n is out of the 1..5 range.
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) (time.Time, bool) {
	if n < 1 || n > 5 {
		return time.Time{}, false
	}

	first := Date(year, month, 1)
	offset := int(weekday - first.Weekday())
	if offset < 0 {
		offset += 7
	}

	day := 1 + offset + (n-1)*7
	if day > DaysInMonth(year, month) {
		return time.Time{}, false
	}
	return Date(year, month, day), true
}

// StartOfDay truncates a timestamp to midnight UTC, discarding both the
// clock time and the original location.
func StartOfDay(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
