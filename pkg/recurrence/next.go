package recurrence

import (
	"regexp"
	"strconv"
	"time"

	"taskdates/pkg/calendar"
)

var dayOfYearRe = regexp.MustCompile(`^(\d{2})-(\d{2})$`)

// NextOccurrence computes the next date of the rule strictly after the
// anchor. ok=false is the NONE sentinel: the series is exhausted (past
// EndDate) or the stored rule is malformed. Bad stored data never raises,
// because recurring-task generation must not abort the caller's workflow.
func NextOccurrence(rule Rule, anchor time.Time) (time.Time, bool) {
	if anchor.IsZero() {
		return time.Time{}, false
	}
	anchor = calendar.StartOfDay(anchor)

	next, ok := computeNext(rule, anchor)
	if !ok {
		return time.Time{}, false
	}

	if rule.EndDate != "" {
		end, err := calendar.ParseISO(rule.EndDate)
		if err != nil {
			return time.Time{}, false
		}
		// On or after the end date means the series is over.
		if !next.Before(end) {
			return time.Time{}, false
		}
	}
	return next, true
}

func computeNext(rule Rule, anchor time.Time) (time.Time, bool) {
	switch {
	case rule.DaysOfWeek != nil:
		if rule.Type != TypeWeekly {
			return time.Time{}, false
		}
		return nextInWeekdaySet(rule.DaysOfWeek, anchor)

	case rule.DayOfMonth != 0:
		if rule.Type != TypeMonthly {
			return time.Time{}, false
		}
		return nextDayOfMonth(rule.DayOfMonth, anchor)

	case rule.NthWeekday != nil:
		if rule.Type != TypeMonthly {
			return time.Time{}, false
		}
		return nextNthWeekday(rule.NthWeekday.N, rule.NthWeekday.Weekday.Time(), anchor)

	case rule.DayOfYear != "":
		if rule.Type != TypeYearly {
			return time.Time{}, false
		}
		return nextDayOfYear(rule.DayOfYear, anchor)
	}

	// Legacy scalar: a fixed step from the anchor.
	switch rule.Type {
	case TypeDaily:
		return calendar.AddDays(anchor, 1), true
	case TypeWeekly:
		return calendar.AddDays(anchor, 7), true
	case TypeMonthly:
		return calendar.AddMonths(anchor, 1), true
	case TypeYearly:
		return calendar.AddYears(anchor, 1), true
	}
	return time.Time{}, false
}

// nextInWeekdaySet finds the earliest date strictly after anchor whose
// weekday belongs to the set, wrapping into the next week when none
// remain in the current one. An empty (but declared) set is malformed.
func nextInWeekdaySet(days []Weekday, anchor time.Time) (time.Time, bool) {
	if len(days) == 0 {
		return time.Time{}, false
	}

	set := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		set[d.Time()] = struct{}{}
	}

	for offset := 1; offset <= 7; offset++ {
		c := calendar.AddDays(anchor, offset)
		if _, ok := set[c.Weekday()]; ok {
			return c, true
		}
	}
	return time.Time{}, false
}

// nextDayOfMonth resolves the day-of-month in the next applicable month,
// clamped to the last valid day when the month is shorter.
func nextDayOfMonth(dom int, anchor time.Time) (time.Time, bool) {
	if dom < 1 || dom > 31 {
		return time.Time{}, false
	}

	c := clampedMonthDay(anchor.Year(), anchor.Month(), dom)
	if c.After(anchor) {
		return c, true
	}
	next := calendar.AddMonths(calendar.Date(anchor.Year(), anchor.Month(), 1), 1)
	return clampedMonthDay(next.Year(), next.Month(), dom), true
}

// nextNthWeekday finds the n-th weekday of the current or a later month.
// Months lacking an n-th occurrence (a 5th Friday in a four-Friday month)
// are skipped and the same rule retried in the following month.
func nextNthWeekday(n int, wd time.Weekday, anchor time.Time) (time.Time, bool) {
	if n < 1 || n > 5 {
		return time.Time{}, false
	}

	month := calendar.Date(anchor.Year(), anchor.Month(), 1)
	for i := 0; i < 48; i++ {
		if c, ok := calendar.NthWeekdayOfMonth(month.Year(), month.Month(), wd, n); ok && c.After(anchor) {
			return c, true
		}
		month = calendar.AddMonths(month, 1)
	}
	return time.Time{}, false
}

// nextDayOfYear resolves an "MM-DD" anniversary in the next year whose
// date has not yet passed, with Feb 29 clamping to Feb 28 in non-leap
// years.
func nextDayOfYear(mmdd string, anchor time.Time) (time.Time, bool) {
	month, day, ok := parseDayOfYear(mmdd)
	if !ok {
		return time.Time{}, false
	}

	c := clampedMonthDay(anchor.Year(), month, day)
	if c.After(anchor) {
		return c, true
	}
	return clampedMonthDay(anchor.Year()+1, month, day), true
}

// parseDayOfYear validates an "MM-DD" string. The day may be 29 for
// February (clamped per target year) but never beyond the month's longest
// possible length.
func parseDayOfYear(mmdd string) (time.Month, int, bool) {
	m := dayOfYearRe.FindStringSubmatch(mmdd)
	if m == nil {
		return 0, 0, false
	}
	monthN, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if monthN < 1 || monthN > 12 {
		return 0, 0, false
	}
	month := time.Month(monthN)

	// Longest the month ever gets (leap-year February included).
	max := calendar.DaysInMonth(2024, month)
	if day < 1 || day > max {
		return 0, 0, false
	}
	return month, day, true
}

// clampedMonthDay builds year/month/day with the day clamped to the
// month's length.
func clampedMonthDay(year int, month time.Month, day int) time.Time {
	if max := calendar.DaysInMonth(year, month); day > max {
		day = max
	}
	return calendar.Date(year, month, day)
}
