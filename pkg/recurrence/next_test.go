package recurrence_test

import (
	"testing"
	"time"

	"taskdates/pkg/calendar"
	"taskdates/pkg/recurrence"
)

func date(s string) time.Time {
	t, err := calendar.ParseISO(s)
	if err != nil {
		panic(err)
	}
	return t
}

func weekdays(days ...time.Weekday) []recurrence.Weekday {
	out := make([]recurrence.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, recurrence.Weekday(d))
	}
	return out
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name   string
		rule   recurrence.Rule
		anchor string
		want   string
		none   bool
	}{
		// Legacy scalar steps
		{"legacy daily", recurrence.Rule{Type: recurrence.TypeDaily}, "2025-01-08", "2025-01-09", false},
		{"legacy weekly", recurrence.Rule{Type: recurrence.TypeWeekly}, "2025-01-08", "2025-01-15", false},
		{"legacy monthly", recurrence.Rule{Type: recurrence.TypeMonthly}, "2025-01-15", "2025-02-15", false},
		{"legacy monthly clamps", recurrence.Rule{Type: recurrence.TypeMonthly}, "2025-01-31", "2025-02-28", false},
		{"legacy yearly", recurrence.Rule{Type: recurrence.TypeYearly}, "2025-03-10", "2026-03-10", false},
		{"legacy yearly leap clamp", recurrence.Rule{Type: recurrence.TypeYearly}, "2024-02-29", "2025-02-28", false},

		// Structured weekly
		{
			"weekly set later this week",
			recurrence.Rule{Type: recurrence.TypeWeekly, DaysOfWeek: weekdays(time.Monday, time.Friday)},
			"2025-01-08", // Wednesday
			"2025-01-10", // Friday
			false,
		},
		{
			"weekly set wraps into next week",
			recurrence.Rule{Type: recurrence.TypeWeekly, DaysOfWeek: weekdays(time.Monday)},
			"2025-01-10", // Friday
			"2025-01-13", // Monday
			false,
		},
		{
			"weekly set same weekday is next week",
			recurrence.Rule{Type: recurrence.TypeWeekly, DaysOfWeek: weekdays(time.Wednesday)},
			"2025-01-08",
			"2025-01-15",
			false,
		},

		// Structured monthly by day-of-month
		{
			"day of month later this month",
			recurrence.Rule{Type: recurrence.TypeMonthly, DayOfMonth: 20},
			"2025-01-08",
			"2025-01-20",
			false,
		},
		{
			"day of month already passed",
			recurrence.Rule{Type: recurrence.TypeMonthly, DayOfMonth: 5},
			"2025-01-08",
			"2025-02-05",
			false,
		},
		{
			"day of month clamps short month",
			recurrence.Rule{Type: recurrence.TypeMonthly, DayOfMonth: 31},
			"2025-01-31",
			"2025-02-28",
			false,
		},

		// Structured monthly by nth weekday
		{
			"nth weekday in current month",
			recurrence.Rule{Type: recurrence.TypeMonthly, NthWeekday: &recurrence.NthWeekday{N: 3, Weekday: recurrence.Weekday(time.Thursday)}},
			"2025-01-01",
			"2025-01-16",
			false,
		},
		{
			"nth weekday already passed",
			recurrence.Rule{Type: recurrence.TypeMonthly, NthWeekday: &recurrence.NthWeekday{N: 1, Weekday: recurrence.Weekday(time.Monday)}},
			"2025-01-20",
			"2025-02-03",
			false,
		},
		{
			"fifth friday rolls into a month that has one",
			recurrence.Rule{Type: recurrence.TypeMonthly, NthWeekday: &recurrence.NthWeekday{N: 5, Weekday: recurrence.Weekday(time.Friday)}},
			"2025-02-01", // Feb, Mar and Apr 2025 have four Fridays; May has five
			"2025-05-30",
			false,
		},

		// Structured yearly
		{
			"day of year still upcoming",
			recurrence.Rule{Type: recurrence.TypeYearly, DayOfYear: "07-04"},
			"2025-01-08",
			"2025-07-04",
			false,
		},
		{
			"day of year already passed",
			recurrence.Rule{Type: recurrence.TypeYearly, DayOfYear: "01-01"},
			"2025-01-08",
			"2026-01-01",
			false,
		},
		{
			"feb 29 clamps in non-leap year",
			recurrence.Rule{Type: recurrence.TypeYearly, DayOfYear: "02-29"},
			"2024-03-01",
			"2025-02-28",
			false,
		},

		// End date cutoff
		{
			"end date blocks occurrence on the date",
			recurrence.Rule{Type: recurrence.TypeDaily, EndDate: "2025-01-09"},
			"2025-01-08", "", true,
		},
		{
			"end date blocks occurrence after the date",
			recurrence.Rule{Type: recurrence.TypeWeekly, EndDate: "2025-01-10"},
			"2025-01-08", "", true,
		},
		{
			"end date still ahead",
			recurrence.Rule{Type: recurrence.TypeDaily, EndDate: "2025-01-10"},
			"2025-01-08", "2025-01-09", false,
		},

		// Malformed rules resolve to NONE, never an error
		{"unknown type", recurrence.Rule{Type: "fortnightly"}, "2025-01-08", "", true},
		{"empty rule", recurrence.Rule{}, "2025-01-08", "", true},
		{
			"declared weekly set but empty",
			recurrence.Rule{Type: recurrence.TypeWeekly, DaysOfWeek: []recurrence.Weekday{}},
			"2025-01-08", "", true,
		},
		{
			"structured field under wrong type",
			recurrence.Rule{Type: recurrence.TypeDaily, DayOfMonth: 15},
			"2025-01-08", "", true,
		},
		{
			"nth out of range",
			recurrence.Rule{Type: recurrence.TypeMonthly, NthWeekday: &recurrence.NthWeekday{N: 6, Weekday: recurrence.Weekday(time.Friday)}},
			"2025-01-08", "", true,
		},
		{
			"bad day of year",
			recurrence.Rule{Type: recurrence.TypeYearly, DayOfYear: "13-40"},
			"2025-01-08", "", true,
		},
		{
			"bad end date",
			recurrence.Rule{Type: recurrence.TypeDaily, EndDate: "not-a-date"},
			"2025-01-08", "", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := recurrence.NextOccurrence(tt.rule, date(tt.anchor))
			if tt.none {
				if ok {
					t.Fatalf("NextOccurrence = %s, want NONE", calendar.FormatISO(got))
				}
				return
			}
			if !ok {
				t.Fatalf("NextOccurrence = NONE, want %s", tt.want)
			}
			if calendar.FormatISO(got) != tt.want {
				t.Errorf("NextOccurrence = %s, want %s", calendar.FormatISO(got), tt.want)
			}
		})
	}
}

// Feeding the calculator its own output back as the anchor must produce a
// strictly increasing sequence that keeps satisfying the rule.
func TestNextOccurrenceRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		rule  recurrence.Rule
		check func(t *testing.T, d time.Time)
	}{
		{
			"weekly set",
			recurrence.Rule{Type: recurrence.TypeWeekly, DaysOfWeek: weekdays(time.Tuesday, time.Saturday)},
			func(t *testing.T, d time.Time) {
				if wd := d.Weekday(); wd != time.Tuesday && wd != time.Saturday {
					t.Errorf("occurrence %s on %v, want Tuesday or Saturday", calendar.FormatISO(d), wd)
				}
			},
		},
		{
			"monthly day of month",
			recurrence.Rule{Type: recurrence.TypeMonthly, DayOfMonth: 15},
			func(t *testing.T, d time.Time) {
				if d.Day() != 15 {
					t.Errorf("occurrence %s not on the 15th", calendar.FormatISO(d))
				}
			},
		},
		{
			"monthly nth weekday",
			recurrence.Rule{Type: recurrence.TypeMonthly, NthWeekday: &recurrence.NthWeekday{N: 2, Weekday: recurrence.Weekday(time.Tuesday)}},
			func(t *testing.T, d time.Time) {
				want, ok := calendar.NthWeekdayOfMonth(d.Year(), d.Month(), time.Tuesday, 2)
				if !ok || !want.Equal(d) {
					t.Errorf("occurrence %s is not the 2nd Tuesday of its month", calendar.FormatISO(d))
				}
			},
		},
		{
			"yearly day of year",
			recurrence.Rule{Type: recurrence.TypeYearly, DayOfYear: "06-10"},
			func(t *testing.T, d time.Time) {
				if d.Month() != time.June || d.Day() != 10 {
					t.Errorf("occurrence %s, want June 10", calendar.FormatISO(d))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := date("2025-01-08")
			for i := 0; i < 60; i++ {
				next, ok := recurrence.NextOccurrence(tt.rule, cur)
				if !ok {
					t.Fatalf("iteration %d: NONE from end-date-free rule", i)
				}
				if !next.After(cur) {
					t.Fatalf("iteration %d: %s not strictly after %s", i, calendar.FormatISO(next), calendar.FormatISO(cur))
				}
				tt.check(t, next)
				cur = next
			}
		})
	}
}
