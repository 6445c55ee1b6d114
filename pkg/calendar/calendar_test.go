package calendar_test

import (
	"testing"
	"time"

	"taskdates/pkg/calendar"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},  // divisible by 4
		{2025, false}, // not divisible by 4
		{1900, false}, // century, not by 400
		{2000, true},  // divisible by 400
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := calendar.IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.December, 31},
	}

	for _, tt := range tests {
		if got := calendar.DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestAddMonthsClamping(t *testing.T) {
	tests := []struct {
		name  string
		start string
		n     int
		want  string
	}{
		{"Jan 31 plus one month clamps to Feb 28", "2025-01-31", 1, "2025-02-28"},
		{"Jan 31 plus one month in leap year clamps to Feb 29", "2024-01-31", 1, "2024-02-29"},
		{"Mar 31 plus one month clamps to Apr 30", "2025-03-31", 1, "2025-04-30"},
		{"Mid-month unaffected", "2025-01-15", 1, "2025-02-15"},
		{"Year rollover", "2025-12-15", 1, "2026-01-15"},
		{"Negative step", "2025-03-31", -1, "2025-02-28"},
		{"Negative step across year", "2025-01-15", -2, "2024-11-15"},
		{"Large step", "2025-01-31", 13, "2026-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := calendar.ParseISO(tt.start)
			if err != nil {
				t.Fatalf("ParseISO(%q): %v", tt.start, err)
			}
			got := calendar.FormatISO(calendar.AddMonths(start, tt.n))
			if got != tt.want {
				t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddYearsLeapClamp(t *testing.T) {
	feb29 := calendar.Date(2024, time.February, 29)

	got := calendar.FormatISO(calendar.AddYears(feb29, 1))
	if got != "2025-02-28" {
		t.Errorf("AddYears(2024-02-29, 1) = %s, want 2025-02-28", got)
	}

	got = calendar.FormatISO(calendar.AddYears(feb29, 4))
	if got != "2028-02-29" {
		t.Errorf("AddYears(2024-02-29, 4) = %s, want 2028-02-29", got)
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		weekday time.Weekday
		n       int
		want    string
		ok      bool
	}{
		{"4th Thursday Nov 2025 (Thanksgiving)", 2025, time.November, time.Thursday, 4, "2025-11-27", true},
		{"3rd Thursday Jan 2025", 2025, time.January, time.Thursday, 3, "2025-01-16", true},
		{"1st Monday Sep 2025", 2025, time.September, time.Monday, 1, "2025-09-01", true},
		{"5th Friday Jan 2025 exists", 2025, time.January, time.Friday, 5, "2025-01-31", true},
		{"5th Friday Feb 2025 does not exist", 2025, time.February, time.Friday, 5, "", false},
		{"n out of range low", 2025, time.January, time.Friday, 0, "", false},
		{"n out of range high", 2025, time.January, time.Friday, 6, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calendar.NthWeekdayOfMonth(tt.year, tt.month, tt.weekday, tt.n)
			if ok != tt.ok {
				t.Fatalf("NthWeekdayOfMonth ok = %v, want %v", ok, tt.ok)
			}
			if ok && calendar.FormatISO(got) != tt.want {
				t.Errorf("NthWeekdayOfMonth = %s, want %s", calendar.FormatISO(got), tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	stamp := time.Date(2025, time.June, 10, 23, 45, 0, 0, loc)

	got := calendar.StartOfDay(stamp)
	want := calendar.Date(2025, time.June, 10)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}
