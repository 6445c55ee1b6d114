package dateparse

import (
	"time"

	"taskdates/pkg/calendar"
)

// holiday is one entry in the fixed-date holiday table. Month/Day
// holidays resolve in the anchor's year; computed holidays carry their
// own resolver.
type holiday struct {
	label   string
	resolve func(anchor time.Time) time.Time
}

func fixedHoliday(label string, month time.Month, day int) holiday {
	return holiday{
		label: label,
		resolve: func(anchor time.Time) time.Time {
			return calendar.Date(anchor.Year(), month, day)
		},
	}
}

var holidayTable = func() map[string]holiday {
	christmas := fixedHoliday("Christmas", time.December, 25)
	halloween := fixedHoliday("Halloween", time.October, 31)
	valentines := fixedHoliday("Valentine's Day", time.February, 14)
	independence := fixedHoliday("Independence Day", time.July, 4)

	// New Year's always means the upcoming one: Jan 1 of the year after
	// the anchor.
	newYears := holiday{
		label: "New Year's Day",
		resolve: func(anchor time.Time) time.Time {
			return calendar.Date(anchor.Year()+1, time.January, 1)
		},
	}

	// Thanksgiving is the 4th Thursday of November in the anchor's year.
	thanksgiving := holiday{
		label: "Thanksgiving",
		resolve: func(anchor time.Time) time.Time {
			date, _ := calendar.NthWeekdayOfMonth(anchor.Year(), time.November, time.Thursday, 4)
			return date
		},
	}

	return map[string]holiday{
		"christmas":        christmas,
		"christmas day":    christmas,
		"xmas":             christmas,
		"halloween":        halloween,
		"valentine's day":  valentines,
		"valentines day":   valentines,
		"valentine's":      valentines,
		"valentines":       valentines,
		"independence day": independence,
		"july 4":           independence,
		"july 4th":         independence,
		"4th of july":      independence,
		"fourth of july":   independence,
		"new year":         newYears,
		"new year's":       newYears,
		"new years":        newYears,
		"new year's day":   newYears,
		"new years day":    newYears,
		"thanksgiving":     thanksgiving,
		"thanksgiving day": thanksgiving,
	}
}()

// holidayRecognizer matches well-known holiday names. Fixed-date entries
// resolve in the anchor's year even when already past; "July 4" also
// satisfies the absolute-date recognizer, and both candidates are kept.
type holidayRecognizer struct{}

func (holidayRecognizer) recognize(text string, anchor time.Time) []Candidate {
	h, ok := holidayTable[text]
	if !ok {
		return nil
	}
	return []Candidate{newCandidate(h.label, h.resolve(anchor))}
}
