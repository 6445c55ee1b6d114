package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"taskdates/pkg/calendar"
)

// monthNames maps full names and common abbreviations to months.
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRe = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?$`)
	monthDayRe  = regexp.MustCompile(`^([a-z]+) (\d{1,2})(?:st|nd|rd|th)?(?:,? (\d{4}))?$`)
	dayMonthRe  = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)? ([a-z]+)(?:,? (\d{4}))?$`)
	monthYearRe = regexp.MustCompile(`^([a-z]+) (\d{4})$`)
	bareYearRe  = regexp.MustCompile(`^(\d{4})$`)
)

// absoluteRecognizer matches explicit calendar dates: M/D[/Y],
// "Month D[, Y]", "D Month [Y]", ISO Y-M-D, "Month Y" (day defaults to 1)
// and a bare 4-digit year (defaults to Jan 1). An omitted year defaults
// to the anchor's year.
type absoluteRecognizer struct{}

func (absoluteRecognizer) recognize(text string, anchor time.Time) []Candidate {
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return absoluteCandidate(year, time.Month(month), day, true, anchor)
	}

	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, explicit := anchor.Year(), false
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
			explicit = true
		}
		return absoluteCandidate(year, time.Month(month), day, explicit, anchor)
	}

	if m := monthDayRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[1]]; ok {
			day, _ := strconv.Atoi(m[2])
			year, explicit := anchor.Year(), false
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				explicit = true
			}
			return absoluteCandidate(year, month, day, explicit, anchor)
		}
	}

	if m := dayMonthRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[2]]; ok {
			day, _ := strconv.Atoi(m[1])
			year, explicit := anchor.Year(), false
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				explicit = true
			}
			return absoluteCandidate(year, month, day, explicit, anchor)
		}
	}

	if m := monthYearRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[1]]; ok {
			year, _ := strconv.Atoi(m[2])
			if validDate(year, month, 1) {
				date := calendar.Date(year, month, 1)
				label := fmt.Sprintf("%s %d", monthAbbrev(month), year)
				return []Candidate{newCandidate(label, date)}
			}
		}
	}

	if m := bareYearRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		date := calendar.Date(year, time.January, 1)
		return []Candidate{newCandidate(strconv.Itoa(year), date)}
	}

	return nil
}

// absoluteCandidate validates the calendar date and renders the canonical
// label: "Mar 20" within the anchor's year, "Mar 20, 2026" when the year
// was explicit or differs from the anchor's.
func absoluteCandidate(year int, month time.Month, day int, explicitYear bool, anchor time.Time) []Candidate {
	if !validDate(year, month, day) {
		return nil
	}

	date := calendar.Date(year, month, day)
	label := fmt.Sprintf("%s %d", monthAbbrev(month), day)
	if explicitYear || year != anchor.Year() {
		label = fmt.Sprintf("%s, %d", label, year)
	}
	return []Candidate{newCandidate(label, date)}
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= calendar.DaysInMonth(year, month)
}

func monthAbbrev(month time.Month) string {
	return month.String()[:3]
}

// titleWord capitalizes the first letter of an already-lowercased word.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
