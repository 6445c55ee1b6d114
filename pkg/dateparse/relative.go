package dateparse

import (
	"fmt"
	"regexp"
	"time"

	"taskdates/pkg/calendar"
)

var (
	inOffsetRe = regexp.MustCompile(`^in ([a-z0-9.+-]+) (day|days|week|weeks|month|months|year|years)$`)
	fromNowRe  = regexp.MustCompile(`^([a-z0-9.+-]+) (day|days|week|weeks|month|months|year|years) from (?:now|today)$`)
	qualUnitRe = regexp.MustCompile(`^(next|this|last) (week|month|year)$`)
)

// relativeRecognizer matches offsets measured from the anchor: "in N
// days/weeks/months/years", "N <unit> from now", today/tomorrow/yesterday
// and their compounds, and "next/this/last <unit>". N may be a digit
// string or a spelled-out cardinal; zero resolves to the anchor itself,
// negative, oversized, or garbage counts contribute nothing.
type relativeRecognizer struct{}

func (relativeRecognizer) recognize(text string, anchor time.Time) []Candidate {
	switch text {
	case "today", "now":
		return []Candidate{newCandidate("Today", anchor)}
	case "tomorrow":
		return []Candidate{newCandidate("Tomorrow", calendar.AddDays(anchor, 1))}
	case "yesterday":
		return []Candidate{newCandidate("Yesterday", calendar.AddDays(anchor, -1))}
	case "day after tomorrow", "the day after tomorrow":
		return []Candidate{newCandidate("Day after tomorrow", calendar.AddDays(anchor, 2))}
	case "a week from today", "a week from now", "week from today":
		return []Candidate{newCandidate("In 1 week", calendar.AddDays(anchor, 7))}
	}

	if m := inOffsetRe.FindStringSubmatch(text); m != nil {
		return offsetCandidate(m[1], m[2], anchor)
	}
	if m := fromNowRe.FindStringSubmatch(text); m != nil {
		return offsetCandidate(m[1], m[2], anchor)
	}

	if m := qualUnitRe.FindStringSubmatch(text); m != nil {
		label := fmt.Sprintf("%s %s", titleWord(m[1]), m[2])
		switch m[1] {
		case "next":
			return []Candidate{newCandidate(label, applyOffset(anchor, 1, m[2]))}
		case "last":
			return []Candidate{newCandidate(label, applyOffset(anchor, -1, m[2]))}
		case "this":
			// The period containing the anchor; rendered as the anchor day.
			return []Candidate{newCandidate(label, anchor)}
		}
	}

	return nil
}

// offsetCandidate resolves a counted offset like "in 3 weeks". The label
// always uses the numeral form, singular only at exactly one.
func offsetCandidate(count, unit string, anchor time.Time) []Candidate {
	n, ok := parseCount(count)
	if !ok {
		return nil
	}
	date := applyOffset(anchor, n, unit)
	// Dates past year 9999 do not fit the ISO format.
	if date.Year() > 9999 {
		return nil
	}

	labelUnit := unit
	if n == 1 {
		labelUnit = singularUnit(unit)
	} else {
		labelUnit = pluralUnit(unit)
	}
	label := fmt.Sprintf("In %d %s", n, labelUnit)
	return []Candidate{newCandidate(label, date)}
}

func applyOffset(anchor time.Time, n int, unit string) time.Time {
	switch singularUnit(unit) {
	case "day":
		return calendar.AddDays(anchor, n)
	case "week":
		return calendar.AddDays(anchor, 7*n)
	case "month":
		return calendar.AddMonths(anchor, n)
	case "year":
		return calendar.AddYears(anchor, n)
	}
	return anchor
}

func singularUnit(unit string) string {
	if len(unit) > 1 && unit[len(unit)-1] == 's' {
		return unit[:len(unit)-1]
	}
	return unit
}

func pluralUnit(unit string) string {
	if unit[len(unit)-1] != 's' {
		return unit + "s"
	}
	return unit
}
