package dateparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"taskdates/pkg/calendar"
)

var middleOfMonthRe = regexp.MustCompile(`^(?:middle of|mid) ([a-z]+)$`)

// boundaryRecognizer matches fuzzy period boundaries: "end of
// month/week/year", "beginning of next month" and "middle of <Month>".
// Weeks run Monday through Sunday, so "end of week" is the Sunday of the
// anchor's week.
type boundaryRecognizer struct{}

func (boundaryRecognizer) recognize(text string, anchor time.Time) []Candidate {
	switch text {
	case "end of month", "end of the month", "end of this month":
		date := calendar.Date(anchor.Year(), anchor.Month(), calendar.DaysInMonth(anchor.Year(), anchor.Month()))
		return []Candidate{newCandidate("End of month", date)}
	case "end of week", "end of the week", "end of this week":
		days := int(time.Sunday - anchor.Weekday() + 7)
		if days >= 7 {
			days -= 7
		}
		return []Candidate{newCandidate("End of week", calendar.AddDays(anchor, days))}
	case "end of year", "end of the year", "end of this year":
		return []Candidate{newCandidate("End of year", calendar.Date(anchor.Year(), time.December, 31))}
	case "beginning of next month", "start of next month":
		next := calendar.AddMonths(calendar.Date(anchor.Year(), anchor.Month(), 1), 1)
		return []Candidate{newCandidate("Beginning of next month", next)}
	}

	if m := middleOfMonthRe.FindStringSubmatch(text); m != nil {
		if month, ok := monthNames[m[1]]; ok {
			date := calendar.Date(anchor.Year(), month, 15)
			// A month already behind the anchor implies next year.
			if date.Before(anchor) {
				date = calendar.Date(anchor.Year()+1, month, 15)
			}
			label := fmt.Sprintf("Middle of %s", titleWord(m[1]))
			return []Candidate{newCandidate(label, date)}
		}
	}

	return nil
}

// timeOfDayWords are the period modifiers that can trail a date phrase.
var timeOfDayWords = []string{"morning", "afternoon", "evening", "night"}

// timeOfDayRecognizer handles "morning", "this evening", "tomorrow
// morning" and similar phrases. The modifier attaches as a label suffix
// to the preceding date phrase, or stands alone against the implicit
// "today" context. It re-runs the core battery on the remaining prefix,
// so every date family composes with a period word for free.
type timeOfDayRecognizer struct {
	battery []recognizer
}

func (r timeOfDayRecognizer) recognize(text string, anchor time.Time) []Candidate {
	if text == "tonight" {
		return []Candidate{newCandidate("Tonight", anchor)}
	}

	var word, prefix string
	for _, w := range timeOfDayWords {
		if text == w {
			return []Candidate{newCandidate(titleWord(w), anchor)}
		}
		if strings.HasSuffix(text, " "+w) {
			word = w
			prefix = strings.TrimSpace(strings.TrimSuffix(text, w))
			break
		}
	}
	if word == "" {
		return nil
	}

	// "this morning" carries no date phrase of its own.
	if prefix == "this" {
		return []Candidate{newCandidate(fmt.Sprintf("This %s", word), anchor)}
	}

	var out []Candidate
	for _, c := range runBattery(r.battery, prefix, anchor) {
		out = append(out, Candidate{
			Label:   fmt.Sprintf("%s %s", c.Label, word),
			ISODate: c.ISODate,
		})
	}
	return out
}
