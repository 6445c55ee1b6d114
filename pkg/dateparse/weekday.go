package dateparse

import (
	"fmt"
	"regexp"
	"time"

	"taskdates/pkg/calendar"
)

// weekdayNames maps names and common abbreviations to weekdays.
var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var (
	qualifiedWeekdayRe = regexp.MustCompile(`^(?:(next|this|last) )?([a-z]+)$`)
	weekdayNextWeekRe  = regexp.MustCompile(`^([a-z]+) next week$`)
)

// weekdayRecognizer matches day-of-week references. A bare weekday name
// resolves to the nearest strictly-future occurrence ("Next Monday"),
// never the anchor day itself; "this"/"last" qualifiers change both the
// label and the resolved date; "<weekday> next week" forces one week
// beyond the implicit next occurrence.
type weekdayRecognizer struct{}

func (weekdayRecognizer) recognize(text string, anchor time.Time) []Candidate {
	if m := weekdayNextWeekRe.FindStringSubmatch(text); m != nil {
		if wd, ok := weekdayNames[m[1]]; ok {
			date := calendar.AddDays(nextWeekday(anchor, wd), 7)
			label := fmt.Sprintf("%s next week", wd.String())
			return []Candidate{newCandidate(label, date)}
		}
	}

	m := qualifiedWeekdayRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	wd, ok := weekdayNames[m[2]]
	if !ok {
		return nil
	}

	switch m[1] {
	case "", "next":
		return []Candidate{newCandidate(fmt.Sprintf("Next %s", wd), nextWeekday(anchor, wd))}
	case "this":
		// Today counts when the anchor already sits on the weekday.
		days := int(wd-anchor.Weekday()+7) % 7
		return []Candidate{newCandidate(fmt.Sprintf("This %s", wd), calendar.AddDays(anchor, days))}
	case "last":
		days := int(anchor.Weekday()-wd+7) % 7
		if days == 0 {
			days = 7
		}
		return []Candidate{newCandidate(fmt.Sprintf("Last %s", wd), calendar.AddDays(anchor, -days))}
	}
	return nil
}

// nextWeekday returns the strictly-future occurrence of wd after anchor.
func nextWeekday(anchor time.Time, wd time.Weekday) time.Time {
	days := int(wd-anchor.Weekday()+7) % 7
	if days == 0 {
		days = 7
	}
	return calendar.AddDays(anchor, days)
}
