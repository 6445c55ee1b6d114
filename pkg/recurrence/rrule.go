package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"taskdates/pkg/calendar"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
	time.Sunday:    rrule.SU,
}

// RRule renders the rule as an RFC 5545 recurrence rule anchored at
// dtstart, so calendar applications can expand the series natively when
// tasks are exported as an iCalendar feed. The mapping is best-effort:
// RRULE has no month-length clamp, so a clamped series (a "31st of the
// month" rule) skips short months when expanded externally.
func (r Rule) RRule(dtstart time.Time) (*rrule.RRule, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot export rule: %w", err)
	}

	opt := rrule.ROption{Dtstart: calendar.StartOfDay(dtstart)}

	switch {
	case r.DaysOfWeek != nil:
		opt.Freq = rrule.WEEKLY
		for _, d := range r.DaysOfWeek {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d.Time()])
		}

	case r.DayOfMonth != 0:
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = []int{r.DayOfMonth}

	case r.NthWeekday != nil:
		opt.Freq = rrule.MONTHLY
		wd := rruleWeekdays[r.NthWeekday.Weekday.Time()]
		opt.Byweekday = []rrule.Weekday{wd.Nth(r.NthWeekday.N)}

	case r.DayOfYear != "":
		month, day, _ := parseDayOfYear(r.DayOfYear)
		opt.Freq = rrule.YEARLY
		opt.Bymonth = []int{int(month)}
		opt.Bymonthday = []int{day}

	default:
		switch r.Type {
		case TypeDaily:
			opt.Freq = rrule.DAILY
		case TypeWeekly:
			opt.Freq = rrule.WEEKLY
		case TypeMonthly:
			opt.Freq = rrule.MONTHLY
		case TypeYearly:
			opt.Freq = rrule.YEARLY
		}
	}

	if r.EndDate != "" {
		end, err := calendar.ParseISO(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("cannot export rule: %w", err)
		}
		// EndDate is exclusive, UNTIL is inclusive.
		opt.Until = calendar.AddDays(end, -1)
	}

	return rrule.NewRRule(opt)
}
