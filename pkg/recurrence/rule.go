// Package recurrence computes the next occurrence of a repeating task
// schedule. Rules are tagged variants: either a legacy scalar frequency
// (daily/weekly/monthly/yearly with a fixed step) or a structured form
// keyed by weekday set, day of month, nth weekday, or day of year.
package recurrence

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type is the rule frequency discriminant.
type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
	TypeYearly  Type = "yearly"
)

// Weekday is a time.Weekday that travels as its lowercase name in JSON,
// matching how task records persist recurrence rules.
type Weekday time.Weekday

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Time converts back to the stdlib weekday.
func (w Weekday) Time() time.Weekday {
	return time.Weekday(w)
}

// MarshalJSON implements json.Marshaler.
func (w Weekday) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToLower(time.Weekday(w).String()))
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Weekday) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	wd, ok := weekdayByName[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown weekday %q", name)
	}
	*w = Weekday(wd)
	return nil
}

// NthWeekday keys a monthly rule by ordinal + weekday ("3rd Thursday").
type NthWeekday struct {
	N       int     `json:"n"`
	Weekday Weekday `json:"weekday"`
}

// Rule is a recurrence rule. Exactly one variant is active: a legacy
// scalar (Type alone) or one structured field matching the Type. An
// optional EndDate (ISO) cuts the series off: no occurrence may land on
// or after it.
type Rule struct {
	Type       Type        `json:"type"`
	DaysOfWeek []Weekday   `json:"days_of_week,omitempty"`
	DayOfMonth int         `json:"day_of_month,omitempty"`
	NthWeekday *NthWeekday `json:"nth_weekday,omitempty"`
	DayOfYear  string      `json:"day_of_year,omitempty"` // "MM-DD"
	EndDate    string      `json:"end_date,omitempty"`    // ISO YYYY-MM-DD
}

// IsZero reports whether the rule is entirely unset.
func (r Rule) IsZero() bool {
	return r.Type == "" && r.DaysOfWeek == nil && r.DayOfMonth == 0 &&
		r.NthWeekday == nil && r.DayOfYear == "" && r.EndDate == ""
}

// Validate checks the structural invariants of the rule. It is meant for
// fresh caller input at the API boundary; NextOccurrence itself never
// raises on bad stored data and resolves malformed rules to NONE instead.
func (r Rule) Validate() error {
	switch r.Type {
	case TypeDaily, TypeWeekly, TypeMonthly, TypeYearly:
	default:
		return fmt.Errorf("unknown recurrence type %q", r.Type)
	}

	structured := 0
	if r.DaysOfWeek != nil {
		structured++
		if r.Type != TypeWeekly {
			return errors.New("days_of_week requires type weekly")
		}
		if len(r.DaysOfWeek) == 0 {
			return errors.New("days_of_week must not be empty")
		}
	}
	if r.DayOfMonth != 0 {
		structured++
		if r.Type != TypeMonthly {
			return errors.New("day_of_month requires type monthly")
		}
		if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
			return fmt.Errorf("day_of_month %d out of range", r.DayOfMonth)
		}
	}
	if r.NthWeekday != nil {
		structured++
		if r.Type != TypeMonthly {
			return errors.New("nth_weekday requires type monthly")
		}
		if r.NthWeekday.N < 1 || r.NthWeekday.N > 5 {
			return fmt.Errorf("nth_weekday n %d out of range", r.NthWeekday.N)
		}
	}
	if r.DayOfYear != "" {
		structured++
		if r.Type != TypeYearly {
			return errors.New("day_of_year requires type yearly")
		}
		if _, _, ok := parseDayOfYear(r.DayOfYear); !ok {
			return fmt.Errorf("invalid day_of_year %q", r.DayOfYear)
		}
	}
	if structured > 1 {
		return errors.New("multiple structured variants set")
	}

	if r.EndDate != "" {
		if _, err := time.Parse("2006-01-02", r.EndDate); err != nil {
			return fmt.Errorf("invalid end_date %q", r.EndDate)
		}
	}
	return nil
}
