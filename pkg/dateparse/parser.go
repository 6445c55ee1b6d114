package dateparse

import (
	"time"

	"taskdates/pkg/calendar"
)

// recognizer attempts one phrase-pattern family against normalized text
// and contributes zero or more candidates. Recognizers are independent;
// the same text may satisfy several of them.
type recognizer interface {
	recognize(text string, anchor time.Time) []Candidate
}

// Parser interprets free-form date phrases against a caller-supplied
// anchor date. It is stateless after construction and safe for
// concurrent use.
type Parser struct {
	recognizers []recognizer
}

// NewParser builds a parser with the full recognizer battery. The order
// is significant: absolute and table-driven readings come ahead of
// generic relative ones, so the more specific interpretation of an
// ambiguous phrase like "july 4" lists first.
func NewParser() *Parser {
	core := []recognizer{
		absoluteRecognizer{},
		holidayRecognizer{},
		weekdayRecognizer{},
		relativeRecognizer{},
		boundaryRecognizer{},
	}

	p := &Parser{}
	p.recognizers = append(core, timeOfDayRecognizer{battery: core})
	return p
}

// Interpret resolves text into a ranked list of candidate dates relative
// to anchor. Unrecognized or empty text yields an empty slice, never an
// error; a zero anchor is a caller bug and fails fast with ErrZeroAnchor.
func (p *Parser) Interpret(text string, anchor time.Time) ([]Candidate, error) {
	if anchor.IsZero() {
		return nil, ErrZeroAnchor
	}

	norm := normalize(text)
	out := []Candidate{}
	if norm == "" {
		return out, nil
	}

	day := calendar.StartOfDay(anchor)
	seen := make(map[Candidate]struct{})
	for _, r := range p.recognizers {
		for _, c := range r.recognize(norm, day) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out, nil
}

func newCandidate(label string, date time.Time) Candidate {
	return Candidate{Label: label, ISODate: calendar.FormatISO(date)}
}

// runBattery lets composite recognizers re-interpret a sub-phrase with a
// shared battery (used by the time-of-day modifier family).
func runBattery(battery []recognizer, text string, anchor time.Time) []Candidate {
	var out []Candidate
	seen := make(map[Candidate]struct{})
	for _, r := range battery {
		for _, c := range r.recognize(text, anchor) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
