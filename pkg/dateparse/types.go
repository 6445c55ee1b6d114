package dateparse

import "errors"

// Candidate is one possible reading of a date phrase. ISODate is always a
// valid YYYY-MM-DD calendar date; Label is the canonical human-readable
// rendering of the matched phrase.
type Candidate struct {
	Label   string `json:"label"`
	ISODate string `json:"iso_date"`
}

// ErrZeroAnchor is returned when Interpret is called with a zero anchor
// date. This is a caller bug, not user data.
var ErrZeroAnchor = errors.New("anchor date is required")
