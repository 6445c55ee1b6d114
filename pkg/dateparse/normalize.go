package dateparse

import (
	"math"
	"strconv"
	"strings"
)

// normalize prepares raw user text for matching: lowercase, trimmed,
// trailing punctuation stripped, internal whitespace collapsed.
// Labels are regenerated canonically later, so the original casing is
// irrelevant past this point.
func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimRight(s, ".,!?;:")
	return strings.Join(strings.Fields(s), " ")
}

// cardinalWords maps spelled-out counts to their numeric value.
var cardinalWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12,
	// Articles count as one: "a week from now".
	"a": 1, "an": 1,
}

// parseCount converts a count token (digits, a decimal, or a spelled-out
// cardinal) to a non-negative integer. Fractions are floored. Negative,
// oversized, and non-numeric tokens report ok=false; the int32 ceiling
// keeps the float conversion from overflowing int.
func parseCount(token string) (int, bool) {
	if n, ok := cardinalWords[token]; ok {
		return n, true
	}

	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(math.Floor(f)), true
}
