package insights

import (
	"math"
	"strconv"
	"strings"

	"marome-markets/internal/domain"
)

// NormalizedChange is a percent change after parsing. Known is false when
// the upstream value was null, absent, or not numeric; such entries are
// excluded from numeric work but still displayed as "--".
type NormalizedChange struct {
	Value float64
	Known bool
}

// Positive reports a strictly positive known change. Zero is neutral, not
// part of the positive bucket.
func (c NormalizedChange) Positive() bool {
	return c.Known && c.Value > 0
}

// Negative reports a strictly negative known change.
func (c NormalizedChange) Negative() bool {
	return c.Known && c.Value < 0
}

// ParseChange normalizes a raw upstream change value. It strips a trailing
// "%" when present and parses the remainder as a float. It never fails:
// anything unparsable comes back as an unknown change.
func ParseChange(raw domain.RawValue) NormalizedChange {
	text, ok := raw.Value()
	if !ok {
		return NormalizedChange{}
	}
	return ParseChangeText(text)
}

// ParseChangeText is ParseChange for callers that already hold the token.
func ParseChangeText(text string) NormalizedChange {
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "%")
	text = strings.TrimSpace(text)
	if text == "" {
		return NormalizedChange{}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return NormalizedChange{}
	}
	return NormalizedChange{Value: v, Known: true}
}
