package analysis

import (
	"math"
	"regexp"
	"strconv"
)

var (
	waSequence = regexp.MustCompile(`(?i)WA(\d+)`)
	digitRun   = regexp.MustCompile(`\d+`)
)

// Recency approximates upload order of a file. Invalid value means negative infinity.
type Recency struct {
	Value int64
	Valid bool
}

// RecencyKey extracts the number after "WA" (messenger exports), otherwise the last number in the name
func RecencyKey(fileName string) Recency {
	if m := waSequence.FindStringSubmatch(fileName); m != nil {
		return Recency{Value: parseNumber(m[1]), Valid: true}
	}
	runs := digitRun.FindAllString(fileName, -1)
	if len(runs) == 0 {
		return Recency{}
	}
	return Recency{Value: parseNumber(runs[len(runs)-1]), Valid: true}
}

func parseNumber(digits string) int64 {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// only ErrRange is possible here
		return math.MaxInt64
	}
	return v
}

// Compare returns -1, 0 or 1 when r is older, same or newer than other
func (r Recency) Compare(other Recency) int {
	switch {
	case !r.Valid && !other.Valid:
		return 0
	case !r.Valid:
		return -1
	case !other.Valid:
		return 1
	case r.Value < other.Value:
		return -1
	case r.Value > other.Value:
		return 1
	}
	return 0
}
