package model

import (
	"fmt"
	"strings"
)

// Policy selects how priority items are placed among base items
type Policy int

const (
	// PolicyPriorityFirst puts priority items before base items in the given order
	PolicyPriorityFirst Policy = iota

	// PolicyInterleaved scatters priority items at random positions of the recency-sorted base list
	PolicyInterleaved
)

func (p Policy) String() string {
	switch p {
	case PolicyInterleaved:
		return "interleaved"
	default:
		return "priority-first"
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePolicy parses policy name, e.g. "interleaved" or "PRIORITY_FIRST"
func ParsePolicy(s string) (Policy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch normalized {
	case "priority-first":
		return PolicyPriorityFirst, nil
	case "interleaved":
		return PolicyInterleaved, nil
	}
	return PolicyPriorityFirst, fmt.Errorf("unknown ordering policy: '%s'", s)
}
