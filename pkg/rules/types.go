package rules

import "fmt"

// Position selects which occurrence(s) of the target text a rule removes.
type Position int

const (
	// PositionAll removes every non-overlapping occurrence.
	PositionAll Position = iota
	// PositionFirst removes only the left-most occurrence.
	PositionFirst
	// PositionLast removes only the right-most occurrence.
	PositionLast
)

// String returns the canonical lower-case name used in configuration files.
func (p Position) String() string {
	switch p {
	case PositionAll:
		return "all"
	case PositionFirst:
		return "first"
	case PositionLast:
		return "last"
	default:
		return "unknown"
	}
}

// ParsePosition parses a position name as it appears in configuration.
// Matching is case-insensitive on the ASCII names "all", "first" and "last".
func ParsePosition(s string) (Position, error) {
	switch s {
	case "all", "All", "ALL", "":
		return PositionAll, nil
	case "first", "First", "FIRST":
		return PositionFirst, nil
	case "last", "Last", "LAST":
		return PositionLast, nil
	default:
		return PositionAll, fmt.Errorf("unknown position %q (want all, first or last)", s)
	}
}

// MarshalText implements encoding.TextMarshaler so Position round-trips
// through TOML, YAML and JSON as its string form.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RemoveRule describes one removal operation. Rules are immutable values;
// nothing in this package mutates a rule after creation.
type RemoveRule struct {
	// Text is the substring to search for. An empty Text makes the rule a
	// no-op: the input passes through unchanged.
	Text string `json:"text" toml:"text" yaml:"text"`

	// Position selects which occurrence(s) to remove.
	Position Position `json:"position" toml:"position" yaml:"position"`

	// CaseSensitive controls matching. When false, occurrences are located
	// ignoring letter case but only the literal matched span is deleted;
	// untouched characters keep their original bytes.
	CaseSensitive bool `json:"case_sensitive" toml:"case_sensitive" yaml:"case_sensitive"`

	// IgnoreExtension protects the trailing extension component from
	// modification.
	IgnoreExtension bool `json:"ignore_extension" toml:"ignore_extension" yaml:"ignore_extension"`
}

// RuleSet is an ordered sequence of rules applied in order: rule N sees the
// output of rule N-1.
type RuleSet []RemoveRule
