package rules

import (
	"regexp"
	"strings"
)

// Remove applies a single rule to input and returns the transformed name.
//
// The function is total: every input maps to a defined output and no error
// is ever returned. An empty rule text, an unmatched target, or a failure
// to build the case-insensitive matcher all degrade to the identity.
func Remove(input string, rule RemoveRule) string {
	if rule.Text == "" {
		return input
	}

	stem := input
	suffix := ""
	if rule.IgnoreExtension {
		stem, suffix = SplitExtension(input)
	}

	// Nothing left to match against; the protected suffix (possibly empty)
	// is the whole result.
	if stem == "" {
		return suffix
	}

	return removeFromStem(stem, rule) + suffix
}

// RemoveAll folds an ordered rule set over input, feeding each rule's output
// to the next. An empty rule set returns input unchanged. There is no
// rollback across the sequence: later rules operate on whatever the earlier
// ones produced.
func RemoveAll(input string, set RuleSet) string {
	out := input
	for _, rule := range set {
		out = Remove(out, rule)
	}
	return out
}

// removeFromStem removes the selected occurrence(s) of rule.Text from stem.
// rule.Text is non-empty when this runs.
func removeFromStem(stem string, rule RemoveRule) string {
	if rule.CaseSensitive {
		switch rule.Position {
		case PositionFirst:
			if i := strings.Index(stem, rule.Text); i >= 0 {
				return stem[:i] + stem[i+len(rule.Text):]
			}
			return stem
		case PositionLast:
			if i := strings.LastIndex(stem, rule.Text); i >= 0 {
				return stem[:i] + stem[i+len(rule.Text):]
			}
			return stem
		default:
			return strings.ReplaceAll(stem, rule.Text, "")
		}
	}

	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(rule.Text))
	if err != nil {
		// Matcher construction failed; removal degrades to a no-op rather
		// than failing the batch.
		return stem
	}

	switch rule.Position {
	case PositionFirst:
		if loc := re.FindStringIndex(stem); loc != nil {
			return stem[:loc[0]] + stem[loc[1]:]
		}
		return stem
	case PositionLast:
		// Non-overlapping left-to-right matches; the last one is the match
		// with the greatest start offset.
		locs := re.FindAllStringIndex(stem, -1)
		if len(locs) == 0 {
			return stem
		}
		loc := locs[len(locs)-1]
		return stem[:loc[0]] + stem[loc[1]:]
	default:
		return re.ReplaceAllLiteralString(stem, "")
	}
}
