// Package rules implements the removal-rule evaluator at the heart of renamr.
//
// A RemoveRule deletes occurrences of a target substring from a single name
// component (a file's base name, treated as an opaque string). Rules are
// pure values; evaluation is a total function with no error path:
//
//	out := rules.Remove("abc_abc.txt", rules.RemoveRule{
//		Text:            "abc",
//		Position:        PositionFirst,
//		CaseSensitive:   true,
//		IgnoreExtension: true,
//	})
//	// out == "_abc.txt"
//
// # Position Policy
//
// The Position enum selects which occurrence(s) a rule removes:
//
//   - PositionAll - every non-overlapping occurrence, left to right
//   - PositionFirst - the left-most occurrence only
//   - PositionLast - the right-most occurrence only
//
// # Extension Protection
//
// When IgnoreExtension is set, the trailing extension (last-dot split) is
// held out of matching and reattached verbatim. A leading dot marks a
// hidden file, not an extension: ".bashrc" has no separable extension and
// is processed whole. Only one extension level is ever peeled, so
// "archive.tar.gz" protects ".gz" and exposes "archive.tar".
//
// The package performs no filesystem access and holds no state; callers
// may evaluate rules from any number of goroutines concurrently.
package rules
