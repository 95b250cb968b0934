// Package renamer builds rename plans: it applies a rule set to each
// scanned file name and produces the operations the executor carries out.
package renamer

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamr/pkg/logging"
	"github.com/arthur-debert/renamr/pkg/rules"
	"github.com/arthur-debert/renamr/pkg/types"
)

// Skip reasons, stable for display and tests.
const (
	ReasonUnchanged = "rules left the name unchanged"
	ReasonEmptyName = "rules produced an empty name"
)

// Planner turns scanned files into planned rename operations.
type Planner struct {
	set    rules.RuleSet
	logger zerolog.Logger
}

// NewPlanner creates a planner for the given ordered rule set.
func NewPlanner(set rules.RuleSet) *Planner {
	return &Planner{
		set:    set,
		logger: logging.GetLogger("renamer.planner"),
	}
}

// Plan evaluates the rule set against every file and returns one operation
// per file, in input order. Files whose name would not change, or would
// become empty, are marked skipped. The plan performs no collision
// detection: sequential-transform semantics are the caller's contract.
func (p *Planner) Plan(files []types.FileEntry) []types.Operation {
	ops := make([]types.Operation, 0, len(files))

	for _, f := range files {
		newName := rules.RemoveAll(f.Name, p.set)

		op := types.Operation{
			Dir:     f.Dir,
			OldName: f.Name,
			NewName: newName,
		}

		switch {
		case newName == f.Name:
			op.Status = types.StatusSkipped
			op.Reason = ReasonUnchanged
		case newName == "":
			op.Status = types.StatusSkipped
			op.Reason = ReasonEmptyName
		default:
			op.Status = types.StatusReady
		}

		p.logger.Debug().
			Str("old", f.Name).
			Str("new", newName).
			Str("status", string(op.Status)).
			Msg("Planned operation")

		ops = append(ops, op)
	}

	return ops
}

// Ready filters a plan down to the operations that will actually execute.
func Ready(ops []types.Operation) []types.Operation {
	out := make([]types.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Status == types.StatusReady {
			out = append(out, op)
		}
	}
	return out
}
