// Package executor carries out rename plans. The direct executor renames
// in place through types.FS; the copy executor materializes new names as
// copies through a synthfs pipeline, leaving the originals untouched.
package executor

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamr/pkg/errors"
	"github.com/arthur-debert/renamr/pkg/logging"
	"github.com/arthur-debert/renamr/pkg/types"
)

// Executor renames files in place.
type Executor struct {
	fs     types.FS
	dryRun bool
	logger zerolog.Logger
}

// New creates a direct executor over fs.
func New(fs types.FS, dryRun bool) *Executor {
	return &Executor{
		fs:     fs,
		dryRun: dryRun,
		logger: logging.GetLogger("executor"),
	}
}

// Execute runs every ready operation in the plan and returns the plan with
// statuses updated. A failed rename marks its own operation and does not
// stop the rest; there is no rollback across the batch.
func (e *Executor) Execute(ops []types.Operation) []types.Operation {
	out := make([]types.Operation, len(ops))
	copy(out, ops)

	for i := range out {
		op := &out[i]
		if op.Status != types.StatusReady {
			continue
		}

		if e.dryRun {
			e.logger.Info().
				Str("old", op.OldPath()).
				Str("new", op.NewPath()).
				Msg("Dry run - would rename")
			continue
		}

		if err := e.rename(*op); err != nil {
			e.logger.Error().Err(err).Str("old", op.OldPath()).Msg("Rename failed")
			op.Status = types.StatusError
			op.Reason = err.Error()
			continue
		}

		e.logger.Info().
			Str("old", op.OldPath()).
			Str("new", op.NewPath()).
			Msg("Renamed")
		op.Status = types.StatusDone
	}

	return out
}

func (e *Executor) rename(op types.Operation) error {
	// Refuse to clobber an existing file; os.Rename would overwrite it
	// silently.
	if _, err := e.fs.Stat(op.NewPath()); err == nil {
		return errors.Newf(errors.ErrRenameExecute,
			"destination %s already exists", op.NewPath())
	}

	if err := e.fs.Rename(op.OldPath(), op.NewPath()); err != nil {
		return errors.Wrapf(err, errors.ErrRenameExecute,
			"failed to rename %s", op.OldPath())
	}
	return nil
}
