package executor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/renamr/pkg/errors"
	"github.com/arthur-debert/renamr/pkg/logging"
	"github.com/arthur-debert/renamr/pkg/types"
)

// CopyExecutor materializes the new names as copies, keeping the originals.
// All copies for a plan go through one synthfs pipeline so a conversion
// error surfaces before anything touches the disk.
type CopyExecutor struct {
	dryRun     bool
	filesystem synthfs.FileSystem
	logger     zerolog.Logger
}

// NewCopyExecutor creates a copy-mode executor against the real filesystem.
func NewCopyExecutor(dryRun bool) *CopyExecutor {
	return &CopyExecutor{
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
		logger:     logging.GetLogger("executor.copy"),
	}
}

// Execute copies every ready operation's source to its new name.
func (e *CopyExecutor) Execute(ops []types.Operation) error {
	synthOps := make([]synthfs.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Status != types.StatusReady {
			continue
		}

		if e.dryRun {
			e.logger.Info().
				Str("source", op.OldPath()).
				Str("target", op.NewPath()).
				Msg("Dry run - would copy")
			continue
		}

		synthOp, err := e.convertCopy(op)
		if err != nil {
			return err
		}
		synthOps = append(synthOps, synthOp)
	}

	if len(synthOps) == 0 {
		e.logger.Info().Msg("No operations to execute")
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrap(err, errors.ErrCopyExecute,
				"failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	runner := synthfs.NewExecutor()

	e.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing copy operations")

	result := runner.Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrap(result.GetError(), errors.ErrCopyExecute,
			"failed to execute copy operations")
	}

	e.logger.Info().Msg("All copy operations executed successfully")
	return nil
}

// convertCopy builds the synthfs copy operation for one planned rename.
// synthfs addresses files relative to its filesystem root.
func (e *CopyExecutor) convertCopy(op types.Operation) (synthfs.Operation, error) {
	absSource, err := filepath.Abs(op.OldPath())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to resolve source path: %s", op.OldPath())
	}
	absTarget, err := filepath.Abs(op.NewPath())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to resolve target path: %s", op.NewPath())
	}

	relSource, err := filepath.Rel("/", absSource)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert source path: %s", absSource)
	}
	relTarget, err := filepath.Rel("/", absTarget)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert target path: %s", absTarget)
	}

	e.logger.Debug().
		Str("source", relSource).
		Str("target", relTarget).
		Msg("Creating copy operation")

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", op.OldName, op.NewName))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	return synthfs.NewOperationsPackageAdapter(copyOp), nil
}
