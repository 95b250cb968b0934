// Test Type: Unit Test
// Description: Tests for the executor package - direct rename execution

package executor_test

import (
	"testing"

	"github.com/arthur-debert/renamr/pkg/executor"
	"github.com/arthur-debert/renamr/pkg/testutil"
	"github.com/arthur-debert/renamr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutor_Execute(t *testing.T) {
	t.Run("renames_ready_operations", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.SetupDir(t, fs, "/docs", map[string]string{
			"draft_a.txt": "alpha",
			"draft_b.txt": "beta",
		})

		ops := []types.Operation{
			{Dir: "/docs", OldName: "draft_a.txt", NewName: "a.txt", Status: types.StatusReady},
			{Dir: "/docs", OldName: "draft_b.txt", NewName: "b.txt", Status: types.StatusReady},
		}

		result := executor.New(fs, false).Execute(ops)
		require.Len(t, result, 2)
		assert.Equal(t, types.StatusDone, result[0].Status)
		assert.Equal(t, types.StatusDone, result[1].Status)

		assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, testutil.Names(t, fs, "/docs"))

		content, err := fs.ReadFile("/docs/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha", string(content))
	})

	t.Run("skipped_operations_untouched", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.SetupDir(t, fs, "/docs", map[string]string{"keep.txt": "x"})

		ops := []types.Operation{
			{Dir: "/docs", OldName: "keep.txt", NewName: "keep.txt", Status: types.StatusSkipped},
		}

		result := executor.New(fs, false).Execute(ops)
		assert.Equal(t, types.StatusSkipped, result[0].Status)
		assert.Equal(t, []string{"keep.txt"}, testutil.Names(t, fs, "/docs"))
	})

	t.Run("dry_run_changes_nothing", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.SetupDir(t, fs, "/docs", map[string]string{"draft.txt": "x"})

		ops := []types.Operation{
			{Dir: "/docs", OldName: "draft.txt", NewName: "final.txt", Status: types.StatusReady},
		}

		result := executor.New(fs, true).Execute(ops)
		assert.Equal(t, types.StatusReady, result[0].Status)
		assert.Equal(t, []string{"draft.txt"}, testutil.Names(t, fs, "/docs"))
	})

	t.Run("refuses_to_clobber_existing_destination", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.SetupDir(t, fs, "/docs", map[string]string{
			"draft_a.txt": "new",
			"a.txt":       "old",
		})

		ops := []types.Operation{
			{Dir: "/docs", OldName: "draft_a.txt", NewName: "a.txt", Status: types.StatusReady},
		}

		result := executor.New(fs, false).Execute(ops)
		assert.Equal(t, types.StatusError, result[0].Status)
		assert.Contains(t, result[0].Reason, "already exists")

		// Both files survive.
		assert.ElementsMatch(t, []string{"draft_a.txt", "a.txt"}, testutil.Names(t, fs, "/docs"))
		content, err := fs.ReadFile("/docs/a.txt")
		require.NoError(t, err)
		assert.Equal(t, "old", string(content))
	})

	t.Run("one_failure_does_not_stop_the_batch", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.SetupDir(t, fs, "/docs", map[string]string{"draft_b.txt": "x"})

		ops := []types.Operation{
			{Dir: "/docs", OldName: "missing.txt", NewName: "m.txt", Status: types.StatusReady},
			{Dir: "/docs", OldName: "draft_b.txt", NewName: "b.txt", Status: types.StatusReady},
		}

		result := executor.New(fs, false).Execute(ops)
		assert.Equal(t, types.StatusError, result[0].Status)
		assert.Equal(t, types.StatusDone, result[1].Status)
	})
}

func TestCopyExecutor_DryRun(t *testing.T) {
	ops := []types.Operation{
		{Dir: "/nonexistent", OldName: "a.txt", NewName: "b.txt", Status: types.StatusReady},
	}

	// Dry run must not reach the filesystem at all.
	err := executor.NewCopyExecutor(true).Execute(ops)
	assert.NoError(t, err)
}
