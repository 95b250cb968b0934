package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/renamr/pkg/paths"
)

// isolate points the config and state directories at empty temp dirs so
// tests never pick up the developer's real configuration.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
}

// runCmd executes the root command with args and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0644))
	}
}

func TestPlanCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFiles(t, dir, "draft-report.txt", "notes.txt")

	out, err := runCmd(t, "plan", dir, "--remove", "draft-", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "draft-report.txt -> report.txt")
	assert.Contains(t, out, "1 of 2 files will be renamed")

	// Planning must not touch the filesystem.
	_, err = os.Stat(filepath.Join(dir, "draft-report.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "report.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestPlanCmd_InvalidPosition(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt")

	_, err := runCmd(t, "plan", dir, "--remove", "a", "--position", "everywhere")
	assert.Error(t, err)
}

func TestApplyCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFiles(t, dir, "old-a.txt", "old-b.txt", "keep.txt")

	out, err := runCmd(t, "apply", dir, "--remove", "old-", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "2 renamed, 0 failed, 1 skipped")

	for _, name := range []string{"a.txt", "b.txt", "keep.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
	_, err = os.Stat(filepath.Join(dir, "old-a.txt"))
	assert.True(t, os.IsNotExist(err))

	// Content survives the rename.
	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content of old-a.txt", string(data))
}

func TestApplyCmd_DryRun(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFiles(t, dir, "old-a.txt")

	out, err := runCmd(t, "apply", dir, "--remove", "old-", "--dry-run", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "old-a.txt -> a.txt")

	_, err = os.Stat(filepath.Join(dir, "old-a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "a.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestApplyCmd_Copy(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFiles(t, dir, "old-a.txt")

	_, err := runCmd(t, "apply", dir, "--remove", "old-", "--copy", "--format", "text")
	require.NoError(t, err)

	// Copy mode keeps the original and materializes the new name.
	_, err = os.Stat(filepath.Join(dir, "old-a.txt"))
	assert.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content of old-a.txt", string(data))
}

func TestPlanCmd_ExtensionFilter(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	writeFiles(t, dir, "old-a.jpg", "old-b.txt")

	out, err := runCmd(t, "plan", dir, "--remove", "old-", "--ext", "jpg", "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "old-a.jpg -> a.jpg")
	assert.NotContains(t, out, "old-b.txt")
}

func TestApplyCmd_UsesDirConfig(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	ruleFile := `
[[rules]]
text = "IMG_"
position = "first"
case_sensitive = true
ignore_extension = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFileName), []byte(ruleFile), 0644))
	writeFiles(t, dir, "IMG_0001.jpg")

	_, err := runCmd(t, "apply", dir, "--format", "text")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "0001.jpg"))
	assert.NoError(t, err)
}

func TestRulesCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	ruleFile := `
[[rules]]
text = "draft"
position = "all"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFileName), []byte(ruleFile), 0644))

	out, err := runCmd(t, "rules", dir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "draft"`)
	assert.Contains(t, out, `"position": "all"`)
}

func TestRulesCmd_InvalidPosition(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	ruleFile := `
[[rules]]
text = "draft"
position = "sideways"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFileName), []byte(ruleFile), 0644))

	_, err := runCmd(t, "rules", dir)
	assert.Error(t, err)
}

func TestInitCmd(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	out, err := runCmd(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	_, err = os.Stat(filepath.Join(dir, paths.ConfigFileName))
	require.NoError(t, err)

	// A second init must refuse to overwrite.
	_, err = runCmd(t, "init", dir)
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "renamr version")
}

func TestHelpTopics(t *testing.T) {
	isolate(t)

	out, err := runCmd(t, "help", "syntax")
	require.NoError(t, err)
	assert.Contains(t, out, "Removal Rules")
}
