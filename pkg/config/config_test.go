// Test Type: Unit Test
// Description: Tests for the config package - layered loading, conversion, encoding

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/renamr/pkg/config"
	"github.com/arthur-debert/renamr/pkg/paths"
	"github.com/arthur-debert/renamr/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the global config at an empty directory so tests only see
// the layers they set up themselves.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Scan.Recursive)
	assert.False(t, cfg.Scan.IncludeHidden)
	assert.Empty(t, cfg.Rules, "defaults must not rename anything")
}

func TestLoad_DirConfigTOML(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	content := `
[[rules]]
text = "draft_"
position = "all"
case_sensitive = true
ignore_extension = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".renamr.toml"), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "draft_", cfg.Rules[0].Text)
	assert.Equal(t, "all", cfg.Rules[0].Position)
	assert.True(t, cfg.Rules[0].IgnoreExtension)
}

func TestLoad_DirConfigYAML(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	content := `
rules:
  - text: "_final"
    position: last
    case_sensitive: false
    ignore_extension: true
scan:
  recursive: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".renamr.yaml"), []byte(content), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, "_final", cfg.Rules[0].Text)
	assert.Equal(t, "last", cfg.Rules[0].Position)
	assert.True(t, cfg.Scan.Recursive)
}

func TestLoad_GlobalThenDirOverride(t *testing.T) {
	globalDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, globalDir)
	t.Setenv(paths.EnvStateDir, t.TempDir())

	globalContent := `
[scan]
recursive = true
`
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "renamr.toml"), []byte(globalContent), 0644))

	dir := t.TempDir()
	dirContent := `
[scan]
recursive = false
include_hidden = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".renamr.toml"), []byte(dirContent), 0644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Scan.Recursive, "directory config overrides global")
	assert.True(t, cfg.Scan.IncludeHidden)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("RENAMR_SCAN_RECURSIVE", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Scan.Recursive)
}

func TestToRuleSet(t *testing.T) {
	cfg := &config.Config{
		Rules: []config.Rule{
			{Text: "a", Position: "first", CaseSensitive: true},
			{Text: "b", Position: "last", IgnoreExtension: true},
			{Text: "c", Position: ""},
		},
	}

	set, err := cfg.ToRuleSet()
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, rules.PositionFirst, set[0].Position)
	assert.Equal(t, rules.PositionLast, set[1].Position)
	assert.Equal(t, rules.PositionAll, set[2].Position, "missing position defaults to all")
}

func TestToRuleSet_InvalidPosition(t *testing.T) {
	cfg := &config.Config{Rules: []config.Rule{{Text: "a", Position: "middle"}}}
	_, err := cfg.ToRuleSet()
	assert.Error(t, err)
}

func TestFromRuleSet_RoundTrip(t *testing.T) {
	set := rules.RuleSet{
		{Text: "x", Position: rules.PositionLast, CaseSensitive: false, IgnoreExtension: true},
	}
	cfg := &config.Config{Rules: config.FromRuleSet(set)}

	back, err := cfg.ToRuleSet()
	require.NoError(t, err)
	assert.Equal(t, set, back)
}

func TestEncode(t *testing.T) {
	cfg := &config.Config{
		Rules: []config.Rule{
			{Text: "draft", Position: "all", CaseSensitive: true, IgnoreExtension: true},
		},
	}

	toml, err := cfg.EncodeTOML()
	require.NoError(t, err)
	assert.Contains(t, string(toml), "text = 'draft'")

	yaml, err := cfg.EncodeYAML()
	require.NoError(t, err)
	assert.Contains(t, string(yaml), "text: draft")

	jsonData, err := cfg.EncodeJSON()
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"text": "draft"`)
}

func TestSave(t *testing.T) {
	cfg := &config.Config{Rules: []config.Rule{{Text: "a", Position: "all"}}}

	path := filepath.Join(t.TempDir(), "nested", "renamr.toml")
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "text = 'a'")
}
