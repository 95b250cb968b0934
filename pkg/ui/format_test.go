// Test Type: Unit Test
// Description: Tests for the ui package - output format parsing and detection

package ui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/renamr/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ui.Format
		wantErr bool
	}{
		{in: "auto", want: ui.FormatAuto},
		{in: "", want: ui.FormatAuto},
		{in: "term", want: ui.FormatTerminal},
		{in: "terminal", want: ui.FormatTerminal},
		{in: "text", want: ui.FormatText},
		{in: "plain", want: ui.FormatText},
		{in: "JSON", want: ui.FormatJSON},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ui.ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
}

func TestDetectFormat_NonTerminal(t *testing.T) {
	// A regular file is not a terminal, so detection falls back to text.
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, f))
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, f))
}
