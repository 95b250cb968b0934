package style

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/renamr/pkg/errors"
	"github.com/arthur-debert/renamr/pkg/types"
	"github.com/arthur-debert/renamr/pkg/ui"
)

// Renderer defines the interface for rendering plans and results
type Renderer interface {
	// RenderPlan renders a plan before execution
	RenderPlan(ops []types.Operation) string

	// RenderResult renders a plan after execution
	RenderResult(ops []types.Operation) string

	// RenderError renders an error
	RenderError(err error) string
}

// NewRenderer returns the renderer matching the resolved output format.
// FormatJSON is handled by the caller; it gets the plain renderer here.
func NewRenderer(format ui.Format) Renderer {
	if format == ui.FormatTerminal {
		return &TerminalRenderer{}
	}
	return &TextRenderer{}
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// RenderPlan renders a plan before execution
func (r *TerminalRenderer) RenderPlan(ops []types.Operation) string {
	if len(ops) == 0 {
		return MutedStyle.Render("No files to rename") + "\n"
	}

	var output strings.Builder
	ready := 0

	for _, op := range ops {
		switch op.Status {
		case types.StatusReady:
			ready++
			output.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				pterm.Info.Prefix.Text,
				op.OldName,
				pterm.ThemeDefault.SecondaryStyle.Sprint("->"),
				pterm.Bold.Sprint(op.NewName)))
		case types.StatusSkipped:
			output.WriteString(fmt.Sprintf("  %s %s\n",
				pterm.ThemeDefault.SecondaryStyle.Sprint("-"),
				MutedStyle.Render(fmt.Sprintf("%s (%s)", op.OldName, op.Reason))))
		}
	}

	output.WriteString(fmt.Sprintf("\n%d of %d files will be renamed\n", ready, len(ops)))
	return output.String()
}

// RenderResult renders a plan after execution
func (r *TerminalRenderer) RenderResult(ops []types.Operation) string {
	var output strings.Builder
	done, failed, skipped := tally(ops)

	for _, op := range ops {
		switch op.Status {
		case types.StatusDone:
			output.WriteString(fmt.Sprintf("  %s %s -> %s\n",
				pterm.Success.Prefix.Text, op.OldName, op.NewName))
		case types.StatusError:
			output.WriteString(fmt.Sprintf("  %s %s: %s\n",
				pterm.Error.Prefix.Text, op.OldName,
				pterm.Error.MessageStyle.Sprint(op.Reason)))
		}
	}

	summary := fmt.Sprintf("\n%d renamed, %d failed, %d skipped\n", done, failed, skipped)
	if failed > 0 {
		output.WriteString(ErrorStyle.Render(strings.TrimSpace(summary)) + "\n")
	} else {
		output.WriteString(SuccessStyle.Render(strings.TrimSpace(summary)) + "\n")
	}
	return output.String()
}

// RenderError renders an error with its code when it carries one
func (r *TerminalRenderer) RenderError(err error) string {
	var re *errors.RenamrError
	if stderrors.As(err, &re) {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(re.Code)),
			re.Message)
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// TextRenderer implements Renderer with unstyled output
type TextRenderer struct{}

// RenderPlan renders a plan before execution
func (r *TextRenderer) RenderPlan(ops []types.Operation) string {
	if len(ops) == 0 {
		return "No files to rename\n"
	}

	var output strings.Builder
	ready := 0
	for _, op := range ops {
		switch op.Status {
		case types.StatusReady:
			ready++
			output.WriteString(fmt.Sprintf("%s -> %s\n", op.OldName, op.NewName))
		case types.StatusSkipped:
			output.WriteString(fmt.Sprintf("%s (%s)\n", op.OldName, op.Reason))
		}
	}
	output.WriteString(fmt.Sprintf("\n%d of %d files will be renamed\n", ready, len(ops)))
	return output.String()
}

// RenderResult renders a plan after execution
func (r *TextRenderer) RenderResult(ops []types.Operation) string {
	var output strings.Builder
	done, failed, skipped := tally(ops)

	for _, op := range ops {
		switch op.Status {
		case types.StatusDone:
			output.WriteString(fmt.Sprintf("renamed %s -> %s\n", op.OldName, op.NewName))
		case types.StatusError:
			output.WriteString(fmt.Sprintf("failed %s: %s\n", op.OldName, op.Reason))
		}
	}
	output.WriteString(fmt.Sprintf("\n%d renamed, %d failed, %d skipped\n", done, failed, skipped))
	return output.String()
}

// RenderError renders an error
func (r *TextRenderer) RenderError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

func tally(ops []types.Operation) (done, failed, skipped int) {
	for _, op := range ops {
		switch op.Status {
		case types.StatusDone:
			done++
		case types.StatusError:
			failed++
		case types.StatusSkipped:
			skipped++
		}
	}
	return done, failed, skipped
}
