package types

import "path/filepath"

// OperationStatus defines the state of a planned rename.
type OperationStatus string

const (
	// StatusReady means the rename is ready to be executed.
	StatusReady OperationStatus = "ready"
	// StatusSkipped means the rules left the name unchanged or produced an
	// empty name; nothing will be executed.
	StatusSkipped OperationStatus = "skipped"
	// StatusDone means the rename was executed successfully.
	StatusDone OperationStatus = "done"
	// StatusError means executing the rename failed.
	StatusError OperationStatus = "error"
)

// Operation represents one planned rename of a single file.
type Operation struct {
	// Dir is the directory containing the file.
	Dir string `json:"dir"`

	// OldName and NewName are base names only; the rule evaluator never
	// sees path separators.
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`

	// Status is the current state of the operation.
	Status OperationStatus `json:"status"`

	// Reason explains a skip or an error, empty otherwise.
	Reason string `json:"reason,omitempty"`
}

// OldPath returns the full source path.
func (o Operation) OldPath() string { return filepath.Join(o.Dir, o.OldName) }

// NewPath returns the full destination path.
func (o Operation) NewPath() string { return filepath.Join(o.Dir, o.NewName) }

// FileEntry is a file discovered by the scanner, as handed to the planner.
type FileEntry struct {
	// Dir is the directory the file lives in.
	Dir string

	// Name is the base name the rules operate on.
	Name string
}
