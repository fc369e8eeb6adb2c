package preset

import (
	"fmt"

	"time-calculator/internal/model"
)

// SaveInput is the input for Save. A nil Confirm declines overwrites.
type SaveInput struct {
	Name     string
	Snapshot model.FormSnapshot
	Confirm  Confirmer
}

// SaveOutput reports what Save did.
type SaveOutput struct {
	Preset    model.Preset
	Replaced  bool // an existing preset with the same name was overwritten
	Cancelled bool // the user declined the overwrite, nothing changed
}

// DeleteInput is the input for Delete. A nil Confirm declines.
type DeleteInput struct {
	Name    string
	Confirm Confirmer
}

// DeleteOutput reports what Delete did.
type DeleteOutput struct {
	Cancelled bool
}

// OverwritePrompt is the question asked before replacing a preset.
func OverwritePrompt(name string) string {
	return fmt.Sprintf("A preset named %q already exists. Overwrite it?", name)
}

// DeletePrompt is the question asked before deleting a preset.
func DeletePrompt(name string) string {
	return fmt.Sprintf("Are you sure you want to delete the preset %q?", name)
}
