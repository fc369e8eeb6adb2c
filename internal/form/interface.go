package form

import (
	"context"

	"time-calculator/internal/calculation"
	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

// UseCase is the whole form session: field edits, presets, submission and
// the persisted preferences, as the deliveries see it.
type UseCase interface {
	// Restore fills the form from the last successful calculation.
	Restore(ctx context.Context) error
	View(ctx context.Context) View
	SetField(ctx context.Context, id FieldID, value string) (FieldState, error)
	SetUnit(ctx context.Context, unit string) error
	SetUseStartDate(ctx context.Context, on bool)
	// SetNow fills the initial time with the current clock time.
	SetNow(ctx context.Context) FieldState
	// Clear resets the form and forgets the stored inputs. Presets survive.
	Clear(ctx context.Context) error
	Submit(ctx context.Context) (calculation.Outcome, error)
	ResultText(ctx context.Context) string

	// SavePreset stores the current form under name.
	SavePreset(ctx context.Context, name string, confirm preset.Confirmer) (preset.SaveOutput, error)
	// LoadPreset applies a preset to the form, validating every field.
	LoadPreset(ctx context.Context, name string) (model.Preset, error)
	DeletePreset(ctx context.Context, name string, confirm preset.Confirmer) (preset.DeleteOutput, error)
	ListPresets(ctx context.Context) ([]model.Preset, error)

	Theme(ctx context.Context) model.Theme
	ToggleTheme(ctx context.Context) (model.Theme, error)
}
