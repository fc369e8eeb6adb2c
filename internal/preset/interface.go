package preset

import (
	"context"

	"time-calculator/internal/model"
)

// UseCase manages the named preset collection.
type UseCase interface {
	// Save stores the snapshot under name, asking the Confirmer before replacing an existing preset.
	Save(ctx context.Context, input SaveInput) (SaveOutput, error)
	// Load returns the preset called name.
	Load(ctx context.Context, name string) (model.Preset, error)
	// Delete removes the preset called name after the Confirmer agrees.
	Delete(ctx context.Context, input DeleteInput) (DeleteOutput, error)
	// List returns every preset in insertion order.
	List(ctx context.Context) ([]model.Preset, error)
}

// Confirmer answers yes/no questions put to the user.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to a Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

var (
	// Always agrees to everything.
	Always Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })
	// Never declines everything.
	Never Confirmer = ConfirmFunc(func(context.Context, string) bool { return false })
)
