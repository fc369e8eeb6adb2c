// Package echo mirrors the last successfully submitted inputs and the theme
// preference into the key-value store so the next session starts where this one ended.
package echo

import (
	"context"
	"fmt"
	"strconv"

	"time-calculator/internal/model"
	"time-calculator/internal/storage"
	pkgLog "time-calculator/pkg/log"
)

// Storage keys.
const (
	KeyInitialTime   = "timeCalcInitialTime"
	KeyDurationValue = "timeCalcDurationValue"
	KeyDurationUnit  = "timeCalcDurationUnit"
	KeyUseStartDate  = "timeCalcUseStartDate"
	KeyStartDate     = "timeCalcStartDate"
	KeyTheme         = "timeCalcTheme"
)

var snapshotKeys = []string{KeyInitialTime, KeyDurationValue, KeyDurationUnit, KeyUseStartDate, KeyStartDate}

// Echo reads and writes the persisted session inputs.
type Echo struct {
	l     pkgLog.Logger
	store storage.Store
}

// New creates an Echo on top of store.
func New(l pkgLog.Logger, store storage.Store) *Echo {
	return &Echo{l: l, store: store}
}

// Save writes every snapshot field in one transaction.
func (e *Echo) Save(ctx context.Context, snap model.FormSnapshot) error {
	snap = snap.Trimmed()
	err := e.store.SetMany(ctx, map[string]string{
		KeyInitialTime:   snap.InitialTime,
		KeyDurationValue: snap.DurationMagnitude,
		KeyDurationUnit:  string(snap.DurationUnit),
		KeyUseStartDate:  strconv.FormatBool(snap.UseStartDate),
		KeyStartDate:     snap.StartDate,
	})
	if err != nil {
		e.l.Errorf(ctx, "echo.Save: %v", err)
		return fmt.Errorf("failed to save inputs: %w", err)
	}
	return nil
}

// Restore returns the stored snapshot. Missing keys keep their defaults and
// an unrecognised unit falls back to seconds.
func (e *Echo) Restore(ctx context.Context) (model.FormSnapshot, error) {
	snap := model.DefaultSnapshot()

	get := func(key string) (string, error) {
		v, _, err := e.store.Get(ctx, key)
		return v, err
	}

	var err error
	if snap.InitialTime, err = get(KeyInitialTime); err != nil {
		return model.DefaultSnapshot(), e.restoreErr(ctx, err)
	}
	if snap.DurationMagnitude, err = get(KeyDurationValue); err != nil {
		return model.DefaultSnapshot(), e.restoreErr(ctx, err)
	}
	unit, err := get(KeyDurationUnit)
	if err != nil {
		return model.DefaultSnapshot(), e.restoreErr(ctx, err)
	}
	if u, perr := model.ParseDurationUnit(unit); perr == nil {
		snap.DurationUnit = u
	} else {
		e.l.Warnf(ctx, "echo.Restore: ignoring stored unit %q", unit)
	}
	useDate, err := get(KeyUseStartDate)
	if err != nil {
		return model.DefaultSnapshot(), e.restoreErr(ctx, err)
	}
	snap.UseStartDate = useDate == "true"
	if snap.StartDate, err = get(KeyStartDate); err != nil {
		return model.DefaultSnapshot(), e.restoreErr(ctx, err)
	}

	return snap, nil
}

func (e *Echo) restoreErr(ctx context.Context, err error) error {
	e.l.Errorf(ctx, "echo.Restore: %v", err)
	return fmt.Errorf("failed to restore inputs: %w", err)
}

// Clear removes the stored snapshot. Presets and the theme are kept.
func (e *Echo) Clear(ctx context.Context) error {
	if err := e.store.Remove(ctx, snapshotKeys...); err != nil {
		e.l.Errorf(ctx, "echo.Clear: %v", err)
		return fmt.Errorf("failed to clear inputs: %w", err)
	}
	return nil
}

// Theme returns the stored theme, light when none or an unknown one is stored.
func (e *Echo) Theme(ctx context.Context) model.Theme {
	v, ok, err := e.store.Get(ctx, KeyTheme)
	if err != nil {
		e.l.Warnf(ctx, "echo.Theme: %v", err)
		return model.ThemeLight
	}
	if !ok {
		return model.ThemeLight
	}
	return model.ParseTheme(v)
}

// SetTheme persists the theme preference.
func (e *Echo) SetTheme(ctx context.Context, t model.Theme) error {
	if err := e.store.Set(ctx, KeyTheme, string(t)); err != nil {
		e.l.Errorf(ctx, "echo.SetTheme: %v", err)
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
