// Package app builds the form session from configuration. Both binaries use it.
package app

import (
	"context"
	"fmt"

	"time-calculator/config"
	"time-calculator/internal/calculation"
	calcUC "time-calculator/internal/calculation/usecase"
	"time-calculator/internal/echo"
	"time-calculator/internal/form"
	formUC "time-calculator/internal/form/usecase"
	"time-calculator/internal/preset"
	"time-calculator/internal/preset/repository/kv"
	presetUC "time-calculator/internal/preset/usecase"
	"time-calculator/internal/storage"
	"time-calculator/internal/storage/memory"
	"time-calculator/internal/storage/sqlite"
	"time-calculator/pkg/calcapi"
	"time-calculator/pkg/datemath"
	"time-calculator/pkg/log"
)

// App is one wired form session.
type App struct {
	Store       storage.Store
	Clock       *datemath.Clock
	Calculator  calcapi.Calculator
	Echo        *echo.Echo
	Form        *form.Context
	Presets     preset.UseCase
	Calculation calculation.UseCase
	Session     form.UseCase
}

// Options overrides pieces of the wiring, mostly for tests.
type Options struct {
	// Calculator replaces the HTTP client built from cfg.Calculator.
	Calculator calcapi.Calculator
	// Store replaces the store built from cfg.Storage.
	Store storage.Store
}

// New wires the session described by cfg.
func New(ctx context.Context, l log.Logger, cfg *config.Config, opts Options) (*App, error) {
	clock, err := datemath.NewClock(cfg.Clock.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Clock.Timezone, err)
		clock, _ = datemath.NewClock("UTC")
	}

	store := opts.Store
	if store == nil {
		store, err = openStore(ctx, l, cfg.Storage)
		if err != nil {
			return nil, err
		}
	}

	calc := opts.Calculator
	if calc == nil {
		calc = calcapi.NewClient(cfg.Calculator.BaseURL, nil)
	}

	e := echo.New(l, store)
	f := form.New()
	presets := presetUC.New(l, kv.New(l, store))
	calcUseCase := calcUC.New(l, f, calc, e)

	return &App{
		Store:       store,
		Clock:       clock,
		Calculator:  calc,
		Echo:        e,
		Form:        f,
		Presets:     presets,
		Calculation: calcUseCase,
		Session:     formUC.New(l, f, presets, calcUseCase, e, clock),
	}, nil
}

func openStore(ctx context.Context, l log.Logger, cfg config.StorageConfig) (storage.Store, error) {
	if cfg.Path == "" {
		l.Warn(ctx, "storage.path is empty, presets and inputs will not survive a restart")
		return memory.New(), nil
	}
	s, err := sqlite.New(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	l.Infof(ctx, "Storage: %s", cfg.Path)
	return s, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
