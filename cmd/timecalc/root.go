package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"time-calculator/config"
	"time-calculator/internal/app"
	"time-calculator/internal/tui"
	"time-calculator/pkg/log"
)

// deps are the seams the commands reach the outside world through.
type deps struct {
	loadConfig func(path string) (*config.Config, error)
	newLogger  func(cfg *config.Config) (log.Logger, error)
	newApp     func(ctx context.Context, l log.Logger, cfg *config.Config) (*app.App, error)
	runTUI     func(ctx context.Context, m tui.Model) error
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		newLogger:  fileLogger,
		newApp: func(ctx context.Context, l log.Logger, cfg *config.Config) (*app.App, error) {
			return app.New(ctx, l, cfg, app.Options{})
		},
		runTUI: func(ctx context.Context, m tui.Model) error {
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}
}

// fileLogger writes to tui.log_file so log lines never mix with command
// output or the screen the TUI draws. Without a log file nothing is logged.
func fileLogger(cfg *config.Config) (log.Logger, error) {
	if cfg.TUI.LogFile == "" {
		return log.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.TUI.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return log.Init(log.ZapConfig{
		Level:       cfg.Logger.Level,
		Mode:        cfg.Logger.Mode,
		Encoding:    log.EncodingJSON,
		OutputPaths: []string{cfg.TUI.LogFile},
	}), nil
}

// cli holds what the running command shares with its subcommands.
type cli struct {
	deps       deps
	configFile string
	yes        bool

	l   log.Logger
	app *app.App
}

// newRootCmd builds the command tree. The returned close releases the app and
// must run after Execute: cobra skips the post-run hooks when a command fails.
func newRootCmd(d deps) (*cobra.Command, func() error) {
	c := &cli{deps: d}

	root := &cobra.Command{
		Use:   "timecalc",
		Short: "Time calculator form (terminal UI or one-shot commands)",
		Long: `Add a duration to a time of day, optionally from a start date.

Without a subcommand timecalc opens the terminal form. The last successful
inputs, the saved presets and the theme are kept between runs.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
		RunE: c.runTUI,
	}

	root.PersistentFlags().StringVar(&c.configFile, "config", "", "path to config.yaml")
	root.PersistentFlags().BoolVarP(&c.yes, "yes", "y", false, "answer yes to every confirmation")

	root.AddCommand(
		newCalcCmd(c),
		newPresetCmd(c),
		newThemeCmd(c),
		newClearCmd(c),
	)
	return root, c.close
}

func (c *cli) open(cmd *cobra.Command, args []string) error {
	cfg, err := c.deps.loadConfig(c.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	c.l, err = c.deps.newLogger(cfg)
	if err != nil {
		return err
	}

	c.app, err = c.deps.newApp(cmd.Context(), c.l, cfg)
	if err != nil {
		return err
	}
	return nil
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := c.app.Session.Restore(ctx); err != nil {
		c.l.Warnf(ctx, "Could not restore last inputs: %v", err)
	}

	m := tui.New(ctx, tui.Config{
		Logger:      c.l,
		Session:     c.app.Session,
		Calculation: c.app.Calculation,
		Calculator:  c.app.Calculator,
		Clock:       c.app.Clock,
		Form:        c.app.Form,
	})
	return c.deps.runTUI(ctx, m)
}
