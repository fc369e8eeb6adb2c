package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

// presetErr swaps preset errors for the message the form would show.
func presetErr(err error) error {
	if msg := preset.Message(err); msg != "" {
		return errors.New(msg)
	}
	return err
}

// confirmer asks on the command's stdin unless --yes was given.
func (c *cli) confirmer(cmd *cobra.Command) preset.Confirmer {
	if c.yes {
		return preset.Always
	}
	in := bufio.NewReader(cmd.InOrStdin())
	return preset.ConfirmFunc(func(_ context.Context, prompt string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
		answer, err := in.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		}
		return false
	})
}

func newPresetCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved presets",
	}
	cmd.AddCommand(
		newPresetListCmd(c),
		newPresetShowCmd(c),
		newPresetSaveCmd(c),
		newPresetDeleteCmd(c),
		newPresetExportCmd(c),
		newPresetImportCmd(c),
	)
	return cmd
}

func newPresetListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := c.app.Session.ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved presets.")
				return nil
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "TIME", "DURATION", "UNIT", "START DATE")
			for _, p := range presets {
				start := ""
				if p.UseStartDate {
					start = p.StartDate
				}
				t.Row(p.Name, p.InitialTime, p.DurationMagnitude, string(p.DurationUnit), start)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func newPresetShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print one preset as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := c.app.Session.ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range presets {
				if p.Name == strings.TrimSpace(args[0]) {
					return writeYAML(cmd.OutOrStdout(), p)
				}
			}
			return presetErr(preset.ErrNotFound)
		},
	}
}

func newPresetSaveCmd(c *cli) *cobra.Command {
	var f formFlags
	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the given inputs as a preset",
		Example: `  timecalc preset save commute --time "7:45 AM" --value 50 --unit minutes
  timecalc preset save "night shift" -t 22:00 -v 8 -u hours --date tomorrow --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := f.apply(ctx, c); err != nil {
				return err
			}
			out, err := c.app.Session.SavePreset(ctx, args[0], c.confirmer(cmd))
			if err != nil {
				return presetErr(err)
			}
			switch {
			case out.Cancelled:
				fmt.Fprintln(cmd.OutOrStdout(), "Not saved.")
			case out.Replaced:
				fmt.Fprintf(cmd.OutOrStdout(), "Replaced preset %q.\n", out.Preset.Name)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q.\n", out.Preset.Name)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newPresetDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.app.Session.DeletePreset(cmd.Context(), args[0], c.confirmer(cmd))
			if err != nil {
				return presetErr(err)
			}
			if out.Cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), "Not deleted.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q.\n", strings.TrimSpace(args[0]))
			return nil
		},
	}
}

func newPresetExportCmd(c *cli) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every preset as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := c.app.Session.ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			if presets == nil {
				presets = []model.Preset{}
			}
			if file == "" {
				return writeYAML(cmd.OutOrStdout(), presets)
			}

			out, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", file, err)
			}
			if err := writeYAML(out, presets); err != nil {
				out.Close()
				return err
			}
			return out.Close()
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "write to this file instead of stdout")
	return cmd
}

func newPresetImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add presets from a YAML file written by export",
		Long: `Add presets from a YAML file written by export. Every preset goes
through the same checks as saving from the form; an existing name asks before
it is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			var presets []model.Preset
			if err := yaml.Unmarshal(raw, &presets); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			confirm := c.confirmer(cmd)
			var saved int
			for _, p := range presets {
				out, err := c.app.Presets.Save(ctx, preset.SaveInput{
					Name:     p.Name,
					Snapshot: p.FormSnapshot,
					Confirm:  confirm,
				})
				if err != nil {
					return fmt.Errorf("preset %q: %w", p.Name, presetErr(err))
				}
				if !out.Cancelled {
					saved++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d presets.\n", saved, len(presets))
			return nil
		},
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
