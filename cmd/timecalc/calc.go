package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"time-calculator/internal/calculation"
	"time-calculator/internal/duration"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
)

// formFlags are the form inputs shared by calc and preset save.
type formFlags struct {
	initialTime string
	value       string
	unit        string
	date        string
	legacy      string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.initialTime, "time", "t", "", "initial time, H:MM or H:MM AM/PM")
	cmd.Flags().StringVarP(&f.value, "value", "v", "", "duration magnitude, a non-negative integer")
	cmd.Flags().StringVarP(&f.unit, "unit", "u", string(model.DefaultDurationUnit), "duration unit: seconds, minutes, hours or days")
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "start date: yyyy-mm-dd, today, tomorrow, in N days, next <weekday>")
	cmd.Flags().StringVar(&f.legacy, "duration", "", `free-form duration such as "1 day, 2:30:00" (replaces --value and --unit)`)
	cmd.MarkFlagsMutuallyExclusive("duration", "value")
}

// apply replaces the form contents with the flags. Field errors stay on the form.
func (f *formFlags) apply(ctx context.Context, c *cli) error {
	s := c.app.Session
	c.app.Form.Clear()

	value, unit := f.value, f.unit
	if f.legacy != "" {
		if res := form.Validate(form.LegacyDurationSpec, f.legacy, true); !res.Valid {
			return errors.New(res.Message)
		}
		total, err := duration.ParseLegacy(f.legacy)
		if err != nil {
			return err
		}
		value, unit = strconv.FormatUint(total, 10), string(model.UnitSeconds)
	}

	if err := s.SetUnit(ctx, unit); err != nil {
		return err
	}
	s.SetField(ctx, form.FieldInitialTime, f.initialTime)
	s.SetField(ctx, form.FieldDurationValue, value)

	if f.date != "" {
		date, err := c.app.Clock.ResolveDate(f.date)
		if err != nil {
			return err
		}
		s.SetUseStartDate(ctx, true)
		s.SetField(ctx, form.FieldStartDate, date)
	}
	return nil
}

// fieldErrors lists the invalid fields of v as "Label: message" lines.
func fieldErrors(v form.View) []string {
	labels := map[form.FieldID]string{
		form.FieldInitialTime:   form.InitialTimeSpec.Label,
		form.FieldDurationValue: form.DurationValueSpec.Label,
		form.FieldStartDate:     form.StartDateSpec.Label,
	}
	var out []string
	for _, id := range form.Fields {
		if msg := v.Field(id).ErrorMessage; msg != "" {
			out = append(out, labels[id]+": "+msg)
		}
	}
	return out
}

func newCalcCmd(c *cli) *cobra.Command {
	var f formFlags

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run one calculation and print the result",
		Example: `  timecalc calc --time "9:15 AM" --value 90 --unit minutes
  timecalc calc -t 22:00 -v 3 -u hours --date tomorrow
  timecalc calc -t 8:00 --duration "1 day, 2:30"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := f.apply(ctx, c); err != nil {
				return err
			}

			out, err := c.app.Session.Submit(ctx)
			if errors.Is(err, calculation.ErrInvalidForm) {
				for _, line := range fieldErrors(c.app.Session.View(ctx)) {
					fmt.Fprintln(cmd.ErrOrStderr(), line)
				}
				return errors.New(form.MessageCorrectErrors)
			}
			if err != nil {
				return err
			}

			if out.Kind != calculation.OutcomeSuccess {
				return errors.New(strings.TrimPrefix(strings.Join(out.Lines, "\n"), calculation.ErrorPrefix))
			}
			for _, line := range out.Lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
