package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sma11zen/taskcalendar/pkg/calendar"
	"github.com/Sma11zen/taskcalendar/pkg/commands/options"
	"github.com/Sma11zen/taskcalendar/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	co := &options.CalendarOptions{}

	mode := calendar.ModeMonth

	cmd := &cobra.Command{
		Use:     "cal [month|week|day]",
		Aliases: []string{"calendar"},
		Short:   "show the calendar",
		Example: `
taskcal cal
taskcal cal week --on 2024-03-10
taskcal cal --month 4 --year 2024
`,
		ValidArgs: []string{"month", "week", "day"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return nil
			}
			m, ok := calendar.ParseMode(args[0])
			if !ok {
				return fmt.Errorf("unknown calendar view %q", args[0])
			}
			mode = m
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cal.Calendar{
				Mode:    mode,
				On:      co.On,
				Month:   co.Month,
				Year:    co.Year,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddCalendarArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
