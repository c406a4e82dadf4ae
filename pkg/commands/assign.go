package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sma11zen/taskcalendar/pkg/commands/options"
	"github.com/Sma11zen/taskcalendar/pkg/drag"
	"github.com/Sma11zen/taskcalendar/pkg/runner/assign"
)

func addAssign(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	date := ""
	hour := drag.NoHour
	clear := false

	cmd := &cobra.Command{
		Use:     "assign <task id> [date]",
		Aliases: []string{"move", "schedule"},
		Short:   "bind a task to a date",
		Long: "Binds the task to a date and, with --hour, an hour slot.\n" +
			"With --clear the task becomes unscheduled again; its time of\n" +
			"day is left as-is.",
		Example: `
taskcal assign 1709992800000 2024-03-10
taskcal assign 1709992800000 2024-03-10 --hour 9
taskcal assign 1709992800000 --clear
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("task id must be a number")
			}
			io.ID = id
			if len(args) > 1 {
				date = args[1]
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if !clear && date == "" {
				return errors.New("requires a date, or --clear")
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := assign.Assign{
				ID:      io.ID,
				Date:    date,
				Hour:    hour,
				Clear:   clear,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&hour, "hour", drag.NoHour, "Hour slot (0-23); sets the task time to HH:00.")
	cmd.Flags().BoolVar(&clear, "clear", false, "Unschedule the task instead.")

	topLevel.AddCommand(cmd)
}
