package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sma11zen/taskcalendar/pkg/commands/options"
	"github.com/Sma11zen/taskcalendar/pkg/runner/cycle"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <task id>",
		Aliases: []string{"cycle", "status"},
		Short:   "advance a task's status one step",
		Long:    "Advances the status checkbox: todo → inprogress → done → todo.",
		Example: `
taskcal done 1709992800000
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("task id must be a number")
			}
			io.ID = id
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			s := cycle.Cycle{
				ID:      io.ID,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
