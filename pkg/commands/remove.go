package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sma11zen/taskcalendar/pkg/commands/options"
	"github.com/Sma11zen/taskcalendar/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "rm <task id>",
		Aliases: []string{"remove", "delete"},
		Short:   "delete a task",
		Example: `
taskcal rm 1709992800000
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
			s := remove.Remove{
				ID:      io.ID,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
