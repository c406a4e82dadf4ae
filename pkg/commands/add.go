package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sma11zen/taskcalendar/pkg/commands/options"
	"github.com/Sma11zen/taskcalendar/pkg/runner/add"
	"github.com/Sma11zen/taskcalendar/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "add a task",
		Example: `
taskcal add Buy milk
taskcal add Dentist --date 2024-03-12 --time 09:30 --priority high
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			priority, err := task.ParsePriority(to.Priority)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       title,
				Date:        to.Date,
				Clock:       to.Clock,
				Priority:    priority,
				Description: to.Description,
				Service:     svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
