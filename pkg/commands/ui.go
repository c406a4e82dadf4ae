package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sma11zen/taskcalendar/pkg/runner/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"dashboard"},
		Short:   "open the interactive dashboard",
		Example: `
taskcal ui
`,
		ValidArgs: []string{},
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
