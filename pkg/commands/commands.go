// Package commands wires the taskcal CLI.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "taskcal",
		Short: base.Wrap80("A task and calendar dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addAssign(topLevel)
	addCal(topLevel)
	addVersion(topLevel)
}

// newService loads the persisted snapshot and anchors the session on
// the current date.
func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(store.New(p)), nil
}
