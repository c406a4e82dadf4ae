package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Sma11zen/taskcalendar/pkg/commands/options"
	"github.com/Sma11zen/taskcalendar/pkg/runner/get"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	long := strings.Builder{}
	long.WriteString("Get one bucket of tasks, or every section.\n\nBuckets:\n")

	validArgs := make([]string, 0, len(views.Kinds()))
	for _, k := range views.Kinds() {
		long.WriteString(fmt.Sprintf("%s %s\n", k.Icon(), k))
		validArgs = append(validArgs, string(k))
	}

	kind := views.KindAll

	cmd := &cobra.Command{
		Use:   "get [bucket]",
		Short: "get tasks by bucket",
		Long:  long.String(),
		Example: `
taskcal get today
taskcal get upcoming --search milk
taskcal get --all --filter high
taskcal get today --json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				fo.All = true
				return nil
			}
			k, ok := views.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown bucket %q", args[0])
			}
			kind = k
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			category, ok := views.ParseCategory(fo.Category)
			if !ok {
				return fmt.Errorf("unknown filter %q", fo.Category)
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Kind:    kind,
				All:     fo.All,
				Filter:  views.Filter{Search: fo.Search, Category: category},
				Service: svc,
			}
			if oo.JSON {
				s.Output = "json"
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
