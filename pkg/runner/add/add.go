// Package add provides the runner logic behind taskcal add.
package add

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/printers"
	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

// Add creates a task through the quick-add or modal path.
type Add struct {
	Title       string
	Date        string
	Clock       string
	Priority    task.Priority
	Description string

	Service *app.Service
}

// Do validates the optional fields, creates the task and echoes the
// bucket it landed in.
func (n *Add) Do(ctx context.Context) error {
	if n.Date != "" && !datekey.Valid(n.Date) {
		return fmt.Errorf("not a date: %q (want YYYY-MM-DD)", n.Date)
	}
	if n.Clock != "" && !datekey.ValidClock(n.Clock) {
		return fmt.Errorf("not a time: %q (want HH:MM)", n.Clock)
	}

	t, err := n.Service.Add(n.Title, n.Date, n.Priority)
	if err != nil {
		return err
	}
	if t == nil {
		// Blank titles are rejected as a no-op; the feedback is ours.
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("nothing added: a task needs a title")
		return nil
	}

	if n.Clock != "" || n.Description != "" {
		u := task.Update{}
		if n.Clock != "" {
			u.Time = &n.Clock
		}
		if n.Description != "" {
			u.Description = &n.Description
		}
		n.Service.Edit(t.ID, u)
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	if t.Date == "" {
		bucket := n.Service.Bucket(views.KindUnscheduled)
		pp.TitleWithCount(views.KindUnscheduled.Title(), len(bucket))
		pp.Section(n.Service.TodayKey(), bucket...)
	} else {
		onDate := n.Service.ForDate(t.Date)
		pp.TitleWithCount(t.Date, len(onDate))
		pp.Section(n.Service.TodayKey(), onDate...)
	}
	return nil
}
