// Package assign provides the runner logic behind taskcal assign.
package assign

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/drag"
	"github.com/Sma11zen/taskcalendar/pkg/printers"
)

// Assign binds a task to a date (and optionally an hour slot), or
// clears its date entirely.
type Assign struct {
	ID    int64
	Date  string
	Hour  int // drag.NoHour when no slot was asked for
	Clear bool

	Service *app.Service
}

func (n *Assign) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not assign, no service")
	}

	t, ok := n.Service.Store.Get(n.ID)
	if !ok {
		fmt.Printf("no task %d\n", n.ID)
		return nil
	}

	if n.Clear {
		n.Service.Unassign(n.ID)
		fmt.Printf("%q is now unscheduled\n", t.Title)
		return nil
	}

	if !datekey.Valid(n.Date) {
		return fmt.Errorf("not a date: %q (want YYYY-MM-DD)", n.Date)
	}
	if n.Hour != drag.NoHour && (n.Hour < 0 || n.Hour > 23) {
		return fmt.Errorf("hour out of range: %d", n.Hour)
	}

	n.Service.Assign(n.ID, n.Date, n.Hour)

	pp := printers.PrettyPrint{}
	fmt.Println("")
	onDate := n.Service.ForDate(n.Date)
	pp.TitleWithCount(n.Date, len(onDate))
	pp.Section(n.Service.TodayKey(), onDate...)
	return nil
}
