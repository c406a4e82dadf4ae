// Package cycle provides the runner logic for advancing task status.
package cycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/printers"
)

// Cycle advances a task one status step (todo → inprogress → done →
// todo).
type Cycle struct {
	ID      int64
	Service *app.Service
}

func (n *Cycle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not cycle, no service")
	}

	n.Service.Cycle(n.ID)

	t, ok := n.Service.Store.Get(n.ID)
	if !ok {
		// Unknown ids are tolerated by the store; just say so.
		fmt.Printf("no task %d\n", n.ID)
		return nil
	}

	fmt.Printf("%s %s is now %s\n", printers.StatusGlyph(t.Status), t.Title, t.Status.Label())
	return nil
}
