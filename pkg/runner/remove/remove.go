// Package remove provides the runner logic behind taskcal rm.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sma11zen/taskcalendar/pkg/app"
)

// Remove deletes a task by id.
type Remove struct {
	ID      int64
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	t, ok := n.Service.Store.Get(n.ID)
	if !ok {
		fmt.Printf("no task %d\n", n.ID)
		return nil
	}

	n.Service.Remove(n.ID)
	fmt.Printf("removed %q\n", t.Title)
	return nil
}
