// Package drag implements the single-slot pending-drag register that
// maps a picked-up task onto a destination date.
package drag

import (
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/task"
)

// NoHour marks a drop with no hour slot, leaving any task time as-is.
const NoHour = -1

// Updater is the slice of the task store a drop needs.
type Updater interface {
	Update(id int64, u task.Update)
}

// Register holds at most one in-flight task id. Only one drag is
// possible at a time in a single-pointer UI, so Begin overwrites any
// prior value.
type Register struct {
	id int64
}

// Begin records the task being dragged.
func (r *Register) Begin(id int64) {
	r.id = id
}

// Dragging returns the in-flight task id, if any.
func (r *Register) Dragging() (int64, bool) {
	return r.id, r.id != 0
}

// Drop assigns the in-flight task to the destination date and clears
// the register. When hour is not NoHour the task time becomes HH:00;
// otherwise the time is left unchanged. Dropping with an empty
// register is a no-op.
func (r *Register) Drop(s Updater, dateKey string, hour int) {
	id, ok := r.Dragging()
	if !ok {
		return
	}
	u := task.Update{Date: &dateKey}
	if hour != NoHour {
		clock := datekey.ClockForHour(hour)
		u.Time = &clock
	}
	s.Update(id, u)
	r.id = 0
}

// Cancel clears the register without mutating anything.
func (r *Register) Cancel() {
	r.id = 0
}
