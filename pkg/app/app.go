// Package app provides the high-level operations shared by the CLI
// runners and the TUI. It wraps the store, the session reference date
// and the drag register so presentation layers stay thin.
package app

import (
	"errors"
	"time"

	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/drag"
	"github.com/Sma11zen/taskcalendar/pkg/store"
	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

var errNoStore = errors.New("app: no store configured")

// Service exposes mutation and query entry points over one store.
// Today is computed once at startup and never re-evaluated, so a
// session running across midnight keeps its original reference date.
type Service struct {
	Store *store.Store
	Today time.Time

	Drag drag.Register
}

// New builds a service anchored on the current wall-clock date.
func New(s *store.Store) *Service {
	return &Service{Store: s, Today: time.Now()}
}

// TodayKey is the session's reference date key.
func (s *Service) TodayKey() string {
	return datekey.Format(s.Today)
}

// Tasks snapshots the collection.
func (s *Service) Tasks() []*task.Task {
	if s.Store == nil {
		return nil
	}
	return s.Store.Tasks()
}

// Add creates a task through the quick-add or modal path.
func (s *Service) Add(title, date string, priority task.Priority) (*task.Task, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Create(title, date, priority), nil
}

// Edit merges partial fields into the task.
func (s *Service) Edit(id int64, u task.Update) {
	if s.Store == nil {
		return
	}
	s.Store.Update(id, u)
}

// Remove deletes the task.
func (s *Service) Remove(id int64) {
	if s.Store == nil {
		return
	}
	s.Store.Delete(id)
}

// Cycle advances the task status one step.
func (s *Service) Cycle(id int64) {
	if s.Store == nil {
		return
	}
	s.Store.CycleStatus(id)
}

// Assign binds a task to a date directly, bypassing the drag register.
// Hour may be drag.NoHour to leave the task time untouched.
func (s *Service) Assign(id int64, dateKey string, hour int) {
	if s.Store == nil {
		return
	}
	u := task.Update{Date: &dateKey}
	if hour != drag.NoHour {
		clock := datekey.ClockForHour(hour)
		u.Time = &clock
	}
	s.Store.Update(id, u)
}

// Unassign clears the task's date but keeps its time, so dropping the
// task back onto a date restores the original hour.
func (s *Service) Unassign(id int64) {
	if s.Store == nil {
		return
	}
	empty := ""
	s.Store.Update(id, task.Update{Date: &empty})
}

// BeginDrag puts a task id in the register.
func (s *Service) BeginDrag(id int64) {
	s.Drag.Begin(id)
}

// DropOn completes the pending drag onto a date and optional hour.
func (s *Service) DropOn(dateKey string, hour int) {
	if s.Store == nil {
		s.Drag.Cancel()
		return
	}
	s.Drag.Drop(s.Store, dateKey, hour)
}

// CancelDrag discards the pending drag.
func (s *Service) CancelDrag() {
	s.Drag.Cancel()
}

// Bucket derives one named bucket against the session reference date.
func (s *Service) Bucket(kind views.Kind) []*task.Task {
	return views.Bucket(kind, s.Tasks(), s.TodayKey())
}

// Sections derives all filtered sections in display order.
func (s *Service) Sections(f views.Filter) []views.Section {
	return views.Sections(s.Tasks(), s.TodayKey(), f)
}

// ForDate returns the tasks scheduled on a date key.
func (s *Service) ForDate(dateKey string) []*task.Task {
	return views.ForDate(s.Tasks(), dateKey)
}
