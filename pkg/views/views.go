// Package views derives every task bucket the dashboard shows. All
// functions are pure over the collection snapshot, the session's
// today key and the active filter, so they can be recomputed on every
// state change.
package views

import (
	"sort"
	"strings"

	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/task"
)

// Kind names a derived bucket.
type Kind string

const (
	KindAll         Kind = "all"
	KindOverdue     Kind = "overdue"
	KindToday       Kind = "today"
	KindUnscheduled Kind = "unscheduled"
	KindUpcoming    Kind = "upcoming"
	KindCompleted   Kind = "completed"
)

// Kinds lists the buckets in display order.
func Kinds() []Kind {
	return []Kind{KindAll, KindOverdue, KindToday, KindUnscheduled, KindUpcoming, KindCompleted}
}

// ParseKind resolves a bucket name or alias.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return KindAll, true
	case "overdue", "late":
		return KindOverdue, true
	case "today":
		return KindToday, true
	case "unscheduled", "inbox", "someday":
		return KindUnscheduled, true
	case "upcoming", "next":
		return KindUpcoming, true
	case "completed", "done":
		return KindCompleted, true
	}
	return KindAll, false
}

// Title is the section heading shown for the bucket.
func (k Kind) Title() string {
	switch k {
	case KindAll:
		return "All Tasks"
	case KindOverdue:
		return "Overdue"
	case KindToday:
		return "Today"
	case KindUnscheduled:
		return "Unscheduled"
	case KindUpcoming:
		return "Upcoming"
	case KindCompleted:
		return "Completed"
	}
	return string(k)
}

// Icon is the section marker glyph.
func (k Kind) Icon() string {
	switch k {
	case KindAll:
		return "▤"
	case KindOverdue:
		return "!"
	case KindToday:
		return "★"
	case KindUnscheduled:
		return "○"
	case KindUpcoming:
		return "→"
	case KindCompleted:
		return "✘"
	}
	return "·"
}

// Bucket derives the named bucket from the collection.
func Bucket(kind Kind, tasks []*task.Task, todayKey string) []*task.Task {
	switch kind {
	case KindOverdue:
		return Overdue(tasks, todayKey)
	case KindToday:
		return Today(tasks, todayKey)
	case KindUnscheduled:
		return Unscheduled(tasks)
	case KindUpcoming:
		return Upcoming(tasks, todayKey)
	case KindCompleted:
		return Completed(tasks)
	default:
		return All(tasks)
	}
}

// Unscheduled holds undated tasks that are not done.
func Unscheduled(tasks []*task.Task) []*task.Task {
	return filter(tasks, func(t *task.Task) bool {
		return t.Date == "" && t.Status != task.StatusDone
	})
}

// Today holds tasks dated today and not done.
func Today(tasks []*task.Task, todayKey string) []*task.Task {
	return filter(tasks, func(t *task.Task) bool {
		return t.Date == todayKey && t.Status != task.StatusDone
	})
}

// Upcoming holds not-done tasks dated after today, ascending by date.
func Upcoming(tasks []*task.Task, todayKey string) []*task.Task {
	out := filter(tasks, func(t *task.Task) bool {
		return t.Date != "" && t.Date > todayKey && t.Status != task.StatusDone
	})
	sortByDate(out)
	return out
}

// Overdue holds not-done tasks dated before today, ascending by date.
func Overdue(tasks []*task.Task, todayKey string) []*task.Task {
	out := filter(tasks, func(t *task.Task) bool {
		return t.OverdueOn(todayKey)
	})
	sortByDate(out)
	return out
}

// Completed holds every done task regardless of date.
func Completed(tasks []*task.Task) []*task.Task {
	return filter(tasks, func(t *task.Task) bool {
		return t.Status == task.StatusDone
	})
}

// All holds every task: dated tasks first ascending by date, then
// undated tasks descending by priority.
func All(tasks []*task.Task) []*task.Task {
	out := make([]*task.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Date != "" && b.Date != "":
			return a.Date < b.Date
		case a.Date != "":
			return true
		case b.Date != "":
			return false
		default:
			return a.Priority > b.Priority
		}
	})
	return out
}

// Category is the exclusive single-selection filter pill.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryHigh       Category = "high"
	CategoryInProgress Category = "inprogress"
	CategoryOverdue    Category = "overdue"
)

// Categories lists the pills in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryHigh, CategoryInProgress, CategoryOverdue}
}

// ParseCategory resolves a filter pill name.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return CategoryAll, true
	case "high", "high-priority":
		return CategoryHigh, true
	case "inprogress", "in-progress":
		return CategoryInProgress, true
	case "overdue":
		return CategoryOverdue, true
	}
	return CategoryAll, false
}

func (c Category) Label() string {
	switch c {
	case CategoryHigh:
		return "High Priority"
	case CategoryInProgress:
		return "In Progress"
	case CategoryOverdue:
		return "Overdue"
	default:
		return "All"
	}
}

// Filter composes the free-text search with the category pill. The
// search narrows first, then the category narrows the result.
type Filter struct {
	Search   string
	Category Category
}

// Apply narrows tasks by the filter.
func (f Filter) Apply(tasks []*task.Task, todayKey string) []*task.Task {
	out := tasks
	if q := strings.TrimSpace(f.Search); q != "" {
		q = strings.ToLower(q)
		out = filter(out, func(t *task.Task) bool {
			return strings.Contains(strings.ToLower(t.Title), q)
		})
	}
	switch f.Category {
	case CategoryHigh:
		out = filter(out, func(t *task.Task) bool { return t.Priority == task.PriorityHigh })
	case CategoryInProgress:
		out = filter(out, func(t *task.Task) bool { return t.Status == task.StatusInProgress })
	case CategoryOverdue:
		out = filter(out, func(t *task.Task) bool { return t.OverdueOn(todayKey) })
	}
	return out
}

// HideEmpty reports whether a section with no filtered tasks should be
// hidden outright. Under a non-All category filter an empty section
// disappears; under All it stays visible with an empty-state hint so
// the user can tell "genuinely empty" from "filtered away".
func (f Filter) HideEmpty() bool {
	return f.Category != "" && f.Category != CategoryAll
}

// Section is a derived, filtered bucket ready for display.
type Section struct {
	Kind  Kind
	Tasks []*task.Task
}

// Sections derives all buckets in display order, applies the filter to
// each, and drops the sections the empty-state policy hides.
func Sections(tasks []*task.Task, todayKey string, f Filter) []Section {
	out := make([]Section, 0, len(Kinds()))
	for _, kind := range Kinds() {
		filtered := f.Apply(Bucket(kind, tasks, todayKey), todayKey)
		if len(filtered) == 0 && f.HideEmpty() {
			continue
		}
		out = append(out, Section{Kind: kind, Tasks: filtered})
	}
	return out
}

// ForDate returns tasks scheduled on the key, in collection order.
func ForDate(tasks []*task.Task, dateKey string) []*task.Task {
	return filter(tasks, func(t *task.Task) bool { return t.Date == dateKey })
}

// ForHour returns tasks on the date whose time falls in the hour. A
// task with no time matches only hour 0 here; the day view's strict
// rows use WithoutTime instead and never see such tasks.
func ForHour(tasks []*task.Task, dateKey string, hour int) []*task.Task {
	return filter(tasks, func(t *task.Task) bool {
		if t.Date != dateKey {
			return false
		}
		if t.Time == "" {
			return hour == 0
		}
		return datekey.HourOf(t.Time) == hour
	})
}

// AtHour returns tasks on the date carrying a time in the hour,
// excluding time-less tasks entirely. This feeds the day view's hour
// rows.
func AtHour(tasks []*task.Task, dateKey string, hour int) []*task.Task {
	return filter(tasks, func(t *task.Task) bool {
		return t.Date == dateKey && t.Time != "" && datekey.HourOf(t.Time) == hour
	})
}

// WithoutTime returns tasks on the date with no time at all, feeding
// the day view's all-day row.
func WithoutTime(tasks []*task.Task, dateKey string) []*task.Task {
	return filter(tasks, func(t *task.Task) bool {
		return t.Date == dateKey && t.Time == ""
	})
}

// Active counts tasks that are not done.
func Active(tasks []*task.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status != task.StatusDone {
			n++
		}
	}
	return n
}

func filter(tasks []*task.Task, keep func(*task.Task) bool) []*task.Task {
	out := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func sortByDate(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Date < tasks[j].Date
	})
}
