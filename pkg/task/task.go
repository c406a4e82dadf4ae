// Package task defines the task entity and its enumerations.
package task

import (
	"fmt"
	"strings"
)

// Priority orders tasks by importance. The zero value is not valid;
// use PriorityMedium as the default.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// ParsePriority accepts the level name or its numeric form.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "1":
		return PriorityLow, nil
	case "medium", "med", "2", "":
		return PriorityMedium, nil
	case "high", "3":
		return PriorityHigh, nil
	}
	return PriorityMedium, fmt.Errorf("task: unknown priority %q", s)
}

// Status tracks a task through its todo → inprogress → done cycle.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

// Next advances the status, wrapping done back to todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return "To Do"
	}
}

// ParseStatus accepts a status tag or its label.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to do", "":
		return StatusTodo, nil
	case "inprogress", "in progress", "doing":
		return StatusInProgress, nil
	case "done", "completed":
		return StatusDone, nil
	}
	return StatusTodo, fmt.Errorf("task: unknown status %q", s)
}

// Task is the sole persisted entity. Date is a datekey.Layout string or
// empty for unscheduled; Time is an HH:MM wall-clock string or empty.
// Time without Date is tolerated in storage but never reaches a
// time-bucketed view.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date,omitempty"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	Time        string   `json:"time,omitempty"`
	Description string   `json:"description,omitempty"`
}

// New builds an unsaved task with defaults applied. The caller owns id
// assignment; a blank title after trimming returns nil.
func New(title, date string, priority Priority) *Task {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if priority < PriorityLow || priority > PriorityHigh {
		priority = PriorityMedium
	}
	return &Task{
		Title:    title,
		Date:     date,
		Priority: priority,
		Status:   StatusTodo,
	}
}

// Scheduled reports whether the task is bound to a date.
func (t *Task) Scheduled() bool {
	return t.Date != ""
}

// OverdueOn reports whether the task is scheduled strictly before
// todayKey and not yet done. Date keys compare lexicographically in
// calendar order.
func (t *Task) OverdueOn(todayKey string) bool {
	return t.Date != "" && t.Date < todayKey && t.Status != StatusDone
}

// Update carries a partial mutation. Nil fields are left unchanged; a
// pointer to the zero value clears the field where clearing is
// meaningful (Date, Time, Description).
type Update struct {
	Title       *string
	Date        *string
	Priority    *Priority
	Status      *Status
	Time        *string
	Description *string
}

// Apply merges the update into the task.
func (t *Task) Apply(u Update) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Time != nil {
		t.Time = *u.Time
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
}
