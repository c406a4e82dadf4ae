// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the optional fields of the add path.
type TaskOptions struct {
	Date        string
	Clock       string
	Priority    string
	Description string
}

// AddTaskArgs wires the add flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Schedule the task on a date (YYYY-MM-DD).")
	cmd.Flags().StringVarP(&o.Clock, "time", "t", "",
		"Give the task a time of day (HH:MM).")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Task priority: low, medium or high.")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Freeform description.")
}

// FilterOptions captures the search and category filter flags.
type FilterOptions struct {
	Search   string
	Category string
	All      bool
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Keep only tasks whose title contains the text.")
	cmd.Flags().StringVarP(&o.Category, "filter", "f", "all",
		"Category filter: all, high, inprogress or overdue.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every section, not just one bucket.")
}

// IDOptions captures flags around task identifiers.
type IDOptions struct {
	ID     int64
	ShowID bool
}

// AddShowIDArgs registers the show-id flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show task ids.")
}

// CalendarOptions captures the calendar view flags.
type CalendarOptions struct {
	On    string
	Month int
	Year  int
	Hour  int
}

// AddCalendarArgs wires the calendar flags on the provided command.
func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.Flags().StringVar(&o.On, "on", "",
		"Anchor date (YYYY-MM-DD); defaults to today.")
	cmd.Flags().IntVar(&o.Month, "month", 0,
		"Jump the month view to a month (1-12).")
	cmd.Flags().IntVar(&o.Year, "year", 0,
		"Jump the month view to a year.")
}
