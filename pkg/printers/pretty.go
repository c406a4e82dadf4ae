// Package printers renders tasks and calendars for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

// PrettyPrint writes styled task sections to stdout.
type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("1709992800000  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined section heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// TitleWithCount prints a heading with the task tally appended.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Section prints a bucket's tasks as a table, or an empty-state hint.
func (pp *PrettyPrint) Section(todayKey string, tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" no tasks\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		cols := make([]interface{}, 0, 6)
		if pp.ShowID {
			cols = append(cols, y.Sprintf("%d", t.ID))
		}
		cols = append(cols, StatusGlyph(t.Status), pp.title(t, todayKey), priorityBadge(t.Priority), t.Date, t.Time)
		tbl.AddRow(cols...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Sections prints every visible section with counts.
func (pp *PrettyPrint) Sections(todayKey string, sections []views.Section) {
	for _, s := range sections {
		pp.TitleWithCount(fmt.Sprintf("%s %s", s.Kind.Icon(), s.Kind.Title()), len(s.Tasks))
		pp.Section(todayKey, s.Tasks...)
	}
}

func (pp *PrettyPrint) title(t *task.Task, todayKey string) string {
	switch {
	case t.Status == task.StatusDone:
		return color.New(color.Faint, color.CrossedOut).Sprint(t.Title)
	case t.OverdueOn(todayKey):
		return color.New(color.FgHiRed).Sprint(t.Title)
	default:
		return t.Title
	}
}

// StatusGlyph maps a status to its checkbox glyph.
func StatusGlyph(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return "◐"
	case task.StatusDone:
		return "✘"
	default:
		return "●"
	}
}

func priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return color.New(color.FgHiRed).Sprint(p.String())
	case task.PriorityLow:
		return color.New(color.Faint).Sprint(p.String())
	default:
		return p.String()
	}
}
