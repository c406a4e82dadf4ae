package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Day carries per-day metadata used when rendering the month grid.
type Day struct {
	Day        int
	HasTasks   bool
	IsToday    bool
	IsSelected bool
}

// Options controls the styling of the rendered month.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	TaskStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line month grid for the given year/month.
func Render(year int, month time.Month, days []Day, opts Options) string {
	cells := MonthCells(year, month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	rows := (len(cells) + 6) / 7
	for row := 0; row < rows; row++ {
		var cols []string
		for col := 0; col < 7; col++ {
			idx := row*7 + col
			if idx >= len(cells) || cells[idx].Day == 0 {
				cols = append(cols, opts.EmptyStyle.Render("  "))
				continue
			}
			cols = append(cols, renderDay(byDay[cells[idx].Day], cells[idx].Day, opts))
		}
		lines = append(lines, strings.Join(cols, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasTasks {
		style = opts.TaskStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
