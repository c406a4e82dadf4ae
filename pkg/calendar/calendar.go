// Package calendar tracks the displayed month/week/day and generates
// the grids the views render. It never touches task data.
package calendar

import (
	"fmt"
	"time"

	"github.com/Sma11zen/taskcalendar/pkg/datekey"
)

// Mode selects the calendar layout.
type Mode int

const (
	ModeMonth Mode = iota
	ModeWeek
	ModeDay
)

func (m Mode) String() string {
	switch m {
	case ModeWeek:
		return "week"
	case ModeDay:
		return "day"
	default:
		return "month"
	}
}

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "month", "":
		return ModeMonth, true
	case "week":
		return ModeWeek, true
	case "day":
		return ModeDay, true
	}
	return ModeMonth, false
}

// Hours enumerates the day view's 24 hour rows.
func Hours() []int {
	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}
	return hours
}

// Navigator is the calendar navigation state machine. The month view
// keeps its own year/month pair so month and year can be jumped
// independently; week and day views share the anchor date. Today is
// fixed at construction for the whole session.
type Navigator struct {
	mode  Mode
	year  int
	month time.Month

	anchor time.Time
	today  time.Time

	// selected is the currently picked date key, or empty.
	selected string
}

// NewNavigator anchors a navigator on the given reference date.
func NewNavigator(today time.Time) *Navigator {
	d := datekey.Midnight(today)
	return &Navigator{
		mode:   ModeMonth,
		year:   d.Year(),
		month:  d.Month(),
		anchor: d,
		today:  d,
	}
}

func (n *Navigator) Mode() Mode           { return n.mode }
func (n *Navigator) SetMode(m Mode)       { n.mode = m }
func (n *Navigator) Year() int            { return n.year }
func (n *Navigator) Month() time.Month    { return n.month }
func (n *Navigator) Anchor() time.Time    { return n.anchor }
func (n *Navigator) Today() time.Time     { return n.today }
func (n *Navigator) TodayKey() string     { return datekey.Format(n.today) }
func (n *Navigator) Selected() string     { return n.selected }
func (n *Navigator) Select(key string)    { n.selected = key }
func (n *Navigator) ClearSelection()      { n.selected = "" }

// Prev steps backward one month, week or day depending on the mode.
func (n *Navigator) Prev() {
	switch n.mode {
	case ModeWeek:
		n.anchor = n.anchor.AddDate(0, 0, -7)
	case ModeDay:
		n.anchor = n.anchor.AddDate(0, 0, -1)
	default:
		if n.month == time.January {
			n.month = time.December
			n.year--
		} else {
			n.month--
		}
	}
}

// Next steps forward one month, week or day depending on the mode.
func (n *Navigator) Next() {
	switch n.mode {
	case ModeWeek:
		n.anchor = n.anchor.AddDate(0, 0, 7)
	case ModeDay:
		n.anchor = n.anchor.AddDate(0, 0, 1)
	default:
		if n.month == time.December {
			n.month = time.January
			n.year++
		} else {
			n.month++
		}
	}
}

// SetMonth jumps the month view to the given month, keeping the year.
func (n *Navigator) SetMonth(m time.Month) {
	if m >= time.January && m <= time.December {
		n.month = m
	}
}

// SetYear jumps the month view to the given year, keeping the month.
func (n *Navigator) SetYear(y int) {
	n.year = y
}

// SetAnchor repoints the week/day anchor.
func (n *Navigator) SetAnchor(t time.Time) {
	n.anchor = datekey.Midnight(t)
}

// JumpToToday resets every view to the reference date and selects it,
// so a single keystroke both navigates and highlights today.
func (n *Navigator) JumpToToday() {
	n.year = n.today.Year()
	n.month = n.today.Month()
	n.anchor = n.today
	n.selected = datekey.Format(n.today)
}

// Cell is one month-grid slot. Day zero marks a leading placeholder
// for the partial first week.
type Cell struct {
	Day int
	Key string
}

// MonthCells emits the flat month grid: placeholders for the starting
// weekday offset, then days 1..N.
func (n *Navigator) MonthCells() []Cell {
	return MonthCells(n.year, n.month)
}

// MonthCells generates the grid for an arbitrary month.
func MonthCells(year int, month time.Month) []Cell {
	offset := int(datekey.StartingWeekday(year, month))
	days := datekey.DaysInMonth(year, month)
	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{
			Day: d,
			Key: datekey.Format(time.Date(year, month, d, 0, 0, 0, 0, time.Local)),
		})
	}
	return cells
}

// WeekDays emits the seven dates of the displayed week, Sunday first.
func (n *Navigator) WeekDays() []time.Time {
	start := datekey.WeekStart(n.anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthLabel is the month view heading, e.g. "March 2024".
func (n *Navigator) MonthLabel() string {
	return fmt.Sprintf("%s %d", n.month, n.year)
}

// WeekLabel is the week view heading, e.g. "Mar 10 - Mar 16, 2024".
func (n *Navigator) WeekLabel() string {
	days := n.WeekDays()
	first, last := days[0], days[6]
	return fmt.Sprintf("%s - %s", first.Format("Jan 2"), last.Format("Jan 2, 2006"))
}

// DayLabel is the day view heading, e.g. "Sunday, March 10, 2024".
func (n *Navigator) DayLabel() string {
	return n.anchor.Format("Monday, January 2, 2006")
}

// Label is the heading for the current mode.
func (n *Navigator) Label() string {
	switch n.mode {
	case ModeWeek:
		return n.WeekLabel()
	case ModeDay:
		return n.DayLabel()
	default:
		return n.MonthLabel()
	}
}
