// Package tui hosts the Bubble Tea dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/calendar"
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/drag"
	"github.com/Sma11zen/taskcalendar/pkg/runner/tui/theme"
	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeSearch
	modeHelp
)

const (
	focusTasks = iota
	focusCalendar
)

// allDayRow is the hour-cursor position above hour 0 in the day view.
const allDayRow = -1

// Model contains all ephemeral dashboard state. Everything here
// resets when the program exits; only the task collection persists.
type Model struct {
	svc *app.Service
	nav *calendar.Navigator
	th  theme.Theme

	mode  mode
	focus int

	filter    views.Filter
	collapsed map[views.Kind]bool
	sections  []views.Section

	// cursor in the sections pane; taskIdx == -1 sits on the header
	secIdx  int
	taskIdx int

	// expanded task detail, 0 = none
	expandedID int64

	// calendar cursor date and the day view hour row
	sel     time.Time
	hourRow int

	input  textinput.Model
	status string

	termWidth  int
	termHeight int
}

// New builds the dashboard model around a service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a task..."
	ti.CharLimit = 256
	ti.Prompt = ""

	today := time.Now()
	if svc != nil {
		today = svc.Today
	}

	collapsed := make(map[views.Kind]bool, len(views.Kinds()))
	for _, k := range views.Kinds() {
		collapsed[k] = true
	}

	m := Model{
		svc:       svc,
		nav:       calendar.NewNavigator(today),
		th:        theme.Default(),
		filter:    views.Filter{Category: views.CategoryAll},
		collapsed: collapsed,
		taskIdx:   -1,
		sel:       datekey.Midnight(today),
		hourRow:   allDayRow,
		input:     ti,
		status:    "h/l panes · j/k move · o add · x status · g pick up · enter drop/expand · ? help",
	}
	m.refresh()
	return m
}

// Init performs no asynchronous work; the store is already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the derived sections and clamps the cursor. A
// deleted task also loses its expanded detail here.
func (m *Model) refresh() {
	if m.svc == nil {
		m.sections = nil
		return
	}
	m.sections = m.svc.Sections(m.filter)
	if m.secIdx >= len(m.sections) {
		m.secIdx = len(m.sections) - 1
	}
	if m.secIdx < 0 {
		m.secIdx = 0
	}
	m.clampTask()
	if m.expandedID != 0 {
		if _, ok := m.svc.Store.Get(m.expandedID); !ok {
			m.expandedID = 0
		}
	}
}

func (m *Model) clampTask() {
	if len(m.sections) == 0 {
		m.taskIdx = -1
		return
	}
	sec := m.sections[m.secIdx]
	if m.collapsed[sec.Kind] || len(sec.Tasks) == 0 {
		m.taskIdx = -1
		return
	}
	if m.taskIdx >= len(sec.Tasks) {
		m.taskIdx = len(sec.Tasks) - 1
	}
}

// currentTask returns the task under the cursor, if any.
func (m *Model) currentTask() *task.Task {
	if len(m.sections) == 0 || m.taskIdx < 0 {
		return nil
	}
	sec := m.sections[m.secIdx]
	if m.taskIdx >= len(sec.Tasks) {
		return nil
	}
	return sec.Tasks[m.taskIdx]
}

// moveCursor walks the sections pane: header rows, then task rows of
// expanded sections.
func (m *Model) moveCursor(delta int) {
	if len(m.sections) == 0 {
		return
	}
	for steps := delta; steps != 0; {
		if steps > 0 {
			sec := m.sections[m.secIdx]
			open := !m.collapsed[sec.Kind]
			if open && m.taskIdx < len(sec.Tasks)-1 {
				m.taskIdx++
			} else if m.secIdx < len(m.sections)-1 {
				m.secIdx++
				m.taskIdx = -1
			}
			steps--
		} else {
			if m.taskIdx >= 0 {
				m.taskIdx--
			} else if m.secIdx > 0 {
				m.secIdx--
				prev := m.sections[m.secIdx]
				if !m.collapsed[prev.Kind] && len(prev.Tasks) > 0 {
					m.taskIdx = len(prev.Tasks) - 1
				} else {
					m.taskIdx = -1
				}
			}
			steps++
		}
	}
}

// moveSelection shifts the calendar cursor by days, dragging the
// month view along when the cursor crosses a month boundary.
func (m *Model) moveSelection(days int) {
	m.sel = m.sel.AddDate(0, 0, days)
	m.nav.Select(datekey.Format(m.sel))
	if m.nav.Mode() == calendar.ModeMonth {
		m.nav.SetYear(m.sel.Year())
		m.nav.SetMonth(m.sel.Month())
	} else {
		m.nav.SetAnchor(m.sel)
	}
}

func (m *Model) cycleCategory() {
	cats := views.Categories()
	for i, c := range cats {
		if c == m.filter.Category {
			m.filter.Category = cats[(i+1)%len(cats)]
			m.status = "Filter: " + m.filter.Category.Label()
			m.refresh()
			return
		}
	}
	m.filter.Category = views.CategoryAll
	m.refresh()
}

// dropTarget is where a put-down lands: the selected date, plus the
// hour row in day mode.
func (m *Model) dropTarget() (string, int) {
	if m.nav.Mode() == calendar.ModeDay && m.hourRow != allDayRow {
		return datekey.Format(m.nav.Anchor()), m.hourRow
	}
	return datekey.Format(m.sel), drag.NoHour
}

// Update handles key presses and window sizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeInsert:
			return m.updateInsert(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeNormal:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateInsert(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		date := ""
		if m.focus == focusCalendar {
			date = datekey.Format(m.sel)
		}
		if t, _ := m.svc.Add(title, date, task.PriorityMedium); t != nil {
			m.status = "Added"
		} else {
			m.status = "A task needs a title"
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.refresh()
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.status = "Add cancelled"
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		if msg.String() == "esc" {
			m.input.SetValue("")
		}
		m.filter.Search = m.input.Value()
		m.mode = modeNormal
		m.input.Blur()
		m.refresh()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.filter.Search = m.input.Value()
		m.refresh()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	// pane focus
	case "h", "left":
		m.focus = focusTasks
	case "l", "right":
		m.focus = focusCalendar

	// movement
	case "j", "down":
		if m.focus == focusTasks {
			m.moveCursor(1)
		} else if m.nav.Mode() == calendar.ModeDay {
			if m.hourRow < 23 {
				m.hourRow++
			}
		} else {
			m.moveSelection(7)
		}
	case "k", "up":
		if m.focus == focusTasks {
			m.moveCursor(-1)
		} else if m.nav.Mode() == calendar.ModeDay {
			if m.hourRow > allDayRow {
				m.hourRow--
			}
		} else {
			m.moveSelection(-7)
		}
	case "H":
		if m.focus == focusCalendar && m.nav.Mode() != calendar.ModeDay {
			m.moveSelection(-1)
		}
	case "L":
		if m.focus == focusCalendar && m.nav.Mode() != calendar.ModeDay {
			m.moveSelection(1)
		}

	// period navigation
	case "[", "pgup":
		m.nav.Prev()
	case "]", "pgdown":
		m.nav.Next()

	// calendar modes
	case "m":
		m.nav.SetMode(calendar.ModeMonth)
	case "w":
		m.nav.SetMode(calendar.ModeWeek)
	case "D":
		m.nav.SetMode(calendar.ModeDay)
		m.nav.SetAnchor(m.sel)
	case "t":
		m.nav.JumpToToday()
		m.sel = m.nav.Today()
		m.status = "Today"

	// sections
	case "enter", "space":
		if m.focus == focusTasks {
			if t := m.currentTask(); t != nil {
				if m.expandedID == t.ID {
					m.expandedID = 0
				} else {
					m.expandedID = t.ID
				}
			} else if len(m.sections) > 0 {
				kind := m.sections[m.secIdx].Kind
				m.collapsed[kind] = !m.collapsed[kind]
				m.clampTask()
			}
		} else if _, dragging := m.svc.Drag.Dragging(); dragging {
			date, hour := m.dropTarget()
			m.svc.DropOn(date, hour)
			m.status = "Dropped on " + date
			m.refresh()
		} else {
			m.nav.Select(datekey.Format(m.sel))
		}

	// mutations
	case "o":
		m.mode = modeInsert
		m.input.Placeholder = "Add a task..."
		if m.focus == focusCalendar {
			m.input.Placeholder = "Add task for " + datekey.Format(m.sel)
		}
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, tea.Batch(cmd, textinput.Blink)
	case "/":
		m.mode = modeSearch
		m.input.Placeholder = "Search tasks..."
		m.input.SetValue(m.filter.Search)
		cmd := m.input.Focus()
		return m, tea.Batch(cmd, textinput.Blink)
	case "f":
		m.cycleCategory()
	case "x":
		if t := m.currentTask(); t != nil {
			m.svc.Cycle(t.ID)
			m.status = "Status cycled"
			m.refresh()
		}
	case "d":
		if t := m.currentTask(); t != nil {
			m.svc.Remove(t.ID)
			m.status = "Deleted"
			m.refresh()
		}
	case "u":
		if t := m.currentTask(); t != nil {
			m.svc.Unassign(t.ID)
			m.status = "Unscheduled"
			m.refresh()
		}

	// drag
	case "g":
		if t := m.currentTask(); t != nil {
			m.svc.BeginDrag(t.ID)
			m.focus = focusCalendar
			m.status = fmt.Sprintf("Dragging %q; enter drops, esc cancels", t.Title)
		}
	case "esc":
		if _, dragging := m.svc.Drag.Dragging(); dragging {
			m.svc.CancelDrag()
			m.status = "Drag cancelled"
		} else if m.expandedID != 0 {
			m.expandedID = 0
		}

	case "?":
		m.mode = modeHelp
	}
	return m, nil
}

// View renders the sections pane, the calendar pane and the status
// line.
func (m Model) View() string {
	left := m.viewSections()
	right := m.viewCalendar()
	gap := lipgloss.NewStyle().Padding(0, 1).Render

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	switch m.mode {
	case modeInsert:
		body += "\n\nAdd: " + m.input.View()
	case modeSearch:
		body += "\n\n/" + m.input.View()
	case modeHelp:
		help := "Keys: h/l panes · j/k move · H/L day step · [/] prev/next · m/w/D views · t today · o add · / search · f filter · x status · d delete · u unschedule · g pick up · enter drop · q quit"
		body += "\n\n" + m.th.Hint.Render(help)
	}

	status := m.status
	if id, dragging := m.svc.Drag.Dragging(); dragging {
		if t, ok := m.svc.Store.Get(id); ok {
			status = m.th.Dragging.Render(fmt.Sprintf("⇢ %s", t.Title)) + "  " + status
		}
	}
	if m.filter.Category != views.CategoryAll || m.filter.Search != "" {
		status += m.th.Badge.Render(fmt.Sprintf("  [%s %q]", m.filter.Category.Label(), m.filter.Search))
	}
	if m.termWidth > 0 {
		status = truncate.StringWithTail(status, uint(m.termWidth), "…")
	}

	return body + "\n\n" + m.th.Status.Render(status)
}

func (m Model) viewSections() string {
	var b strings.Builder
	active := views.Active(m.svc.Tasks())
	b.WriteString(m.th.PaneTitle.Render("Tasks"))
	b.WriteString(m.th.SectionCount.Render(fmt.Sprintf("  %d active", active)))
	b.WriteString("\n\n")

	for i, sec := range m.sections {
		chevron := "▸"
		if !m.collapsed[sec.Kind] {
			chevron = "▾"
		}
		header := fmt.Sprintf("%s %s %s", chevron, sec.Kind.Icon(), sec.Kind.Title())
		line := m.th.SectionTitle.Render(header) +
			m.th.SectionCount.Render(fmt.Sprintf(" %d", len(sec.Tasks)))
		if m.focus == focusTasks && i == m.secIdx && m.taskIdx < 0 {
			line = m.th.Cursor.Render(header) +
				m.th.SectionCount.Render(fmt.Sprintf(" %d", len(sec.Tasks)))
		}
		b.WriteString(line)
		b.WriteString("\n")

		if m.collapsed[sec.Kind] {
			continue
		}
		if len(sec.Tasks) == 0 {
			b.WriteString(m.th.Hint.Render("   no tasks"))
			b.WriteString("\n")
			continue
		}
		for j, t := range sec.Tasks {
			b.WriteString(m.viewTask(t, m.focus == focusTasks && i == m.secIdx && j == m.taskIdx))
		}
	}
	return b.String()
}

func (m Model) viewTask(t *task.Task, onCursor bool) string {
	todayKey := m.svc.TodayKey()

	style := m.th.Task
	switch {
	case t.Status == task.StatusDone:
		style = m.th.TaskDone
	case t.OverdueOn(todayKey):
		style = m.th.TaskOverdue
	}

	line := fmt.Sprintf("  %s %s", statusGlyph(t.Status), t.Title)
	if onCursor {
		line = m.th.Cursor.Render(line)
	} else {
		line = style.Render(line)
	}

	badges := []string{t.Priority.String()}
	if t.OverdueOn(todayKey) {
		badges = append(badges, "overdue")
	}
	if t.Date != "" {
		badges = append(badges, t.Date)
	}
	if t.Time != "" {
		badges = append(badges, t.Time)
	}
	line += m.th.Badge.Render("  " + strings.Join(badges, " · "))

	out := line + "\n"
	if m.expandedID == t.ID {
		detail := fmt.Sprintf("    %s · %s", t.Status.Label(), t.Priority)
		if t.Description != "" {
			detail += "\n    " + t.Description
		}
		out += m.th.Hint.Render(detail) + "\n"
	}
	return out
}

func (m Model) viewCalendar() string {
	var b strings.Builder
	b.WriteString(m.th.PaneTitle.Render("Calendar"))
	b.WriteString(m.th.SectionCount.Render("  " + m.nav.Label()))
	b.WriteString("\n\n")

	switch m.nav.Mode() {
	case calendar.ModeWeek:
		b.WriteString(m.viewWeek())
	case calendar.ModeDay:
		b.WriteString(m.viewDay())
	default:
		b.WriteString(m.viewMonth())
	}

	// selected date detail, the drop/assign target
	selKey := datekey.Format(m.sel)
	b.WriteString("\n")
	b.WriteString(m.th.SectionTitle.Render(m.sel.Format("Monday, Jan 2")))
	b.WriteString("\n")
	selected := m.svc.ForDate(selKey)
	if len(selected) == 0 {
		b.WriteString(m.th.Hint.Render("no tasks for this date"))
		b.WriteString("\n")
	}
	for _, t := range selected {
		line := fmt.Sprintf("%s %s", statusGlyph(t.Status), t.Title)
		if t.Time != "" {
			line += m.th.Badge.Render(" " + t.Time)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewMonth() string {
	tasks := m.svc.Tasks()
	todayKey := m.svc.TodayKey()
	selKey := datekey.Format(m.sel)

	var days []calendar.Day
	for _, cell := range calendar.MonthCells(m.nav.Year(), m.nav.Month()) {
		if cell.Day == 0 {
			continue
		}
		days = append(days, calendar.Day{
			Day:        cell.Day,
			HasTasks:   len(views.ForDate(tasks, cell.Key)) > 0,
			IsToday:    cell.Key == todayKey,
			IsSelected: cell.Key == selKey,
		})
	}

	return calendar.Render(m.nav.Year(), m.nav.Month(), days, calendar.Options{
		HeaderStyle:   m.th.CalHeader,
		EmptyStyle:    m.th.CalEmpty,
		TaskStyle:     m.th.CalBusy,
		TodayStyle:    m.th.CalToday,
		SelectedStyle: m.th.CalSelected,
		ShowHeader:    true,
	})
}

func (m Model) viewWeek() string {
	tasks := m.svc.Tasks()
	todayKey := m.svc.TodayKey()
	selKey := datekey.Format(m.sel)

	var b strings.Builder
	for _, day := range m.nav.WeekDays() {
		key := datekey.Format(day)
		heading := day.Format("Mon Jan 2")
		switch {
		case key == selKey:
			heading = m.th.CalSelected.Render(heading)
		case key == todayKey:
			heading = m.th.CalToday.Render(heading)
		}
		b.WriteString(heading)
		b.WriteString("\n")

		dayTasks := views.ForDate(tasks, key)
		if len(dayTasks) == 0 {
			b.WriteString(m.th.Hint.Render("  ·"))
			b.WriteString("\n")
			continue
		}
		for _, t := range dayTasks {
			line := fmt.Sprintf("  %s %s", statusGlyph(t.Status), t.Title)
			if t.Time != "" {
				line += m.th.Badge.Render(" " + t.Time)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewDay() string {
	tasks := m.svc.Tasks()
	key := datekey.Format(m.nav.Anchor())

	var b strings.Builder

	label := "All Day"
	if m.focus == focusCalendar && m.hourRow == allDayRow {
		label = m.th.Cursor.Render(label)
	} else {
		label = m.th.CalHeader.Render(label)
	}
	b.WriteString(label)
	for _, t := range views.WithoutTime(tasks, key) {
		b.WriteString(fmt.Sprintf("  %s %s", statusGlyph(t.Status), t.Title))
	}
	b.WriteString("\n")

	for _, hour := range calendar.Hours() {
		hourTasks := views.AtHour(tasks, key, hour)
		onCursor := m.focus == focusCalendar && m.hourRow == hour
		if len(hourTasks) == 0 && !onCursor {
			continue
		}
		label := fmt.Sprintf("%7s", datekey.HourLabel(hour))
		if onCursor {
			label = m.th.Cursor.Render(label)
		} else {
			label = m.th.CalHeader.Render(label)
		}
		b.WriteString(label)
		for _, t := range hourTasks {
			b.WriteString(fmt.Sprintf("  %s %s %s", statusGlyph(t.Status), t.Time, t.Title))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func statusGlyph(s task.Status) string {
	switch s {
	case task.StatusInProgress:
		return "◐"
	case task.StatusDone:
		return "✘"
	default:
		return "●"
	}
}

// Run launches the dashboard.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
