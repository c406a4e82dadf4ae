package tui

import (
	"testing"
	"time"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/calendar"
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/drag"
	"github.com/Sma11zen/taskcalendar/pkg/store"
	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

func testService(t *testing.T) *app.Service {
	t.Helper()
	svc := &app.Service{
		Store: store.New(nil),
		Today: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local),
	}
	if _, err := svc.Add("late taxes", "2024-03-01", task.PriorityHigh); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Add("standup", "2024-03-10", task.PriorityMedium); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Add("someday", "", task.PriorityLow); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return svc
}

func TestCursorWalksCollapsedHeaders(t *testing.T) {
	m := New(testService(t))

	if m.secIdx != 0 || m.taskIdx != -1 {
		t.Fatalf("cursor should start on the first header: %d %d", m.secIdx, m.taskIdx)
	}

	m.moveCursor(1)
	if m.secIdx != 1 || m.taskIdx != -1 {
		t.Fatalf("collapsed sections step header to header: %d %d", m.secIdx, m.taskIdx)
	}

	m.moveCursor(-1)
	if m.secIdx != 0 || m.taskIdx != -1 {
		t.Fatalf("cursor should walk back up: %d %d", m.secIdx, m.taskIdx)
	}

	// Moving past the last header stays put.
	for i := 0; i < 20; i++ {
		m.moveCursor(1)
	}
	if m.secIdx != len(m.sections)-1 {
		t.Fatalf("cursor ran off the end: %d", m.secIdx)
	}
}

func TestCursorEntersExpandedSection(t *testing.T) {
	m := New(testService(t))
	m.collapsed[views.KindAll] = false

	m.moveCursor(1)
	if m.secIdx != 0 || m.taskIdx != 0 {
		t.Fatalf("cursor should enter the expanded section: %d %d", m.secIdx, m.taskIdx)
	}
	if m.currentTask() == nil {
		t.Fatalf("expected a task under the cursor")
	}

	// Three seeded tasks, then the next header.
	m.moveCursor(1)
	m.moveCursor(1)
	m.moveCursor(1)
	if m.secIdx != 1 || m.taskIdx != -1 {
		t.Fatalf("cursor should land on the next header: %d %d", m.secIdx, m.taskIdx)
	}
}

func TestRefreshClampsCursorAfterDelete(t *testing.T) {
	svc := testService(t)
	m := New(svc)
	m.collapsed[views.KindAll] = false
	m.refresh()

	// Park the cursor on the last task of the expanded section.
	m.moveCursor(3)
	target := m.currentTask()
	if target == nil {
		t.Fatalf("expected a task under the cursor")
	}

	m.expandedID = target.ID
	svc.Remove(target.ID)
	m.refresh()

	if m.expandedID != 0 {
		t.Fatalf("a removed task must lose its expanded detail")
	}
	if m.taskIdx >= len(m.sections[m.secIdx].Tasks) {
		t.Fatalf("cursor not clamped: %d of %d", m.taskIdx, len(m.sections[m.secIdx].Tasks))
	}
}

func TestMoveSelectionFollowsMonth(t *testing.T) {
	m := New(testService(t))

	// Seven steps back from March 10 crosses into the previous week;
	// five weeks back leaves the month entirely.
	for i := 0; i < 5; i++ {
		m.moveSelection(-7)
	}
	if got := datekey.Format(m.sel); got != "2024-02-04" {
		t.Fatalf("unexpected selection: %s", got)
	}
	if m.nav.Month() != time.February || m.nav.Year() != 2024 {
		t.Fatalf("month view should follow the selection: %s %d", m.nav.Month(), m.nav.Year())
	}
	if m.nav.Selected() != "2024-02-04" {
		t.Fatalf("navigator selection out of sync: %q", m.nav.Selected())
	}
}

func TestDropTargetByMode(t *testing.T) {
	m := New(testService(t))

	date, hour := m.dropTarget()
	if date != "2024-03-10" || hour != drag.NoHour {
		t.Fatalf("month drops land on the selected date with no hour: %s %d", date, hour)
	}

	m.nav.SetMode(calendar.ModeDay)
	m.hourRow = 14
	date, hour = m.dropTarget()
	if date != datekey.Format(m.nav.Anchor()) || hour != 14 {
		t.Fatalf("day drops carry the hour row: %s %d", date, hour)
	}

	m.hourRow = allDayRow
	_, hour = m.dropTarget()
	if hour != drag.NoHour {
		t.Fatalf("the all-day row drops without an hour: %d", hour)
	}
}

func TestCycleCategoryNarrowsSections(t *testing.T) {
	m := New(testService(t))
	before := len(m.sections)

	m.cycleCategory()
	if m.filter.Category != views.CategoryHigh {
		t.Fatalf("expected the high pill next, got %q", m.filter.Category)
	}
	if len(m.sections) >= before {
		t.Fatalf("a narrowing pill should hide empty sections: %d", len(m.sections))
	}

	m.cycleCategory()
	m.cycleCategory()
	m.cycleCategory()
	if m.filter.Category != views.CategoryAll {
		t.Fatalf("pills should wrap back to All, got %q", m.filter.Category)
	}
	if len(m.sections) != before {
		t.Fatalf("All should restore every section: %d", len(m.sections))
	}
}
