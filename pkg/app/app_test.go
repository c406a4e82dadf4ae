package app

import (
	"testing"
	"time"

	"github.com/Sma11zen/taskcalendar/pkg/drag"
	"github.com/Sma11zen/taskcalendar/pkg/store"
	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

func testService() *Service {
	return &Service{
		Store: store.New(nil),
		Today: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local),
	}
}

func TestTodayKeyIsFixedForTheSession(t *testing.T) {
	svc := testService()
	if got := svc.TodayKey(); got != "2024-03-10" {
		t.Fatalf("unexpected today key: %q", got)
	}
}

func TestAddAndBuckets(t *testing.T) {
	svc := testService()

	late, err := svc.Add("late", "2024-03-01", task.PriorityHigh)
	if err != nil || late == nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add("today", "2024-03-10", task.PriorityMedium); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Add("someday", "", task.PriorityLow); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if got := svc.Bucket(views.KindOverdue); len(got) != 1 || got[0].Title != "late" {
		t.Fatalf("overdue bucket: %+v", got)
	}
	if got := svc.Bucket(views.KindToday); len(got) != 1 || got[0].Title != "today" {
		t.Fatalf("today bucket: %+v", got)
	}
	if got := svc.Bucket(views.KindUnscheduled); len(got) != 1 || got[0].Title != "someday" {
		t.Fatalf("unscheduled bucket: %+v", got)
	}
}

func TestAddBlankTitleCreatesNothing(t *testing.T) {
	svc := testService()
	created, err := svc.Add("   ", "", task.PriorityMedium)
	if err != nil {
		t.Fatalf("blank add should not error: %v", err)
	}
	if created != nil {
		t.Fatalf("blank add should create nothing: %+v", created)
	}
	if len(svc.Tasks()) != 0 {
		t.Fatalf("collection should stay empty")
	}
}

func TestAssignSetsDateAndOptionalHour(t *testing.T) {
	svc := testService()
	created, _ := svc.Add("move me", "", task.PriorityMedium)

	svc.Assign(created.ID, "2024-03-12", 14)
	got, _ := svc.Store.Get(created.ID)
	if got.Date != "2024-03-12" || got.Time != "14:00" {
		t.Fatalf("assign with hour: %+v", got)
	}

	svc.Assign(created.ID, "2024-03-13", drag.NoHour)
	got, _ = svc.Store.Get(created.ID)
	if got.Date != "2024-03-13" {
		t.Fatalf("assign without hour should move the date: %+v", got)
	}
	if got.Time != "14:00" {
		t.Fatalf("assign without hour must keep the time: %+v", got)
	}
}

func TestUnassignKeepsTime(t *testing.T) {
	svc := testService()
	created, _ := svc.Add("scheduled", "2024-03-12", task.PriorityMedium)
	svc.Assign(created.ID, "2024-03-12", 9)

	svc.Unassign(created.ID)
	got, _ := svc.Store.Get(created.ID)
	if got.Date != "" {
		t.Fatalf("unassign should clear the date: %+v", got)
	}
	if got.Time != "09:00" {
		t.Fatalf("unassign should keep the time for a later re-drop: %+v", got)
	}
}

func TestDragLifecycle(t *testing.T) {
	svc := testService()
	created, _ := svc.Add("drag me", "", task.PriorityMedium)

	svc.BeginDrag(created.ID)
	if id, dragging := svc.Drag.Dragging(); !dragging || id != created.ID {
		t.Fatalf("drag not registered: %d %v", id, dragging)
	}

	svc.DropOn("2024-03-15", 9)
	got, _ := svc.Store.Get(created.ID)
	if got.Date != "2024-03-15" || got.Time != "09:00" {
		t.Fatalf("drop did not land: %+v", got)
	}
	if _, dragging := svc.Drag.Dragging(); dragging {
		t.Fatalf("register should clear after a drop")
	}
}

func TestCancelDrag(t *testing.T) {
	svc := testService()
	created, _ := svc.Add("drag me", "", task.PriorityMedium)

	svc.BeginDrag(created.ID)
	svc.CancelDrag()
	svc.DropOn("2024-03-15", 9)

	got, _ := svc.Store.Get(created.ID)
	if got.Date != "" {
		t.Fatalf("cancelled drag must not move the task: %+v", got)
	}
}

func TestSectionsAndForDate(t *testing.T) {
	svc := testService()
	svc.Add("late", "2024-03-01", task.PriorityHigh)
	svc.Add("today", "2024-03-10", task.PriorityMedium)

	secs := svc.Sections(views.Filter{Category: views.CategoryAll})
	if len(secs) != len(views.Kinds()) {
		t.Fatalf("expected every section under All, got %d", len(secs))
	}

	if got := svc.ForDate("2024-03-10"); len(got) != 1 || got[0].Title != "today" {
		t.Fatalf("ForDate: %+v", got)
	}
}

func TestCycleAndRemove(t *testing.T) {
	svc := testService()
	created, _ := svc.Add("work", "", task.PriorityMedium)

	svc.Cycle(created.ID)
	got, _ := svc.Store.Get(created.ID)
	if got.Status != task.StatusInProgress {
		t.Fatalf("cycle: %+v", got)
	}

	svc.Remove(created.ID)
	if _, ok := svc.Store.Get(created.ID); ok {
		t.Fatalf("remove failed")
	}

	// Mutating missing or removed ids stays silent.
	svc.Cycle(created.ID)
	svc.Remove(created.ID)
	svc.Unassign(created.ID)
}
