package task

import "testing"

func TestNewTrimsTitle(t *testing.T) {
	got := New("  Ship the release  ", "2024-03-10", PriorityHigh)
	if got == nil {
		t.Fatalf("expected a task")
	}
	if got.Title != "Ship the release" {
		t.Fatalf("title not trimmed: %q", got.Title)
	}
	if got.Status != StatusTodo {
		t.Fatalf("new tasks start as todo, got %q", got.Status)
	}
	if got.Date != "2024-03-10" || got.Priority != PriorityHigh {
		t.Fatalf("fields not carried: %+v", got)
	}
}

func TestNewRejectsBlankTitle(t *testing.T) {
	if got := New("   ", "", PriorityMedium); got != nil {
		t.Fatalf("whitespace title should yield nil, got %+v", got)
	}
	if got := New("", "", PriorityMedium); got != nil {
		t.Fatalf("empty title should yield nil, got %+v", got)
	}
}

func TestNewDefaultsBadPriority(t *testing.T) {
	if got := New("x", "", Priority(0)); got.Priority != PriorityMedium {
		t.Fatalf("zero priority should default to medium, got %v", got.Priority)
	}
	if got := New("x", "", Priority(9)); got.Priority != PriorityMedium {
		t.Fatalf("out-of-range priority should default to medium, got %v", got.Priority)
	}
}

func TestStatusCycle(t *testing.T) {
	s := StatusTodo
	if s = s.Next(); s != StatusInProgress {
		t.Fatalf("todo should advance to inprogress, got %q", s)
	}
	if s = s.Next(); s != StatusDone {
		t.Fatalf("inprogress should advance to done, got %q", s)
	}
	if s = s.Next(); s != StatusTodo {
		t.Fatalf("done should wrap to todo, got %q", s)
	}
}

func TestOverdueOn(t *testing.T) {
	today := "2024-03-10"

	past := &Task{Title: "late", Date: "2024-03-01"}
	if !past.OverdueOn(today) {
		t.Fatalf("a past-dated todo is overdue")
	}

	past.Status = StatusDone
	if past.OverdueOn(today) {
		t.Fatalf("done tasks are never overdue")
	}

	due := &Task{Title: "due", Date: today}
	if due.OverdueOn(today) {
		t.Fatalf("a task due today is not overdue")
	}

	undated := &Task{Title: "someday"}
	if undated.OverdueOn(today) {
		t.Fatalf("undated tasks are never overdue")
	}
}

func TestApplyMergesOnlySetFields(t *testing.T) {
	tk := &Task{
		ID:       1,
		Title:    "original",
		Date:     "2024-03-10",
		Time:     "09:00",
		Priority: PriorityLow,
		Status:   StatusTodo,
	}

	title := "renamed"
	tk.Apply(Update{Title: &title})
	if tk.Title != "renamed" {
		t.Fatalf("title not applied: %q", tk.Title)
	}
	if tk.Date != "2024-03-10" || tk.Time != "09:00" {
		t.Fatalf("unset fields must not change: %+v", tk)
	}

	// A pointer to the empty string clears the date but not the time.
	empty := ""
	tk.Apply(Update{Date: &empty})
	if tk.Date != "" {
		t.Fatalf("date not cleared: %q", tk.Date)
	}
	if tk.Time != "09:00" {
		t.Fatalf("time should survive a date clear: %q", tk.Time)
	}
}

func TestParsePriority(t *testing.T) {
	for in, want := range map[string]Priority{
		"low": PriorityLow, "1": PriorityLow,
		"medium": PriorityMedium, "med": PriorityMedium, "2": PriorityMedium, "": PriorityMedium,
		"High": PriorityHigh, "3": PriorityHigh,
	} {
		got, err := ParsePriority(in)
		if err != nil || got != want {
			t.Fatalf("ParsePriority(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("unknown priority should error")
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{
		"todo": StatusTodo, "": StatusTodo,
		"inprogress": StatusInProgress, "in progress": StatusInProgress, "doing": StatusInProgress,
		"done": StatusDone, "completed": StatusDone,
	} {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Fatalf("ParseStatus(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseStatus("blocked"); err == nil {
		t.Fatalf("unknown status should error")
	}
}
