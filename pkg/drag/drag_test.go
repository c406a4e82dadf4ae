package drag

import (
	"testing"

	"github.com/Sma11zen/taskcalendar/pkg/task"
)

type recorder struct {
	id int64
	u  task.Update
	n  int
}

func (r *recorder) Update(id int64, u task.Update) {
	r.id = id
	r.u = u
	r.n++
}

func TestDropAssignsDateAndHour(t *testing.T) {
	var r Register
	rec := &recorder{}

	r.Begin(5)
	r.Drop(rec, "2024-03-12", 9)

	if rec.n != 1 || rec.id != 5 {
		t.Fatalf("expected one update for task 5, got %d for %d", rec.n, rec.id)
	}
	if rec.u.Date == nil || *rec.u.Date != "2024-03-12" {
		t.Fatalf("date not assigned: %+v", rec.u)
	}
	if rec.u.Time == nil || *rec.u.Time != "09:00" {
		t.Fatalf("hour slot should become HH:00: %+v", rec.u)
	}
	if _, dragging := r.Dragging(); dragging {
		t.Fatalf("register must clear after a drop")
	}
}

func TestDropWithoutHourLeavesTimeAlone(t *testing.T) {
	var r Register
	rec := &recorder{}

	r.Begin(5)
	r.Drop(rec, "2024-03-12", NoHour)

	if rec.u.Time != nil {
		t.Fatalf("a dateless-hour drop must not touch the time: %+v", rec.u)
	}
	if rec.u.Date == nil || *rec.u.Date != "2024-03-12" {
		t.Fatalf("date not assigned: %+v", rec.u)
	}
}

func TestBeginOverwritesPendingDrag(t *testing.T) {
	var r Register
	rec := &recorder{}

	r.Begin(5)
	r.Begin(7)
	r.Drop(rec, "2024-03-12", NoHour)

	if rec.id != 7 {
		t.Fatalf("the later pick-up wins, got %d", rec.id)
	}
	if rec.n != 1 {
		t.Fatalf("only one task moves per drop, got %d updates", rec.n)
	}
}

func TestDropWithEmptyRegisterIsNoOp(t *testing.T) {
	var r Register
	rec := &recorder{}

	r.Drop(rec, "2024-03-12", 9)
	if rec.n != 0 {
		t.Fatalf("empty register must not update anything")
	}
}

func TestCancel(t *testing.T) {
	var r Register
	rec := &recorder{}

	r.Begin(5)
	r.Cancel()
	if _, dragging := r.Dragging(); dragging {
		t.Fatalf("cancel must clear the register")
	}

	r.Drop(rec, "2024-03-12", 9)
	if rec.n != 0 {
		t.Fatalf("a cancelled drag must not drop")
	}
}
