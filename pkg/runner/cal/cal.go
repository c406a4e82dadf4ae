// Package cal provides the runner logic behind taskcal cal.
package cal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sma11zen/taskcalendar/pkg/app"
	"github.com/Sma11zen/taskcalendar/pkg/calendar"
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/printers"
)

// Calendar prints the month, week or day grid around an anchor date.
type Calendar struct {
	Mode  calendar.Mode
	On    string // anchor date key; empty means today
	Month int    // 1..12 overrides the month view month
	Year  int    // overrides the month view year

	Service *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	nav := calendar.NewNavigator(n.Service.Today)
	nav.SetMode(n.Mode)
	if n.On != "" {
		anchor, err := datekey.Parse(n.On)
		if err != nil {
			return fmt.Errorf("not a date: %q (want YYYY-MM-DD)", n.On)
		}
		nav.SetAnchor(anchor)
		nav.SetYear(anchor.Year())
		nav.SetMonth(anchor.Month())
	}
	if n.Month >= 1 && n.Month <= 12 {
		nav.SetMonth(time.Month(n.Month))
	}
	if n.Year > 0 {
		nav.SetYear(n.Year)
	}

	pp := printers.PrettyPrint{}
	tasks := n.Service.Tasks()
	todayKey := n.Service.TodayKey()
	fmt.Println("")

	switch nav.Mode() {
	case calendar.ModeWeek:
		pp.Title(nav.WeekLabel())
		pp.Week(nav.WeekDays(), tasks, todayKey)
	case calendar.ModeDay:
		pp.Day(nav.Anchor(), tasks)
	default:
		pp.Month(nav.Year(), nav.Month(), tasks, todayKey)
	}
	return nil
}
