package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Sma11zen/taskcalendar/pkg/calendar"
	"github.com/Sma11zen/taskcalendar/pkg/datekey"
	"github.com/Sma11zen/taskcalendar/pkg/task"
	"github.com/Sma11zen/taskcalendar/pkg/views"
)

const monthWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints the month grid; days carrying tasks print bold, today
// prints underlined.
func (pp *PrettyPrint) Month(year int, month time.Month, tasks []*task.Task, todayKey string) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", month, year)
	mid := (monthWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	plain := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)

	col := 0
	for _, cell := range calendar.MonthCells(year, month) {
		if cell.Day == 0 {
			fmt.Print("   ")
		} else {
			printer := plain
			if len(views.ForDate(tasks, cell.Key)) > 0 {
				printer = busy
			}
			if cell.Key == todayKey {
				printer = today
			}
			printer.Printf("%2d ", cell.Day)
		}
		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// Week prints one row per day of the displayed week with its tasks.
func (pp *PrettyPrint) Week(days []time.Time, tasks []*task.Task, todayKey string) {
	b := color.New(color.Bold)
	p := color.New()
	f := color.New(color.Faint, color.Italic)

	for _, day := range days {
		key := datekey.Format(day)
		heading := p
		if key == todayKey {
			heading = b
		}
		_, _ = heading.Printf("%s %s\n", day.Format("Mon"), day.Format("Jan 2"))

		dayTasks := views.ForDate(tasks, key)
		if len(dayTasks) == 0 {
			_, _ = f.Println("   no tasks")
			continue
		}
		for _, t := range dayTasks {
			if t.Time != "" {
				_, _ = p.Printf("   %s %s %s\n", StatusGlyph(t.Status), t.Time, t.Title)
			} else {
				_, _ = p.Printf("   %s %s\n", StatusGlyph(t.Status), t.Title)
			}
		}
	}
	fmt.Println("")
}

// Day prints the all-day row and the 24 hour rows for one date. Hour
// rows show only tasks carrying a time; time-less tasks stay in the
// all-day row.
func (pp *PrettyPrint) Day(day time.Time, tasks []*task.Task) {
	b := color.New(color.Bold)
	p := color.New()
	f := color.New(color.Faint)

	key := datekey.Format(day)
	_, _ = b.Println(day.Format("Monday, January 2, 2006"))

	_, _ = f.Print("All Day  ")
	allDay := views.WithoutTime(tasks, key)
	if len(allDay) == 0 {
		fmt.Println("")
	}
	for i, t := range allDay {
		if i > 0 {
			_, _ = p.Print(strings.Repeat(" ", len("All Day  ")))
		}
		_, _ = p.Printf("%s %s\n", StatusGlyph(t.Status), t.Title)
	}

	for _, hour := range calendar.Hours() {
		hourTasks := views.AtHour(tasks, key, hour)
		if len(hourTasks) == 0 {
			continue
		}
		_, _ = f.Printf("%7s  ", datekey.HourLabel(hour))
		for i, t := range hourTasks {
			if i > 0 {
				_, _ = p.Print(strings.Repeat(" ", 9))
			}
			_, _ = p.Printf("%s %s %s\n", StatusGlyph(t.Status), t.Time, t.Title)
		}
	}
	fmt.Println("")
}
