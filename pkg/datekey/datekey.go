// Package datekey converts calendar dates to and from canonical
// YYYY-MM-DD keys and answers calendar-grid questions. Keys are local
// wall-clock only and compare lexicographically in calendar order,
// which is what lets every bucket and sort rule use plain string
// comparison.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical date key layout.
const Layout = "2006-01-02"

// TimeLayout is the 24-hour clock layout carried on tasks.
const TimeLayout = "15:04"

// Format renders the local calendar date of t as a key.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse turns a key back into a local midnight time.
func Parse(key string) (time.Time, error) {
	return time.ParseInLocation(Layout, key, time.Local)
}

// Valid reports whether key is a well-formed calendar date key.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// ValidClock reports whether s is a well-formed HH:MM 24-hour string.
func ValidClock(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartingWeekday returns the weekday of the first of the month,
// Sunday == 0.
func StartingWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// WeekStart returns the Sunday on or before t, at local midnight.
func WeekStart(t time.Time) time.Time {
	d := Midnight(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Midnight truncates t to its local calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HourOf parses the hour component of an HH:MM string. A missing or
// malformed time yields 0, which is how the generic per-hour lookup
// folds "no time" into the midnight bucket. The strict day-view rows
// filter those tasks out before ever asking for an hour.
func HourOf(clock string) int {
	h, _, ok := strings.Cut(clock, ":")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 {
		return 0
	}
	return n
}

// ClockForHour renders an hour as the HH:00 string stored on a task.
func ClockForHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// HourLabel renders an hour in 12-hour form, e.g. "12 AM", "3 PM".
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
