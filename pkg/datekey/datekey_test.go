package datekey

import (
	"testing"
	"time"
)

func TestFormatParseRoundTrip(t *testing.T) {
	day := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.Local)
	key := Format(day)
	if key != "2024-03-10" {
		t.Fatalf("unexpected key: %q", key)
	}

	parsed, err := Parse(key)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Year() != 2024 || parsed.Month() != time.March || parsed.Day() != 10 {
		t.Fatalf("round trip lost the date: %v", parsed)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Fatalf("expected local midnight, got %v", parsed)
	}
}

func TestKeysCompareInCalendarOrder(t *testing.T) {
	keys := []string{"2023-12-31", "2024-01-01", "2024-02-09", "2024-10-01"}
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			t.Fatalf("expected %q < %q", keys[i-1], keys[i])
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("2024-03-10") {
		t.Fatalf("expected canonical key to be valid")
	}
	for _, bad := range []string{"", "2024-3-10", "03/10/2024", "2024-13-01", "tomorrow"} {
		if Valid(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestValidClock(t *testing.T) {
	if !ValidClock("09:00") || !ValidClock("23:59") {
		t.Fatalf("expected well-formed clocks to validate")
	}
	for _, bad := range []string{"", "9:0", "24:00", "12:60", "noon"} {
		if ValidClock(bad) {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.April); got != 30 {
		t.Fatalf("April 2024 should have 30 days, got %d", got)
	}
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("February 2024 is a leap month, got %d", got)
	}
	if got := DaysInMonth(2023, time.February); got != 28 {
		t.Fatalf("February 2023 should have 28 days, got %d", got)
	}
	if got := DaysInMonth(2024, time.December); got != 31 {
		t.Fatalf("December 2024 should have 31 days, got %d", got)
	}
}

func TestStartingWeekday(t *testing.T) {
	if got := StartingWeekday(2024, time.April); got != time.Monday {
		t.Fatalf("April 2024 starts on Monday, got %v", got)
	}
	if got := StartingWeekday(2024, time.September); got != time.Sunday {
		t.Fatalf("September 2024 starts on Sunday, got %v", got)
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-03-13 is a Wednesday; its week starts Sunday the 10th.
	wed := time.Date(2024, time.March, 13, 18, 0, 0, 0, time.Local)
	start := WeekStart(wed)
	if Format(start) != "2024-03-10" {
		t.Fatalf("unexpected week start: %s", Format(start))
	}
	if start.Weekday() != time.Sunday {
		t.Fatalf("week should start on Sunday, got %v", start.Weekday())
	}

	// A Sunday is its own week start.
	sun := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
	if Format(WeekStart(sun)) != "2024-03-10" {
		t.Fatalf("Sunday should be its own week start")
	}
}

func TestHourOf(t *testing.T) {
	if got := HourOf("09:30"); got != 9 {
		t.Fatalf("expected hour 9, got %d", got)
	}
	if got := HourOf("23:00"); got != 23 {
		t.Fatalf("expected hour 23, got %d", got)
	}
	// Missing or malformed clocks fall into the midnight bucket.
	for _, clock := range []string{"", "99:00", "abc", "nineish"} {
		if got := HourOf(clock); got != 0 {
			t.Fatalf("expected %q to fold to hour 0, got %d", clock, got)
		}
	}
}

func TestClockForHour(t *testing.T) {
	if got := ClockForHour(9); got != "09:00" {
		t.Fatalf("unexpected clock: %q", got)
	}
	if got := ClockForHour(0); got != "00:00" {
		t.Fatalf("unexpected clock: %q", got)
	}
	if got := ClockForHour(17); got != "17:00" {
		t.Fatalf("unexpected clock: %q", got)
	}
}

func TestHourLabel(t *testing.T) {
	cases := map[int]string{
		0:  "12 AM",
		1:  "1 AM",
		11: "11 AM",
		12: "12 PM",
		13: "1 PM",
		23: "11 PM",
	}
	for hour, want := range cases {
		if got := HourLabel(hour); got != want {
			t.Fatalf("hour %d: expected %q, got %q", hour, want, got)
		}
	}
}
