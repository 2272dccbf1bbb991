// Package clock resolves civil dates in a single fixed timezone (US Eastern),
// so that "today" means the same thing regardless of where the service runs.
package clock

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

// DateFormat is the only date format used in the whole system. Zero-padded
// YYYY-MM-DD strings compare lexically the same as chronologically, which the
// streak and challenge logic relies on.
const DateFormat = "2006-01-02"

// Eastern is the fixed civil timezone for all date calculations.
var Eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic(fmt.Sprintf("load eastern timezone: %s", err))
	}
	return loc
}()

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today returns the current civil date in the Eastern timezone.
func Today() string {
	return TodayAt(time.Now())
}

func TodayAt(now time.Time) string {
	return now.In(Eastern).Format(DateFormat)
}

// Yesterday returns Today minus one calendar day. AddDate does proper
// calendar arithmetic, so DST transitions do not shift the result.
func Yesterday() string {
	return YesterdayAt(time.Now())
}

func YesterdayAt(now time.Time) string {
	return now.In(Eastern).AddDate(0, 0, -1).Format(DateFormat)
}

// MondayOfWeek returns the Monday on or before today. Sunday counts as day 7
// of the week (ISO convention), so on Sundays the returned Monday is 6 days
// back, not tomorrow.
func MondayOfWeek() string {
	return MondayOfWeekAt(time.Now())
}

func MondayOfWeekAt(now time.Time) string {
	eastern := now.In(Eastern)
	day := int(eastern.Weekday())
	if day == 0 {
		day = 7
	}
	return eastern.AddDate(0, 0, -(day - 1)).Format(DateFormat)
}

// WeekIndex returns the index of the calendar week of `now` within its year:
// ceil((daysSinceJan1 + weekday(Jan1) + 1) / 7), with Sunday as weekday 0.
// The anchor is Jan 1 rather than a Monday, so the roll to the next index
// lands on Saturday: Monday through Friday always share an index, the
// weekend may already map to the next one.
func WeekIndex(now time.Time) int {
	eastern := now.In(Eastern)
	jan1 := time.Date(eastern.Year(), time.January, 1, 0, 0, 0, 0, Eastern)
	daysSinceJan1 := eastern.Sub(jan1).Hours() / 24
	return int(math.Ceil((daysSinceJan1 + float64(jan1.Weekday()) + 1) / 7))
}

// ParseDate validates a YYYY-MM-DD civil date string and returns it as a
// time.Time at midnight Eastern. The regex check rejects non-zero-padded
// inputs that time.Parse would otherwise accept.
func ParseDate(s string) (time.Time, error) {
	if !dateRegex.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	t, err := time.ParseInLocation(DateFormat, s, Eastern)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// IsWeekday reports whether the given civil date falls on Monday to Friday.
func IsWeekday(date string) (bool, error) {
	t, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday, nil
}
