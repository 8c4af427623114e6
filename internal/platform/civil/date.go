// Package civil handles calendar dates without a time-of-day component.
package civil

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// Date returns midnight UTC of the calendar day t falls on in loc.
func Date(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Before reports whether day a is strictly before day b, ignoring time of day.
func Before(a, b time.Time) bool {
	return Date(a, nil).Before(Date(b, nil))
}

// ParseDate accepts YYYY-MM-DD only.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if !datePattern.MatchString(raw) {
		return time.Time{}, fmt.Errorf("date %q must be formatted YYYY-MM-DD", raw)
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a calendar date: %w", raw, err)
	}
	return t, nil
}

// ParseMonth accepts YYYY-MM and returns the first day of that month.
func ParseMonth(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse(MonthLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q must be formatted YYYY-MM with month 01-12", raw)
	}
	return t, nil
}

// ParseClock accepts H:MM or HH:MM on a 24 hour clock and normalizes to HH:MM.
func ParseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !clockPattern.MatchString(raw) {
		return "", fmt.Errorf("time %q must be formatted HH:MM", raw)
	}
	t, err := time.Parse("15:04", leftPadHour(raw))
	if err != nil {
		return "", fmt.Errorf("time %q: %w", raw, err)
	}
	return t.Format(ClockLayout), nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func leftPadHour(raw string) string {
	if strings.Index(raw, ":") == 1 {
		return "0" + raw
	}
	return raw
}
