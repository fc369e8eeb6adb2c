package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Clock reads the current time in one location and resolves the date text
// typed into the calendar binding.
type Clock struct {
	location *time.Location
	now      func() time.Time
}

// NewClock creates a clock for the given IANA timezone. "" and "Local" use the
// machine's zone.
func NewClock(timezone string) (*Clock, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	return &Clock{location: loc, now: time.Now}, nil
}

// WithNow returns a copy of c that reads time from now. Used by tests.
func (c *Clock) WithNow(now func() time.Time) *Clock {
	return &Clock{location: c.location, now: now}
}

// Now returns the current time in the clock's location.
func (c *Clock) Now() time.Time {
	return c.now().In(c.location)
}

// Today returns the current date as yyyy-mm-dd.
func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// ResolveDate turns calendar text into yyyy-mm-dd. It accepts a literal
// yyyy-mm-dd date, "today", "tomorrow", "yesterday", "in N days|weeks|months"
// and "next <weekday>".
func (c *Clock) ResolveDate(text string) (string, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	base := c.startOfDay(c.Now())

	switch text {
	case "":
		return "", fmt.Errorf("empty date")
	case "today":
		return base.Format(DateLayout), nil
	case "tomorrow":
		return base.AddDate(0, 0, 1).Format(DateLayout), nil
	case "yesterday":
		return base.AddDate(0, 0, -1).Format(DateLayout), nil
	}

	if strings.HasPrefix(text, "in ") {
		t, err := c.resolveInDuration(text, base)
		if err != nil {
			return "", err
		}
		return t.Format(DateLayout), nil
	}
	if strings.HasPrefix(text, "next ") {
		t, err := c.resolveNextWeekday(text, base)
		if err != nil {
			return "", err
		}
		return t.Format(DateLayout), nil
	}

	t, err := time.ParseInLocation(DateLayout, text, c.location)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: use yyyy-mm-dd", text)
	}
	return t.Format(DateLayout), nil
}

// resolveInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (c *Clock) resolveInDuration(text string, base time.Time) (time.Time, error) {
	m := inDurationPattern.FindStringSubmatch(text)
	if m == nil {
		return base, fmt.Errorf("invalid relative date: %q", text)
	}
	amount, _ := strconv.Atoi(m[1])

	switch unit := m[2]; {
	case strings.HasPrefix(unit, "day"):
		return base.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return base.AddDate(0, 0, amount*7), nil
	default:
		return base.AddDate(0, amount, 0), nil
	}
}

// resolveNextWeekday handles "next monday" and friends; the same weekday means a week ahead.
func (c *Clock) resolveNextWeekday(text string, base time.Time) (time.Time, error) {
	name := strings.TrimPrefix(text, "next ")
	target, ok := weekdays[name]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", name)
	}
	days := target - int(base.Weekday())
	if days <= 0 {
		days += 7
	}
	return base.AddDate(0, 0, days), nil
}

func (c *Clock) startOfDay(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// FormatClock12 renders t as "h:MM AM/PM" with midnight as 12.
func FormatClock12(t time.Time) string {
	return t.Format("3:04 PM")
}
