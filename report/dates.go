package report

import (
	"strings"
	"time"
)

const (
	labelLayout = "January 02, 2006"
	inputLayout = "2006-01-02"
)

// DateRangeLabel formats an availability window as
// "March 01, 2024 – March 05, 2024". It returns "" when either date is
// missing or start falls on a later calendar day than end.
func DateRangeLabel(start, end *time.Time) string {
	if start == nil || end == nil {
		return ""
	}
	s, e := calendarDay(*start), calendarDay(*end)
	if s.After(e) {
		return ""
	}
	return s.Format(labelLayout) + " – " + e.Format(labelLayout)
}

// ParseDate reads a YYYY-MM-DD date. Empty or malformed input is treated as
// not yet specified and yields nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(inputLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate is the inverse of ParseDate; nil formats as "".
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(inputLayout)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
