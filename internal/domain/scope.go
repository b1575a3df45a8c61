package domain

import (
	"strings"
	"time"
)

// TimeScope is the active temporal bucket filter for the star field.
type TimeScope string

const (
	ScopeDaily   TimeScope = "DAILY"   // Tasks created today
	ScopeWeekly  TimeScope = "WEEKLY"  // Tasks created this week
	ScopeMonthly TimeScope = "MONTHLY" // Tasks created this month
	ScopeMeteor  TimeScope = "METEOR"  // Overdue incomplete tasks
	ScopeAll     TimeScope = "ALL"     // No filtering
)

// AllScopes returns the scopes in tab display order.
func AllScopes() []TimeScope {
	return []TimeScope{ScopeDaily, ScopeWeekly, ScopeMonthly, ScopeMeteor}
}

// ParseScope converts a case-insensitive scope name into a TimeScope.
func ParseScope(s string) (TimeScope, error) {
	scope := TimeScope(strings.ToUpper(s))
	switch scope {
	case ScopeDaily, ScopeWeekly, ScopeMonthly, ScopeMeteor, ScopeAll:
		return scope, nil
	}
	return "", ErrInvalidScope
}

// Display returns a human-readable representation of the scope.
func (s TimeScope) Display() string {
	switch s {
	case ScopeDaily:
		return "Today"
	case ScopeWeekly:
		return "This Week"
	case ScopeMonthly:
		return "This Month"
	case ScopeMeteor:
		return "Meteors"
	default:
		return "All Stars"
	}
}

// localTime interprets an epoch-millisecond timestamp in local time.
func localTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b int64) bool {
	ta, tb := localTime(a), localTime(b)
	return ta.Year() == tb.Year() && ta.Month() == tb.Month() && ta.Day() == tb.Day()
}

// weekIndex computes a simple Sunday-referenced week number:
// ceil((weekday + 1 + daysSinceJan1) / 7), weekday 0 = Sunday.
// This is intentionally NOT ISO-8601; year-edge boundaries may classify
// inconsistently. Kept verbatim for compatibility with stored data.
func weekIndex(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := int(t.Sub(jan1) / (24 * time.Hour))
	return (int(t.Weekday()) + 1 + days + 6) / 7 // integer ceil
}

// SameWeek reports whether two timestamps fall in the same year and the same
// week number under the simplified week scheme.
func SameWeek(a, b int64) bool {
	ta, tb := localTime(a), localTime(b)
	return ta.Year() == tb.Year() && weekIndex(ta) == weekIndex(tb)
}

// SameMonth reports whether two timestamps fall in the same local year and month.
func SameMonth(a, b int64) bool {
	ta, tb := localTime(a), localTime(b)
	return ta.Year() == tb.Year() && ta.Month() == tb.Month()
}

// StartOfDay truncates a timestamp to local midnight, returned as epoch ms.
func StartOfDay(ms int64) int64 {
	t := localTime(ms)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).UnixMilli()
}

// Classify reports whether a task belongs to the given scope at the given
// reference instant. Unknown scopes include every task.
func Classify(task *Task, scope TimeScope, now int64) bool {
	switch scope {
	case ScopeDaily:
		return SameDay(task.CreatedAt, now)
	case ScopeWeekly:
		return SameWeek(task.CreatedAt, now)
	case ScopeMonthly:
		return SameMonth(task.CreatedAt, now)
	case ScopeMeteor:
		return task.CreatedAt < StartOfDay(now) && !task.Completed
	default:
		return true
	}
}
