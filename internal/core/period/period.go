// Package period contains the pure date-range logic for the achieved view.
// This is part of the Functional Core - no I/O, only pure functions of now
// and the injected preferences.
package period

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Preference defaults applied when the store has no value.
const (
	DefaultWeekStartDay  = "Monday"
	DefaultMonthStartDay = "1"
)

// Preference keys as stored by the preferences store.
const (
	KeyWeekStartDay  = "dayOfWeekToStart"
	KeyMonthStartDay = "dateToStart"
)

// ConfigurationError reports a preference value the bucketer cannot use.
type ConfigurationError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid preference %s=%q: %s", e.Key, e.Value, e.Reason)
}

// Range is a half-open interval [Start, End). A zero End means unbounded.
type Range struct {
	Start time.Time
	End   time.Time
}

// Bounded reports whether the range has an upper bound.
func (r Range) Bounded() bool {
	return !r.End.IsZero()
}

// Contains reports whether t falls in the range.
func (r Range) Contains(t time.Time) bool {
	if t.Before(r.Start) {
		return false
	}
	return !r.Bounded() || t.Before(r.End)
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "日曜日": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "月曜日": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "火曜日": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "水曜日": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "木曜日": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "金曜日": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "土曜日": time.Saturday,
}

// ParseWeekday resolves a week-start preference value.
// English names and abbreviations match case-insensitively; the Japanese
// weekday names written by the mobile app are accepted as well.
func ParseWeekday(name string) (time.Weekday, error) {
	if day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return day, nil
	}
	return 0, &ConfigurationError{
		Key:    KeyWeekStartDay,
		Value:  name,
		Reason: "unrecognized weekday",
	}
}

// ParseMonthStartDay resolves a month-start preference value.
// Letters around the number are ignored, so "25", "25th" and "25日" all read as 25.
func ParseMonthStartDay(s string) (int, error) {
	trimmed := strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsSpace(r)
	})
	day, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ConfigurationError{Key: KeyMonthStartDay, Value: s, Reason: "not a number"}
	}
	if day < 1 || day > 31 {
		return 0, &ConfigurationError{Key: KeyMonthStartDay, Value: s, Reason: "must be between 1 and 31"}
	}
	return day, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CurrentWeekRange returns the week containing now, starting on weekStart.
func CurrentWeekRange(now time.Time, weekStart time.Weekday) Range {
	today := startOfDay(now)
	back := (int(today.Weekday()) - int(weekStart) + 7) % 7
	start := today.AddDate(0, 0, -back)
	return Range{Start: start, End: start.AddDate(0, 0, 7)}
}

// LastWeekRange returns the seven days before the current week.
func LastWeekRange(now time.Time, weekStart time.Weekday) Range {
	current := CurrentWeekRange(now, weekStart)
	return Range{Start: current.Start.AddDate(0, 0, -7), End: current.Start}
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// anchor returns day-of-month day in the given month, clamped to the month's
// last day. Month overflow is normalized by time.Date.
func anchor(year int, month time.Month, day int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	y, m, _ := first.Date()
	return time.Date(y, m, min(day, daysIn(y, m)), 0, 0, 0, 0, loc)
}

// CurrentMonthRange returns the month-long period containing now that starts
// on monthStartDay. Days past the end of a short month clamp to its last day.
func CurrentMonthRange(now time.Time, monthStartDay int) (Range, error) {
	if monthStartDay < 1 || monthStartDay > 31 {
		return Range{}, &ConfigurationError{
			Key:    KeyMonthStartDay,
			Value:  strconv.Itoa(monthStartDay),
			Reason: "must be between 1 and 31",
		}
	}

	loc := now.Location()
	year, month, _ := now.Date()
	start := anchor(year, month, monthStartDay, loc)
	if now.Before(start) {
		month--
		start = anchor(year, month, monthStartDay, loc)
	}
	end := anchor(year, month+1, monthStartDay, loc)
	return Range{Start: start, End: end}, nil
}

// CurrentYearRange returns the open-ended range starting January 1 of now's year.
func CurrentYearRange(now time.Time) Range {
	return Range{Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())}
}

// Classify returns the items whose timestamp falls in r, newest first.
// Items with equal timestamps keep their input order.
func Classify[T any](items []T, r Range, timestampOf func(T) time.Time) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if r.Contains(timestampOf(item)) {
			matched = append(matched, item)
		}
	}
	slices.SortStableFunc(matched, func(a, b T) int {
		return timestampOf(b).Compare(timestampOf(a))
	})
	return matched
}
