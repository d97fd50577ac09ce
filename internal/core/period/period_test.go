package period

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type rec struct {
	Title string
	At    time.Time
}

func recAt(r rec) time.Time { return r.At }

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{name: "full name", input: "Monday", want: time.Monday},
		{name: "lowercase", input: "sunday", want: time.Sunday},
		{name: "uppercase", input: "FRIDAY", want: time.Friday},
		{name: "abbreviation", input: "Wed", want: time.Wednesday},
		{name: "surrounding space", input: " Saturday ", want: time.Saturday},
		{name: "japanese monday", input: "月曜日", want: time.Monday},
		{name: "japanese sunday", input: "日曜日", want: time.Sunday},
		{name: "unknown", input: "Funday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigurationError, got %v", err)
				}
				if cfgErr.Key != KeyWeekStartDay {
					t.Errorf("Key = %q, want %q", cfgErr.Key, KeyWeekStartDay)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseWeekday(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMonthStartDay(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1", want: 1},
		{input: "31", want: 31},
		{input: "25日", want: 25},
		{input: "25th", want: 25},
		{input: " 7 ", want: 7},
		{input: "0", wantErr: true},
		{input: "32", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMonthStartDay(tt.input)
			if tt.wantErr {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("expected ConfigurationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMonthStartDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLastWeekRange_Example(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	got := LastWeekRange(now, time.Monday)
	want := Range{Start: date(2024, time.March, 4), End: date(2024, time.March, 11)}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LastWeekRange mismatch (-want +got):\n%s", diff)
	}
}

func TestLastWeekRange_NowOnWeekStart(t *testing.T) {
	// Sunday start, now is Sunday: the current week begins today.
	now := time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)

	got := LastWeekRange(now, time.Sunday)
	want := Range{Start: date(2024, time.March, 10), End: date(2024, time.March, 17)}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LastWeekRange mismatch (-want +got):\n%s", diff)
	}
}

func TestLastWeekRange_AdjacentToCurrentWeek(t *testing.T) {
	base := time.Date(2024, time.February, 20, 13, 45, 0, 0, time.UTC)

	for day := time.Sunday; day <= time.Saturday; day++ {
		for offset := 0; offset < 21; offset++ {
			now := base.AddDate(0, 0, offset)
			current := CurrentWeekRange(now, day)
			last := LastWeekRange(now, day)

			if !last.End.Equal(current.Start) {
				t.Fatalf("%v/%s: last.End %s != current.Start %s", day, now, last.End, current.Start)
			}
			if d := last.End.Sub(last.Start); d != 7*24*time.Hour {
				t.Fatalf("%v/%s: last week spans %s", day, now, d)
			}
			if current.Start.Weekday() != day {
				t.Fatalf("%v/%s: current week starts on %v", day, now, current.Start.Weekday())
			}
			if !current.Contains(now) {
				t.Fatalf("%v/%s: current week %v does not contain now", day, now, current)
			}
			if last.Contains(now) {
				t.Fatalf("%v/%s: last week %v contains now", day, now, last)
			}
		}
	}
}

func TestCurrentMonthRange(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		day   int
		start time.Time
		end   time.Time
	}{
		{
			name:  "start day later than today rolls back a month",
			now:   date(2024, time.March, 15),
			day:   25,
			start: date(2024, time.February, 25),
			end:   date(2024, time.March, 25),
		},
		{
			name:  "first of month",
			now:   date(2024, time.March, 15),
			day:   1,
			start: date(2024, time.March, 1),
			end:   date(2024, time.April, 1),
		},
		{
			name:  "now on start day",
			now:   time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC),
			day:   15,
			start: date(2024, time.March, 15),
			end:   date(2024, time.April, 15),
		},
		{
			name:  "rolls back across year boundary",
			now:   date(2024, time.January, 5),
			day:   10,
			start: date(2023, time.December, 10),
			end:   date(2024, time.January, 10),
		},
		{
			name:  "end crosses year boundary",
			now:   date(2024, time.December, 26),
			day:   25,
			start: date(2024, time.December, 25),
			end:   date(2025, time.January, 25),
		},
		{
			name:  "day 31 clamps to leap february end",
			now:   date(2024, time.February, 10),
			day:   31,
			start: date(2024, time.January, 31),
			end:   date(2024, time.February, 29),
		},
		{
			name:  "day 31 starting on clamped february",
			now:   time.Date(2023, time.February, 28, 12, 0, 0, 0, time.UTC),
			day:   31,
			start: date(2023, time.February, 28),
			end:   date(2023, time.March, 31),
		},
		{
			name:  "day 31 clamps to april end",
			now:   date(2024, time.May, 2),
			day:   31,
			start: date(2024, time.April, 30),
			end:   date(2024, time.May, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentMonthRange(tt.now, tt.day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := Range{Start: tt.start, End: tt.end}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("CurrentMonthRange mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCurrentMonthRange_OneCalendarMonth(t *testing.T) {
	for day := 1; day <= 31; day++ {
		for now := date(2024, time.January, 1).Add(12 * time.Hour); now.Year() < 2026; now = now.AddDate(0, 0, 1) {
			r, err := CurrentMonthRange(now, day)
			if err != nil {
				t.Fatalf("day %d, now %s: %v", day, now, err)
			}
			if !r.Contains(now) {
				t.Fatalf("day %d: range %v does not contain %s", day, r, now)
			}

			nextMonth := r.Start.AddDate(0, 0, 1-r.Start.Day()).AddDate(0, 1, 0)
			if r.End.Year() != nextMonth.Year() || r.End.Month() != nextMonth.Month() {
				t.Fatalf("day %d, now %s: end %s is not in the month after start %s", day, now, r.End, r.Start)
			}
			if want := min(day, daysIn(r.Start.Year(), r.Start.Month())); r.Start.Day() != want {
				t.Fatalf("day %d: start day %d, want %d", day, r.Start.Day(), want)
			}
			if want := min(day, daysIn(r.End.Year(), r.End.Month())); r.End.Day() != want {
				t.Fatalf("day %d: end day %d, want %d", day, r.End.Day(), want)
			}
		}
	}
}

func TestCurrentMonthRange_InvalidDay(t *testing.T) {
	for _, day := range []int{0, -1, 32} {
		_, err := CurrentMonthRange(date(2024, time.March, 15), day)
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("day %d: expected ConfigurationError, got %v", day, err)
		}
	}
}

func TestCurrentYearRange(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)

	r := CurrentYearRange(now)

	if !r.Start.Equal(date(2024, time.January, 1)) {
		t.Errorf("Start = %s, want 2024-01-01", r.Start)
	}
	if r.Bounded() {
		t.Errorf("year range should be unbounded, got end %s", r.End)
	}
	if !r.Contains(date(2030, time.January, 1)) {
		t.Error("unbounded range should contain future dates")
	}
	if r.Contains(time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)) {
		t.Error("range should not contain the previous year")
	}
}

func TestCurrentYearRange_KeepsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2024, time.January, 1, 3, 0, 0, 0, tokyo)

	r := CurrentYearRange(now)

	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, tokyo)
	if !r.Start.Equal(want) {
		t.Errorf("Start = %s, want %s", r.Start, want)
	}
}

func TestRangeContains_HalfOpen(t *testing.T) {
	r := Range{Start: date(2024, time.March, 4), End: date(2024, time.March, 11)}

	if !r.Contains(r.Start) {
		t.Error("range should contain its start")
	}
	if r.Contains(r.End) {
		t.Error("range should not contain its end")
	}
	if !r.Contains(r.End.Add(-time.Nanosecond)) {
		t.Error("range should contain the instant before its end")
	}
}

func TestClassify_YearExample(t *testing.T) {
	records := []rec{
		{Title: "january", At: date(2024, time.January, 10)},
		{Title: "june", At: date(2024, time.June, 1)},
	}
	now := date(2024, time.June, 15)

	got := Classify(records, CurrentYearRange(now), recAt)

	want := []rec{
		{Title: "june", At: date(2024, time.June, 1)},
		{Title: "january", At: date(2024, time.January, 10)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_SubsetSortedDescending(t *testing.T) {
	r := Range{Start: date(2024, time.March, 4), End: date(2024, time.March, 11)}
	var records []rec
	for i := 0; i < 40; i++ {
		// Spread records from late February into mid March, out of order.
		at := date(2024, time.February, 25).Add(time.Duration((i*37)%400) * time.Hour)
		records = append(records, rec{Title: at.Format(time.RFC3339), At: at})
	}

	got := Classify(records, r, recAt)

	inRange := 0
	for _, rc := range records {
		if rc.At.Compare(r.Start) >= 0 && rc.At.Before(r.End) {
			inRange++
		}
	}
	if len(got) != inRange {
		t.Fatalf("got %d records, want %d", len(got), inRange)
	}
	for i, rc := range got {
		if !r.Contains(rc.At) {
			t.Errorf("record %s outside range", rc.Title)
		}
		if i > 0 && got[i-1].At.Before(rc.At) {
			t.Errorf("records out of order at %d: %s before %s", i, got[i-1].At, rc.At)
		}
	}
}

func TestClassify_StableOnTies(t *testing.T) {
	at := date(2024, time.March, 5)
	records := []rec{
		{Title: "first", At: at},
		{Title: "older", At: at.Add(-time.Hour)},
		{Title: "second", At: at},
		{Title: "third", At: at},
	}

	got := Classify(records, Range{Start: date(2024, time.March, 1)}, recAt)

	var titles []string
	for _, rc := range got {
		titles = append(titles, rc.Title)
	}
	want := []string{"first", "second", "third", "older"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Errorf("tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_Empty(t *testing.T) {
	got := Classify([]rec(nil), CurrentYearRange(date(2024, time.June, 1)), recAt)
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}
