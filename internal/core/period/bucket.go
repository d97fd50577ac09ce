package period

import "time"

// Section titles in display order.
const (
	TitleLastWeek  = "last week"
	TitleThisMonth = "this month"
	TitleThisYear  = "this year"
)

// Titles lists the section titles in display order.
var Titles = []string{TitleLastWeek, TitleThisMonth, TitleThisYear}

// Preferences holds the raw week-start and month-start values read from the
// preferences store. Empty values fall back to the defaults.
type Preferences struct {
	WeekStartDay  string
	MonthStartDay string
}

// WithDefaults fills empty fields with the documented defaults.
func (p Preferences) WithDefaults() Preferences {
	if p.WeekStartDay == "" {
		p.WeekStartDay = DefaultWeekStartDay
	}
	if p.MonthStartDay == "" {
		p.MonthStartDay = DefaultMonthStartDay
	}
	return p
}

// Validate checks that both values can be parsed.
func (p Preferences) Validate() error {
	p = p.WithDefaults()
	if _, err := ParseWeekday(p.WeekStartDay); err != nil {
		return err
	}
	if _, err := ParseMonthStartDay(p.MonthStartDay); err != nil {
		return err
	}
	return nil
}

// Bucket is one titled section of classified items.
type Bucket[T any] struct {
	Title string
	Range Range
	Items []T
}

// Ranges computes the last-week, this-month and this-year ranges for now.
func (p Preferences) Ranges(now time.Time) ([]Range, error) {
	p = p.WithDefaults()

	weekStart, err := ParseWeekday(p.WeekStartDay)
	if err != nil {
		return nil, err
	}
	monthStart, err := ParseMonthStartDay(p.MonthStartDay)
	if err != nil {
		return nil, err
	}
	month, err := CurrentMonthRange(now, monthStart)
	if err != nil {
		return nil, err
	}

	return []Range{
		LastWeekRange(now, weekStart),
		month,
		CurrentYearRange(now),
	}, nil
}

// Buckets classifies items into the three sections for now.
// An item may appear in more than one section.
func Buckets[T any](p Preferences, now time.Time, items []T, timestampOf func(T) time.Time) ([]Bucket[T], error) {
	ranges, err := p.Ranges(now)
	if err != nil {
		return nil, err
	}

	buckets := make([]Bucket[T], len(ranges))
	for i, r := range ranges {
		buckets[i] = Bucket[T]{
			Title: Titles[i],
			Range: r,
			Items: Classify(items, r, timestampOf),
		}
	}
	return buckets, nil
}
