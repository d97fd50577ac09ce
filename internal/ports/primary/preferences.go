package primary

import "context"

// PreferencesService defines the primary port for user preferences.
type PreferencesService interface {
	// GetPreferences returns the stored preferences with defaults applied.
	GetPreferences(ctx context.Context) (*Preferences, error)

	// SetWeekStartDay validates and stores the first day of the week.
	SetWeekStartDay(ctx context.Context, day string) error

	// SetMonthStartDay validates and stores the day of month periods start on.
	SetMonthStartDay(ctx context.Context, day string) error
}

// Preferences represents the user preferences at the port boundary.
type Preferences struct {
	WeekStartDay  string
	MonthStartDay string
}
