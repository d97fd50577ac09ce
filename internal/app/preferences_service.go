package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/ippo/internal/core/period"
	"github.com/example/ippo/internal/logging"
	"github.com/example/ippo/internal/ports/primary"
	"github.com/example/ippo/internal/ports/secondary"
)

// PreferencesServiceImpl implements the PreferencesService interface.
type PreferencesServiceImpl struct {
	prefsRepo secondary.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService with injected dependencies.
func NewPreferencesService(prefsRepo secondary.PreferencesRepository) *PreferencesServiceImpl {
	return &PreferencesServiceImpl{
		prefsRepo: prefsRepo,
	}
}

// GetPreferences returns the stored preferences with defaults applied.
// A stored value that does not parse is reported as a *period.ConfigurationError.
func (s *PreferencesServiceImpl) GetPreferences(ctx context.Context) (*primary.Preferences, error) {
	prefs, err := loadPreferences(ctx, s.prefsRepo)
	if err != nil {
		return nil, err
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	return &primary.Preferences{
		WeekStartDay:  prefs.WeekStartDay,
		MonthStartDay: prefs.MonthStartDay,
	}, nil
}

// SetWeekStartDay validates and stores the first day of the week.
func (s *PreferencesServiceImpl) SetWeekStartDay(ctx context.Context, day string) error {
	if _, err := period.ParseWeekday(day); err != nil {
		return err
	}
	return s.set(ctx, period.KeyWeekStartDay, day)
}

// SetMonthStartDay validates and stores the day of month periods start on.
func (s *PreferencesServiceImpl) SetMonthStartDay(ctx context.Context, day string) error {
	if _, err := period.ParseMonthStartDay(day); err != nil {
		return err
	}
	return s.set(ctx, period.KeyMonthStartDay, day)
}

func (s *PreferencesServiceImpl) set(ctx context.Context, key, value string) error {
	if err := s.prefsRepo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	logging.Debug(logging.WithComponent(ctx, "preferences"), "preference saved",
		slog.String("key", key),
		slog.String("value", value),
	)
	return nil
}

// loadPreferences reads both period preferences, applying defaults for missing keys.
func loadPreferences(ctx context.Context, repo secondary.PreferencesRepository) (period.Preferences, error) {
	var prefs period.Preferences

	week, ok, err := repo.Get(ctx, period.KeyWeekStartDay)
	if err != nil {
		return prefs, fmt.Errorf("failed to read preferences: %w", err)
	}
	if ok {
		prefs.WeekStartDay = week
	}

	month, ok, err := repo.Get(ctx, period.KeyMonthStartDay)
	if err != nil {
		return prefs, fmt.Errorf("failed to read preferences: %w", err)
	}
	if ok {
		prefs.MonthStartDay = month
	}

	return prefs.WithDefaults(), nil
}

// Ensure PreferencesServiceImpl implements the interface
var _ primary.PreferencesService = (*PreferencesServiceImpl)(nil)
