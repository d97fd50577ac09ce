package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/ippo/internal/core/period"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"week start", &period.ConfigurationError{Key: period.KeyWeekStartDay, Value: "Funday", Reason: "unrecognized weekday"}, "ippo prefs set week-start"},
		{"month start", &period.ConfigurationError{Key: period.KeyMonthStartDay, Value: "40", Reason: "must be between 1 and 31"}, "ippo prefs set month-start"},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := explain(tt.err)
			if !errors.Is(got, tt.err) {
				t.Errorf("explain lost the original error: %v", got)
			}
			if tt.wantHint == "" {
				if got.Error() != tt.err.Error() {
					t.Errorf("unexpected rewrite: %q", got.Error())
				}
				return
			}
			if !strings.Contains(got.Error(), tt.wantHint) {
				t.Errorf("explain(%v) = %q, want hint %q", tt.err, got.Error(), tt.wantHint)
			}
		})
	}

	if explain(nil) != nil {
		t.Error("explain(nil) should be nil")
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("2024-03-15T09:30:00+09:00")
	if err != nil {
		t.Fatalf("parseTime(RFC3339) failed: %v", err)
	}
	if !got.Equal(time.Date(2024, time.March, 15, 0, 30, 0, 0, time.UTC)) {
		t.Errorf("parseTime(RFC3339) = %s", got)
	}

	got, err = parseTime("2024-03-15")
	if err != nil {
		t.Fatalf("parseTime(date) failed: %v", err)
	}
	if got.Location() != time.Local || got.Day() != 15 || got.Hour() != 0 {
		t.Errorf("parseTime(date) = %s, want local midnight", got)
	}

	if _, err := parseTime("15/03/2024"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
