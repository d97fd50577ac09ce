package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotEmpty is returned by SeedFixtures when IPPOs already exist.
var ErrNotEmpty = errors.New("database already has IPPOs")

// SeedFixtures populates the database with development fixtures.
// Achieved IPPOs are spread relative to now so every section of the
// achieved view has something to show.
func SeedFixtures(database *sql.DB, now time.Time) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM ippos").Scan(&count); err != nil {
		return fmt.Errorf("count ippos: %w", err)
	}
	if count > 0 {
		return ErrNotEmpty
	}

	now = now.UTC()

	ippos := []struct {
		id, title, status string
		performedAt       time.Time
	}{
		{"IPPO-001", "Morning run", "achieved", now.AddDate(0, 0, -1)},
		{"IPPO-002", "Read 20 pages", "achieved", now.AddDate(0, 0, -8)},
		{"IPPO-003", "Call grandma", "achieved", now.AddDate(0, 0, -10)},
		{"IPPO-004", "Clean the balcony", "achieved", now.AddDate(0, -2, 0)},
		{"IPPO-005", "Learn ten kanji", "stocked", time.Time{}},
		{"IPPO-006", "Stretch before bed", "pending", time.Time{}},
	}
	for _, i := range ippos {
		var performedAt sql.NullTime
		if !i.performedAt.IsZero() {
			performedAt = sql.NullTime{Time: i.performedAt, Valid: true}
		}
		if _, err := database.Exec(
			"INSERT INTO ippos (id, title, status, performed_at) VALUES (?, ?, ?, ?)",
			i.id, i.title, i.status, performedAt,
		); err != nil {
			return fmt.Errorf("seed ippos: %w", err)
		}
	}

	prefs := []struct{ key, value string }{
		{"dayOfWeekToStart", "Monday"},
		{"dateToStart", "1"},
	}
	for _, p := range prefs {
		if _, err := database.Exec(
			"INSERT INTO preferences (key, value) VALUES (?, ?)",
			p.key, p.value,
		); err != nil {
			return fmt.Errorf("seed preferences: %w", err)
		}
	}

	return nil
}
