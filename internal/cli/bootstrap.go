// Package cli provides CLI commands for the ippo application.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/example/ippo/internal/config"
	"github.com/example/ippo/internal/core/period"
	"github.com/example/ippo/internal/logging"
)

// Setup loads the config file and configures logging for this invocation.
// Should be called once at CLI startup in PersistentPreRunE.
func Setup() error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("config %s: %w", config.Path(dir), err)
	}
	logging.Init(os.Stderr, level)
	return nil
}

// NewContext creates a context.Background() tagged for CLI log lines.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	return logging.WithComponent(context.Background(), "cli")
}

// explain adds a fix-it hint to preference errors.
func explain(err error) error {
	var cfgErr *period.ConfigurationError
	if errors.As(err, &cfgErr) {
		flag := "week-start"
		if cfgErr.Key == period.KeyMonthStartDay {
			flag = "month-start"
		}
		return fmt.Errorf("%w\nFix it with: ippo prefs set %s <value>", err, flag)
	}
	return err
}
