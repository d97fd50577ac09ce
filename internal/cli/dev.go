package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/ippo/internal/db"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
		Long: `Development utilities for working with a scratch database.

Point IPPO_DB_PATH at a throwaway file before using these commands.`,
	}

	cmd.AddCommand(devSeedCmd())
	return cmd
}

func devSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load fixture IPPOs into an empty database",
		Long: `Load fixture data for development.

Achieved IPPOs are placed relative to the current time so every section
of 'ippo achieved' has rows. Refuses to run when IPPOs already exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.SeedFixtures(database, time.Now()); err != nil {
				if errors.Is(err, db.ErrNotEmpty) {
					return fmt.Errorf("%w; point IPPO_DB_PATH at a new file to seed", err)
				}
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			path, _ := db.GetDBPath()
			fmt.Printf("✓ Seeded fixtures into %s\n", path)
			return nil
		},
	}
}
