package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ippo/internal/config"
	"github.com/example/ippo/internal/logging"
)

// ConfigCmd returns the config command with all subcommands attached.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the ippo config file",
		Long: `Show or change ~/.ippo/config.json ($IPPO_HOME/config.json when set).

The file is JSON and may contain comments. Keys:
  db_path    database file, relative to the config directory (default ippo.db)
  log_level  debug, info, warn or error (default warn)`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(dir)
			if err != nil {
				return err
			}
			logLevel := cfg.LogLevel
			if logLevel == "" {
				logLevel = "warn"
			}
			fmt.Printf("config     %s\n", config.Path(dir))
			fmt.Printf("db_path    %s\n", cfg.ResolveDBPath(dir))
			fmt.Printf("log_level  %s\n", logLevel)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set [key] [value]",
		Short: "Set a config key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key == "log_level" {
				if _, err := logging.ParseLevel(value); err != nil {
					return err
				}
			}

			dir, err := config.Dir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(dir)
			if err != nil {
				return err
			}
			if err := cfg.Set(key, value); err != nil {
				return err
			}
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Printf("✓ Set %s = %s\n", key, value)
			return nil
		},
	})

	return cmd
}
