package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/ippo/internal/cli"
	"github.com/example/ippo/internal/db"
	"github.com/example/ippo/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "ippo",
		Short:   "ippo - a ledger of small daily steps",
		Version: version.String(),
		Long: `ippo keeps a ledger of IPPOs: small steps you plan, achieve and look back on.

Achieved IPPOs are grouped into last week, this month and this year, using
your week-start and month-start preferences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.Setup()
		},
	}

	// IPPO commands
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.AchieveCmd())
	rootCmd.AddCommand(cli.StockCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.AchievedCmd())

	// Settings and history
	rootCmd.AddCommand(cli.PrefsCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DevCmd())

	err := rootCmd.Execute()
	db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
