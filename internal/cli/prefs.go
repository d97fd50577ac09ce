package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/ippo/internal/core/period"
	"github.com/example/ippo/internal/wire"
)

// PrefsCmd returns the prefs command with all subcommands attached.
func PrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change period preferences",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show week and month start preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := wire.PreferencesService().GetPreferences(NewContext())
			if err != nil {
				return explain(err)
			}
			fmt.Printf("%-18s %s\n", period.KeyWeekStartDay, prefs.WeekStartDay)
			fmt.Printf("%-18s %s\n", period.KeyMonthStartDay, prefs.MonthStartDay)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change a period preference",
	}

	setCmd.AddCommand(&cobra.Command{
		Use:   "week-start [day]",
		Short: "Set the first day of the week (e.g. Monday, sun, 日曜日)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PreferencesService().SetWeekStartDay(NewContext(), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Weeks now start on %s\n", args[0])
			return nil
		},
	})

	setCmd.AddCommand(&cobra.Command{
		Use:   "month-start [day]",
		Short: "Set the day of month periods start on (1-31)",
		Long: `Set the day of month periods start on (1-31).

In months shorter than the chosen day, the period starts on the last day
of that month.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PreferencesService().SetMonthStartDay(NewContext(), args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Months now start on day %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(showCmd)
	cmd.AddCommand(setCmd)
	return cmd
}
