package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/ippo/internal/wire"
)

// AchievedCmd returns the achieved command with its row actions attached.
func AchievedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achieved",
		Short: "Show achieved IPPOs by period",
		Long: `Show achieved IPPOs in three sections: last week, this month and this year.

Weeks start on the dayOfWeekToStart preference and months on dateToStart
(see 'ippo prefs'). Rows are newest first and numbered for use with
'ippo achieved delete' and 'ippo achieved stock'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			return explain(wire.AchievedAdapter().Show(NewContext(), now))
		},
	}
	cmd.PersistentFlags().String("now", "", "Reference time instead of the clock (RFC3339 or YYYY-MM-DD)")

	cmd.AddCommand(achievedDeleteCmd())
	cmd.AddCommand(achievedStockCmd())
	return cmd
}

func achievedDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [section] [row]",
		Short: "Delete the IPPO at a section row",
		Long: `Delete the IPPO shown at a row of the achieved view.

Section is 0-2 or one of last-week, this-month, this-year. Row is the
number printed by 'ippo achieved'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, row, err := rowArgs(cmd, args)
			if err != nil {
				return err
			}
			return explain(wire.AchievedAdapter().Delete(NewContext(), now, args[0], row))
		},
	}
}

func achievedStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock [section] [row]",
		Short: "Move the IPPO at a section row back to stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, row, err := rowArgs(cmd, args)
			if err != nil {
				return err
			}
			return explain(wire.AchievedAdapter().Stock(NewContext(), now, args[0], row))
		},
	}
}

func nowFlag(cmd *cobra.Command) (time.Time, error) {
	nowStr, _ := cmd.Flags().GetString("now")
	if nowStr == "" {
		return time.Now(), nil
	}
	now, err := parseTime(nowStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now: %w", err)
	}
	return now, nil
}

func rowArgs(cmd *cobra.Command, args []string) (time.Time, int, error) {
	now, err := nowFlag(cmd)
	if err != nil {
		return time.Time{}, 0, err
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("row must be a number, got %q", args[1])
	}
	return now, row, nil
}
