package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	coreippo "github.com/example/ippo/internal/core/ippo"
	"github.com/example/ippo/internal/wire"
)

// AddCmd returns the add command.
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [title]",
		Short: "Add a pending IPPO",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.IppoAdapter().Create(NewContext(), strings.Join(args, " "))
		},
	}
}

// ListCmd returns the list command.
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List IPPOs",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, _ := cmd.Flags().GetString("status")
			return wire.IppoAdapter().List(NewContext(), status)
		},
	}
	cmd.Flags().StringP("status", "s", "", "Filter by status (pending, achieved, stocked)")
	return cmd
}

// ShowCmd returns the show command.
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [ippo-id]",
		Short: "Show IPPO details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := coreippo.NormalizeIppoID(args[0])
			if err != nil {
				return err
			}
			return wire.IppoAdapter().Show(NewContext(), id)
		},
	}
}

// AchieveCmd returns the achieve command.
func AchieveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achieve [ippo-id]",
		Short: "Mark an IPPO as achieved",
		Long: `Mark a pending or stocked IPPO as achieved.

The performed time defaults to now. Use --at to record an earlier time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := coreippo.NormalizeIppoID(args[0])
			if err != nil {
				return err
			}
			atStr, _ := cmd.Flags().GetString("at")
			var at time.Time
			if atStr != "" {
				at, err = parseTime(atStr)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
			}
			return wire.IppoAdapter().Achieve(NewContext(), id, at)
		},
	}
	cmd.Flags().String("at", "", "Performed time (RFC3339 or YYYY-MM-DD)")
	return cmd
}

// StockCmd returns the stock command.
func StockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stock [ippo-id]",
		Short: "Move an achieved IPPO back to stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := coreippo.NormalizeIppoID(args[0])
			if err != nil {
				return err
			}
			return wire.IppoAdapter().Stock(NewContext(), id)
		},
	}
}

// DeleteCmd returns the delete command.
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [ippo-id]",
		Short: "Delete an achieved IPPO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := coreippo.NormalizeIppoID(args[0])
			if err != nil {
				return err
			}
			return wire.IppoAdapter().Delete(NewContext(), id)
		},
	}
}

// parseTime accepts RFC3339 or a local calendar date.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC3339 nor YYYY-MM-DD", s)
	}
	return t, nil
}
