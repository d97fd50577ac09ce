// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/ippo/internal/ports/primary"
)

// IppoAdapter is a thin adapter that translates CLI operations to IppoService calls.
type IppoAdapter struct {
	service primary.IppoService
	out     io.Writer
}

// NewIppoAdapter creates a new IppoAdapter with the given service.
func NewIppoAdapter(service primary.IppoService, out io.Writer) *IppoAdapter {
	return &IppoAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new pending IPPO.
func (a *IppoAdapter) Create(ctx context.Context, title string) error {
	resp, err := a.service.CreateIppo(ctx, primary.CreateIppoRequest{Title: title})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created IPPO %s: %s\n", resp.IppoID, resp.Ippo.Title)
	return nil
}

// List lists IPPOs with optional status filter.
func (a *IppoAdapter) List(ctx context.Context, status string) error {
	ippos, err := a.service.ListIppos(ctx, primary.IppoFilters{Status: status})
	if err != nil {
		return fmt.Errorf("failed to list IPPOs: %w", err)
	}

	if len(ippos) == 0 {
		fmt.Fprintln(a.out, "No IPPOs found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-10s %-17s %s\n", "ID", "STATUS", "PERFORMED", "TITLE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, i := range ippos {
		fmt.Fprintf(a.out, "%-10s %s %-8s %-17s %s\n", i.ID, StatusIcon(i.Status), i.Status, formatPerformed(i.PerformedAt, time.Local), i.Title)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single IPPO.
func (a *IppoAdapter) Show(ctx context.Context, ippoID string) error {
	i, err := a.service.GetIppo(ctx, ippoID)
	if err != nil {
		return fmt.Errorf("failed to get IPPO: %w", err)
	}

	fmt.Fprintf(a.out, "\nIPPO:      %s\n", i.ID)
	fmt.Fprintf(a.out, "Title:     %s\n", i.Title)
	fmt.Fprintf(a.out, "Status:    %s %s\n", StatusIcon(i.Status), i.Status)
	if !i.PerformedAt.IsZero() {
		fmt.Fprintf(a.out, "Performed: %s\n", formatPerformed(i.PerformedAt, time.Local))
	}
	fmt.Fprintf(a.out, "Created:   %s\n", i.CreatedAt)
	fmt.Fprintln(a.out)

	return nil
}

// Achieve marks an IPPO as achieved. A zero at means now.
func (a *IppoAdapter) Achieve(ctx context.Context, ippoID string, at time.Time) error {
	if err := a.service.AchieveIppo(ctx, primary.AchieveIppoRequest{IppoID: ippoID, PerformedAt: at}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ IPPO %s achieved\n", ippoID)
	return nil
}

// Stock moves an achieved IPPO back to stock.
func (a *IppoAdapter) Stock(ctx context.Context, ippoID string) error {
	if err := a.service.StockIppo(ctx, ippoID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ IPPO %s moved back to stock\n", ippoID)
	return nil
}

// Delete deletes an achieved IPPO.
func (a *IppoAdapter) Delete(ctx context.Context, ippoID string) error {
	if err := a.service.DeleteIppo(ctx, ippoID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ IPPO %s deleted\n", ippoID)
	return nil
}

// StatusIcon returns a colored marker for an IPPO status.
func StatusIcon(status string) string {
	switch status {
	case "achieved":
		return color.New(color.FgGreen).Sprint("✓")
	case "stocked":
		return color.New(color.FgYellow).Sprint("↺")
	case "pending":
		return color.New(color.FgBlue).Sprint("○")
	default:
		return "?"
	}
}

func formatPerformed(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format("2006-01-02 15:04")
}
