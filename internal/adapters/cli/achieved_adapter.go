package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/ippo/internal/ports/primary"
)

// sectionSlugs maps command-line section names to section indexes.
var sectionSlugs = map[string]int{
	"last-week":  primary.SectionLastWeek,
	"this-month": primary.SectionThisMonth,
	"this-year":  primary.SectionThisYear,
}

// ParseSection resolves a section given as an index (0-2) or a slug.
func ParseSection(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if idx, ok := sectionSlugs[s]; ok {
		return idx, nil
	}
	if idx, err := strconv.Atoi(s); err == nil && idx >= primary.SectionLastWeek && idx <= primary.SectionThisYear {
		return idx, nil
	}
	return 0, fmt.Errorf("unknown section %q (use 0-2, last-week, this-month or this-year)", s)
}

// AchievedAdapter renders the achieved view and runs its row actions.
// Rows are numbered from 1 on screen and on the command line.
type AchievedAdapter struct {
	service primary.IppoService
	out     io.Writer
}

// NewAchievedAdapter creates a new AchievedAdapter with the given service.
func NewAchievedAdapter(service primary.IppoService, out io.Writer) *AchievedAdapter {
	return &AchievedAdapter{
		service: service,
		out:     out,
	}
}

// Show prints the last week, this month and this year sections as of now.
func (a *AchievedAdapter) Show(ctx context.Context, now time.Time) error {
	sections, err := a.service.ListAchievedSections(ctx, now)
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, s := range sections {
		fmt.Fprintf(a.out, "\n%s  %s\n", header.Sprint(strings.ToUpper(s.Title)), formatSpan(s, now.Location()))
		if len(s.Ippos) == 0 {
			fmt.Fprintln(a.out, "  (nothing achieved)")
			continue
		}
		for row, i := range s.Ippos {
			fmt.Fprintf(a.out, "  %2d. %-17s %s %s\n", row+1, formatPerformed(i.PerformedAt, now.Location()), i.Title, color.New(color.Faint).Sprint(i.ID))
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Delete removes the IPPO at the given section row.
func (a *AchievedAdapter) Delete(ctx context.Context, now time.Time, section string, row int) error {
	sel, err := selection(now, section, row)
	if err != nil {
		return err
	}

	deleted, err := a.service.DeleteAchieved(ctx, sel)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted %s: %s\n", deleted.ID, deleted.Title)
	return nil
}

// Stock moves the IPPO at the given section row back to stock.
func (a *AchievedAdapter) Stock(ctx context.Context, now time.Time, section string, row int) error {
	sel, err := selection(now, section, row)
	if err != nil {
		return err
	}

	stocked, err := a.service.StockAchieved(ctx, sel)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Moved %s back to stock: %s\n", stocked.ID, stocked.Title)
	return nil
}

func selection(now time.Time, section string, row int) (primary.AchievedSelection, error) {
	idx, err := ParseSection(section)
	if err != nil {
		return primary.AchievedSelection{}, err
	}
	if row < 1 {
		return primary.AchievedSelection{}, fmt.Errorf("row must be 1 or greater, got %d", row)
	}
	return primary.AchievedSelection{Now: now, Section: idx, Row: row - 1}, nil
}

func formatSpan(s *primary.AchievedSection, loc *time.Location) string {
	start := s.Start.In(loc).Format("2006-01-02")
	if s.End.IsZero() {
		return fmt.Sprintf("since %s", start)
	}
	return fmt.Sprintf("%s to %s", start, s.End.In(loc).AddDate(0, 0, -1).Format("2006-01-02"))
}
