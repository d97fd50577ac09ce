// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"time"
)

// IppoService defines the primary port for IPPO operations.
type IppoService interface {
	// CreateIppo creates a new pending IPPO.
	CreateIppo(ctx context.Context, req CreateIppoRequest) (*CreateIppoResponse, error)

	// GetIppo retrieves an IPPO by ID.
	GetIppo(ctx context.Context, ippoID string) (*Ippo, error)

	// ListIppos lists IPPOs with optional filters.
	ListIppos(ctx context.Context, filters IppoFilters) ([]*Ippo, error)

	// AchieveIppo marks an IPPO as achieved at the given time.
	AchieveIppo(ctx context.Context, req AchieveIppoRequest) error

	// StockIppo moves an achieved IPPO back to stock.
	StockIppo(ctx context.Context, ippoID string) error

	// DeleteIppo deletes an achieved IPPO.
	DeleteIppo(ctx context.Context, ippoID string) error

	// ListAchievedSections returns the last week, this month and this year sections for now.
	ListAchievedSections(ctx context.Context, now time.Time) ([]*AchievedSection, error)

	// SelectAchieved returns the IPPO shown at a section row.
	SelectAchieved(ctx context.Context, sel AchievedSelection) (*Ippo, error)

	// DeleteAchieved deletes the IPPO shown at a section row.
	DeleteAchieved(ctx context.Context, sel AchievedSelection) (*Ippo, error)

	// StockAchieved stocks the IPPO shown at a section row.
	StockAchieved(ctx context.Context, sel AchievedSelection) (*Ippo, error)
}

// Section indexes of the achieved view, in display order.
const (
	SectionLastWeek = iota
	SectionThisMonth
	SectionThisYear
)

// CreateIppoRequest contains parameters for creating an IPPO.
type CreateIppoRequest struct {
	Title string
}

// CreateIppoResponse contains the result of creating an IPPO.
type CreateIppoResponse struct {
	IppoID string
	Ippo   *Ippo
}

// AchieveIppoRequest contains parameters for achieving an IPPO.
type AchieveIppoRequest struct {
	IppoID      string
	PerformedAt time.Time // Optional, defaults to now
}

// AchievedSelection identifies a row in the achieved view as of Now.
type AchievedSelection struct {
	Now     time.Time
	Section int
	Row     int
}

// Ippo represents an IPPO entity at the port boundary.
type Ippo struct {
	ID          string
	Title       string
	Status      string
	PerformedAt time.Time
	CreatedAt   string
	UpdatedAt   string
}

// AchievedSection is one titled section of the achieved view.
// End is zero when the section has no upper bound.
type AchievedSection struct {
	Title string
	Start time.Time
	End   time.Time
	Ippos []*Ippo
}

// IppoFilters contains filter options for listing IPPOs.
type IppoFilters struct {
	Status string
}
