// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"time"
)

// IppoRepository defines the secondary port for IPPO persistence.
type IppoRepository interface {
	// Create persists a new IPPO.
	Create(ctx context.Context, ippo *IppoRecord) error

	// GetByID retrieves an IPPO by its ID.
	GetByID(ctx context.Context, id string) (*IppoRecord, error)

	// List retrieves IPPOs matching the given filters.
	List(ctx context.Context, filters IppoFilters) ([]*IppoRecord, error)

	// UpdateStatus sets the status and, when performedAt is non-nil, the performed time.
	UpdateStatus(ctx context.Context, id, status string, performedAt *time.Time) error

	// Delete removes an IPPO from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available IPPO ID.
	GetNextID(ctx context.Context) (string, error)
}

// IppoRecord represents an IPPO as stored in persistence.
type IppoRecord struct {
	ID          string
	Title       string
	Status      string
	PerformedAt time.Time // zero until achieved
	CreatedAt   string
	UpdatedAt   string
}

// IppoFilters contains filter options for querying IPPOs.
type IppoFilters struct {
	Status string
}

// PreferencesRepository defines the secondary port for user preferences.
type PreferencesRepository interface {
	// Get returns the stored value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// ActivityLogRepository defines the secondary port for the activity log.
type ActivityLogRepository interface {
	// Create persists a new log entry.
	Create(ctx context.Context, entry *ActivityLogRecord) error

	// List retrieves log entries, newest first.
	List(ctx context.Context, filters ActivityLogFilters) ([]*ActivityLogRecord, error)

	// GetNextID returns the next available log ID.
	GetNextID(ctx context.Context) (string, error)

	// PruneOlderThan deletes entries older than the given number of days.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// ActivityLogRecord represents an activity log entry as stored in persistence.
type ActivityLogRecord struct {
	ID         string
	Timestamp  string
	EntityType string
	EntityID   string
	Action     string // 'create', 'update', 'delete'
	FieldName  string
	OldValue   string
	NewValue   string
}

// ActivityLogFilters contains filter options for querying log entries.
type ActivityLogFilters struct {
	EntityID string
	Action   string
	Limit    int
}
