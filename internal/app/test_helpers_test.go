package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/ippo/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.IppoRepository        = (*mockIppoRepository)(nil)
	_ secondary.PreferencesRepository = (*mockPreferencesRepository)(nil)
	_ secondary.LogWriter             = (*mockLogWriter)(nil)
	_ secondary.ActivityLogRepository = (*mockActivityLogRepository)(nil)
)

// mockIppoRepository implements secondary.IppoRepository for testing.
// List returns records in insertion order.
type mockIppoRepository struct {
	ippos     map[string]*secondary.IppoRecord
	order     []string
	nextID    int
	listErr   error
	updateErr error
	deleteErr error
}

func newMockIppoRepository() *mockIppoRepository {
	return &mockIppoRepository{
		ippos:  make(map[string]*secondary.IppoRecord),
		nextID: 1,
	}
}

func (m *mockIppoRepository) add(id, title, status string, performedAt time.Time) {
	m.ippos[id] = &secondary.IppoRecord{ID: id, Title: title, Status: status, PerformedAt: performedAt}
	m.order = append(m.order, id)
}

func (m *mockIppoRepository) Create(ctx context.Context, ippo *secondary.IppoRecord) error {
	copied := *ippo
	copied.CreatedAt = "2024-03-15T09:00:00Z"
	copied.UpdatedAt = copied.CreatedAt
	m.ippos[ippo.ID] = &copied
	m.order = append(m.order, ippo.ID)
	return nil
}

func (m *mockIppoRepository) GetByID(ctx context.Context, id string) (*secondary.IppoRecord, error) {
	if r, ok := m.ippos[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, fmt.Errorf("ippo %s %w", id, secondary.ErrNotFound)
}

func (m *mockIppoRepository) List(ctx context.Context, filters secondary.IppoFilters) ([]*secondary.IppoRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.IppoRecord
	for _, id := range m.order {
		r, ok := m.ippos[id]
		if !ok {
			continue
		}
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		copied := *r
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockIppoRepository) UpdateStatus(ctx context.Context, id, status string, performedAt *time.Time) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.ippos[id]
	if !ok {
		return fmt.Errorf("ippo %s %w", id, secondary.ErrNotFound)
	}
	r.Status = status
	if performedAt != nil {
		r.PerformedAt = *performedAt
	}
	return nil
}

func (m *mockIppoRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.ippos[id]; !ok {
		return fmt.Errorf("ippo %s %w", id, secondary.ErrNotFound)
	}
	delete(m.ippos, id)
	return nil
}

func (m *mockIppoRepository) GetNextID(ctx context.Context) (string, error) {
	id := m.nextID
	m.nextID++
	return fmt.Sprintf("IPPO-%03d", id), nil
}

// mockPreferencesRepository implements secondary.PreferencesRepository for testing.
type mockPreferencesRepository struct {
	values map[string]string
	getErr error
	setErr error
}

func newMockPreferencesRepository() *mockPreferencesRepository {
	return &mockPreferencesRepository{values: make(map[string]string)}
}

func (m *mockPreferencesRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockPreferencesRepository) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// logCall records one LogWriter invocation.
type logCall struct {
	Action   string
	EntityID string
	Field    string
	Old      string
	New      string
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	calls []logCall
	err   error
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.calls = append(m.calls, logCall{Action: "create", EntityID: entityID})
	return m.err
}

func (m *mockLogWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	m.calls = append(m.calls, logCall{Action: "update", EntityID: entityID, Field: fieldName, Old: oldValue, New: newValue})
	return m.err
}

func (m *mockLogWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	m.calls = append(m.calls, logCall{Action: "delete", EntityID: entityID})
	return m.err
}

// mockActivityLogRepository implements secondary.ActivityLogRepository for testing.
type mockActivityLogRepository struct {
	logs      []*secondary.ActivityLogRecord
	lastLimit int
	pruneDays int
	pruned    int
	listErr   error
}

func (m *mockActivityLogRepository) Create(ctx context.Context, entry *secondary.ActivityLogRecord) error {
	m.logs = append(m.logs, entry)
	return nil
}

func (m *mockActivityLogRepository) List(ctx context.Context, filters secondary.ActivityLogFilters) ([]*secondary.ActivityLogRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.lastLimit = filters.Limit
	var result []*secondary.ActivityLogRecord
	for _, l := range m.logs {
		if filters.EntityID != "" && l.EntityID != filters.EntityID {
			continue
		}
		if filters.Action != "" && l.Action != filters.Action {
			continue
		}
		result = append(result, l)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockActivityLogRepository) GetNextID(ctx context.Context) (string, error) {
	return fmt.Sprintf("LOG-%04d", len(m.logs)+1), nil
}

func (m *mockActivityLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	m.pruneDays = days
	return m.pruned, nil
}
