// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	coreippo "github.com/example/ippo/internal/core/ippo"
	"github.com/example/ippo/internal/ports/secondary"
)

// IppoRepository implements secondary.IppoRepository with SQLite.
type IppoRepository struct {
	db *sql.DB
}

// NewIppoRepository creates a new SQLite IPPO repository.
func NewIppoRepository(db *sql.DB) *IppoRepository {
	return &IppoRepository{db: db}
}

// scanIppo scans an ippo row into an IppoRecord.
func scanIppo(scanner interface {
	Scan(dest ...any) error
}) (*secondary.IppoRecord, error) {
	var (
		performedAt sql.NullTime
		createdAt   time.Time
		updatedAt   time.Time
	)

	record := &secondary.IppoRecord{}
	err := scanner.Scan(
		&record.ID, &record.Title, &record.Status, &performedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if performedAt.Valid {
		record.PerformedAt = performedAt.Time.UTC()
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

const ippoSelectCols = "id, title, status, performed_at, created_at, updated_at"

func notFound(id string) error {
	return fmt.Errorf("ippo %s %w", id, secondary.ErrNotFound)
}

// Create persists a new IPPO.
func (r *IppoRepository) Create(ctx context.Context, ippo *secondary.IppoRecord) error {
	status := ippo.Status
	if status == "" {
		status = "pending"
	}

	var performedAt sql.NullTime
	if !ippo.PerformedAt.IsZero() {
		performedAt = sql.NullTime{Time: ippo.PerformedAt.UTC(), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO ippos (id, title, status, performed_at) VALUES (?, ?, ?, ?)",
		ippo.ID, ippo.Title, status, performedAt,
	)
	if err != nil {
		return secondary.NewStorageError("create ippo", err)
	}

	return nil
}

// GetByID retrieves an IPPO by its ID.
func (r *IppoRepository) GetByID(ctx context.Context, id string) (*secondary.IppoRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+ippoSelectCols+" FROM ippos WHERE id = ?",
		id,
	)

	record, err := scanIppo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, secondary.NewStorageError("get ippo", err)
	}

	return record, nil
}

// List retrieves IPPOs matching the given filters, in creation order.
func (r *IppoRepository) List(ctx context.Context, filters secondary.IppoFilters) ([]*secondary.IppoRecord, error) {
	query := "SELECT " + ippoSelectCols + " FROM ippos WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY CAST(SUBSTR(id, 6) AS INTEGER) ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, secondary.NewStorageError("list ippos", err)
	}
	defer rows.Close()

	var ippos []*secondary.IppoRecord
	for rows.Next() {
		record, err := scanIppo(rows)
		if err != nil {
			return nil, secondary.NewStorageError("scan ippo", err)
		}
		ippos = append(ippos, record)
	}
	if err := rows.Err(); err != nil {
		return nil, secondary.NewStorageError("list ippos", err)
	}

	return ippos, nil
}

// UpdateStatus sets the status and, when performedAt is non-nil, the performed time.
func (r *IppoRepository) UpdateStatus(ctx context.Context, id, status string, performedAt *time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return secondary.NewStorageError("begin status update", err)
	}
	defer tx.Rollback()

	query := "UPDATE ippos SET status = ?, updated_at = CURRENT_TIMESTAMP"
	args := []any{status}

	if performedAt != nil {
		query += ", performed_at = ?"
		args = append(args, performedAt.UTC())
	}

	query += " WHERE id = ?"
	args = append(args, id)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return secondary.NewStorageError("update ippo status", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound(id)
	}

	if err := tx.Commit(); err != nil {
		return secondary.NewStorageError("commit status update", err)
	}

	return nil
}

// Delete removes an IPPO from persistence.
func (r *IppoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM ippos WHERE id = ?", id)
	if err != nil {
		return secondary.NewStorageError("delete ippo", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound(id)
	}

	return nil
}

// GetNextID returns the next available IPPO ID.
func (r *IppoRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM ippos",
	).Scan(&maxID)
	if err != nil {
		return "", secondary.NewStorageError("get next ippo ID", err)
	}

	return coreippo.GenerateIppoID(maxID), nil
}

// Ensure IppoRepository implements the interface
var _ secondary.IppoRepository = (*IppoRepository)(nil)
