package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/ippo/internal/core/ippo"
	"github.com/example/ippo/internal/core/period"
	"github.com/example/ippo/internal/logging"
	"github.com/example/ippo/internal/ports/primary"
	"github.com/example/ippo/internal/ports/secondary"
)

// IppoServiceImpl implements the IppoService interface.
type IppoServiceImpl struct {
	ippoRepo  secondary.IppoRepository
	prefsRepo secondary.PreferencesRepository
	logWriter secondary.LogWriter
	now       func() time.Time
}

// NewIppoService creates a new IppoService with injected dependencies.
func NewIppoService(
	ippoRepo secondary.IppoRepository,
	prefsRepo secondary.PreferencesRepository,
	logWriter secondary.LogWriter,
) *IppoServiceImpl {
	return &IppoServiceImpl{
		ippoRepo:  ippoRepo,
		prefsRepo: prefsRepo,
		logWriter: logWriter,
		now:       time.Now,
	}
}

// CreateIppo creates a new pending IPPO.
func (s *IppoServiceImpl) CreateIppo(ctx context.Context, req primary.CreateIppoRequest) (*primary.CreateIppoResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	nextID, err := s.ippoRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate IPPO ID: %w", err)
	}

	record := &secondary.IppoRecord{
		ID:     nextID,
		Title:  title,
		Status: string(ippo.InitialStatus()),
	}
	if err := s.ippoRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create IPPO: %w", err)
	}

	created, err := s.ippoRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created IPPO: %w", err)
	}

	s.audit(ctx, s.logWriter.LogCreate(ctx, "ippo", nextID), nextID)
	logging.Debug(s.logCtx(ctx), "ippo created", slog.String("ippo_id", nextID))

	return &primary.CreateIppoResponse{
		IppoID: created.ID,
		Ippo:   recordToIppo(created),
	}, nil
}

// GetIppo retrieves an IPPO by ID.
func (s *IppoServiceImpl) GetIppo(ctx context.Context, ippoID string) (*primary.Ippo, error) {
	record, err := s.ippoRepo.GetByID(ctx, ippoID)
	if err != nil {
		return nil, err
	}
	return recordToIppo(record), nil
}

// ListIppos lists IPPOs with optional filters.
func (s *IppoServiceImpl) ListIppos(ctx context.Context, filters primary.IppoFilters) ([]*primary.Ippo, error) {
	if filters.Status != "" {
		if _, err := ippo.ParseStatus(filters.Status); err != nil {
			return nil, err
		}
	}

	records, err := s.ippoRepo.List(ctx, secondary.IppoFilters{Status: filters.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list IPPOs: %w", err)
	}

	ippos := make([]*primary.Ippo, len(records))
	for i, r := range records {
		ippos[i] = recordToIppo(r)
	}
	return ippos, nil
}

// AchieveIppo marks an IPPO as achieved at the given time.
func (s *IppoServiceImpl) AchieveIppo(ctx context.Context, req primary.AchieveIppoRequest) error {
	record, err := s.ippoRepo.GetByID(ctx, req.IppoID)
	if err != nil {
		return err
	}

	guardCtx := ippo.StatusTransitionContext{
		IppoID: record.ID,
		Status: ippo.Status(record.Status),
	}
	if result := ippo.CanAchieveIppo(guardCtx); !result.Allowed {
		return result.Error()
	}

	at := req.PerformedAt
	if at.IsZero() {
		at = s.now()
	}
	return s.transition(ctx, record, ippo.StatusAchieved, at)
}

// StockIppo moves an achieved IPPO back to stock.
func (s *IppoServiceImpl) StockIppo(ctx context.Context, ippoID string) error {
	record, err := s.ippoRepo.GetByID(ctx, ippoID)
	if err != nil {
		return err
	}
	return s.stock(ctx, record)
}

// DeleteIppo deletes an achieved IPPO.
func (s *IppoServiceImpl) DeleteIppo(ctx context.Context, ippoID string) error {
	record, err := s.ippoRepo.GetByID(ctx, ippoID)
	if err != nil {
		return err
	}
	return s.delete(ctx, record)
}

// ListAchievedSections returns the last week, this month and this year sections for now.
func (s *IppoServiceImpl) ListAchievedSections(ctx context.Context, now time.Time) ([]*primary.AchievedSection, error) {
	buckets, err := s.buckets(ctx, now)
	if err != nil {
		return nil, err
	}

	sections := make([]*primary.AchievedSection, len(buckets))
	for i, b := range buckets {
		ippos := make([]*primary.Ippo, len(b.Items))
		for j, r := range b.Items {
			ippos[j] = recordToIppo(r)
		}
		sections[i] = &primary.AchievedSection{
			Title: b.Title,
			Start: b.Range.Start,
			End:   b.Range.End,
			Ippos: ippos,
		}
	}
	return sections, nil
}

// SelectAchieved returns the IPPO shown at a section row.
func (s *IppoServiceImpl) SelectAchieved(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error) {
	record, err := s.selectRecord(ctx, sel)
	if err != nil {
		return nil, err
	}
	return recordToIppo(record), nil
}

// DeleteAchieved deletes the IPPO shown at a section row.
func (s *IppoServiceImpl) DeleteAchieved(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error) {
	record, err := s.selectRecord(ctx, sel)
	if err != nil {
		return nil, err
	}
	if err := s.delete(ctx, record); err != nil {
		return nil, err
	}
	return recordToIppo(record), nil
}

// StockAchieved stocks the IPPO shown at a section row.
func (s *IppoServiceImpl) StockAchieved(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error) {
	record, err := s.selectRecord(ctx, sel)
	if err != nil {
		return nil, err
	}
	if err := s.stock(ctx, record); err != nil {
		return nil, err
	}
	record.Status = string(ippo.StatusStocked)
	return recordToIppo(record), nil
}

// Helper methods

func (s *IppoServiceImpl) buckets(ctx context.Context, now time.Time) ([]period.Bucket[*secondary.IppoRecord], error) {
	records, err := s.ippoRepo.List(ctx, secondary.IppoFilters{Status: string(ippo.StatusAchieved)})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achieved IPPOs: %w", err)
	}

	prefs, err := loadPreferences(ctx, s.prefsRepo)
	if err != nil {
		return nil, err
	}

	return period.Buckets(prefs, now, records, func(r *secondary.IppoRecord) time.Time {
		return r.PerformedAt
	})
}

func (s *IppoServiceImpl) selectRecord(ctx context.Context, sel primary.AchievedSelection) (*secondary.IppoRecord, error) {
	buckets, err := s.buckets(ctx, sel.Now)
	if err != nil {
		return nil, err
	}
	if sel.Section < 0 || sel.Section >= len(buckets) {
		return nil, fmt.Errorf("section %d %w", sel.Section, secondary.ErrNotFound)
	}

	b := buckets[sel.Section]
	if sel.Row < 0 || sel.Row >= len(b.Items) {
		return nil, fmt.Errorf("%s row %d %w (%d rows)", b.Title, sel.Row+1, secondary.ErrNotFound, len(b.Items))
	}
	return b.Items[sel.Row], nil
}

func (s *IppoServiceImpl) stock(ctx context.Context, record *secondary.IppoRecord) error {
	guardCtx := ippo.StatusTransitionContext{
		IppoID: record.ID,
		Status: ippo.Status(record.Status),
	}
	if result := ippo.CanStockIppo(guardCtx); !result.Allowed {
		return result.Error()
	}
	return s.transition(ctx, record, ippo.StatusStocked, s.now())
}

func (s *IppoServiceImpl) delete(ctx context.Context, record *secondary.IppoRecord) error {
	guardCtx := ippo.StatusTransitionContext{
		IppoID: record.ID,
		Status: ippo.Status(record.Status),
	}
	if result := ippo.CanDeleteAchievedIppo(guardCtx); !result.Allowed {
		return result.Error()
	}

	if err := s.ippoRepo.Delete(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete IPPO: %w", err)
	}

	s.audit(ctx, s.logWriter.LogDelete(ctx, "ippo", record.ID), record.ID)
	logging.Debug(s.logCtx(ctx), "ippo deleted", slog.String("ippo_id", record.ID))
	return nil
}

func (s *IppoServiceImpl) transition(ctx context.Context, record *secondary.IppoRecord, next ippo.Status, at time.Time) error {
	result := ippo.ApplyStatusTransition(next, at)

	if err := s.ippoRepo.UpdateStatus(ctx, record.ID, string(result.NewStatus), result.PerformedAt); err != nil {
		return fmt.Errorf("failed to update IPPO status: %w", err)
	}

	s.audit(ctx, s.logWriter.LogUpdate(ctx, "ippo", record.ID, "status", record.Status, string(result.NewStatus)), record.ID)
	logging.Debug(s.logCtx(ctx), "ippo status changed",
		slog.String("ippo_id", record.ID),
		slog.String("from", record.Status),
		slog.String("to", string(result.NewStatus)),
	)
	return nil
}

// audit reports a failed activity log write without failing the mutation.
func (s *IppoServiceImpl) audit(ctx context.Context, err error, ippoID string) {
	if err != nil {
		logging.Warn(s.logCtx(ctx), "activity log write failed",
			slog.String("ippo_id", ippoID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *IppoServiceImpl) logCtx(ctx context.Context) context.Context {
	return logging.WithComponent(ctx, "ippo")
}

func recordToIppo(r *secondary.IppoRecord) *primary.Ippo {
	return &primary.Ippo{
		ID:          r.ID,
		Title:       r.Title,
		Status:      r.Status,
		PerformedAt: r.PerformedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure IppoServiceImpl implements the interface
var _ primary.IppoService = (*IppoServiceImpl)(nil)
