package cli

import (
	"context"
	"time"

	"github.com/fatih/color"

	"github.com/example/ippo/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// mockIppoService implements primary.IppoService for testing
type mockIppoService struct {
	createIppoFn     func(ctx context.Context, req primary.CreateIppoRequest) (*primary.CreateIppoResponse, error)
	listIpposFn      func(ctx context.Context, filters primary.IppoFilters) ([]*primary.Ippo, error)
	getIppoFn        func(ctx context.Context, ippoID string) (*primary.Ippo, error)
	achieveIppoFn    func(ctx context.Context, req primary.AchieveIppoRequest) error
	stockIppoFn      func(ctx context.Context, ippoID string) error
	deleteIppoFn     func(ctx context.Context, ippoID string) error
	listSectionsFn   func(ctx context.Context, now time.Time) ([]*primary.AchievedSection, error)
	deleteAchievedFn func(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error)
	stockAchievedFn  func(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error)

	// Track calls for verification
	lastAchieveReq primary.AchieveIppoRequest
	lastSelection  primary.AchievedSelection
	lastFilters    primary.IppoFilters
}

func (m *mockIppoService) CreateIppo(ctx context.Context, req primary.CreateIppoRequest) (*primary.CreateIppoResponse, error) {
	if m.createIppoFn != nil {
		return m.createIppoFn(ctx, req)
	}
	return &primary.CreateIppoResponse{
		IppoID: "IPPO-001",
		Ippo:   &primary.Ippo{ID: "IPPO-001", Title: req.Title, Status: "pending"},
	}, nil
}

func (m *mockIppoService) GetIppo(ctx context.Context, ippoID string) (*primary.Ippo, error) {
	if m.getIppoFn != nil {
		return m.getIppoFn(ctx, ippoID)
	}
	return &primary.Ippo{ID: ippoID, Title: "Test IPPO", Status: "pending", CreatedAt: "2024-03-01T09:00:00Z"}, nil
}

func (m *mockIppoService) ListIppos(ctx context.Context, filters primary.IppoFilters) ([]*primary.Ippo, error) {
	m.lastFilters = filters
	if m.listIpposFn != nil {
		return m.listIpposFn(ctx, filters)
	}
	return []*primary.Ippo{}, nil
}

func (m *mockIppoService) AchieveIppo(ctx context.Context, req primary.AchieveIppoRequest) error {
	m.lastAchieveReq = req
	if m.achieveIppoFn != nil {
		return m.achieveIppoFn(ctx, req)
	}
	return nil
}

func (m *mockIppoService) StockIppo(ctx context.Context, ippoID string) error {
	if m.stockIppoFn != nil {
		return m.stockIppoFn(ctx, ippoID)
	}
	return nil
}

func (m *mockIppoService) DeleteIppo(ctx context.Context, ippoID string) error {
	if m.deleteIppoFn != nil {
		return m.deleteIppoFn(ctx, ippoID)
	}
	return nil
}

func (m *mockIppoService) ListAchievedSections(ctx context.Context, now time.Time) ([]*primary.AchievedSection, error) {
	if m.listSectionsFn != nil {
		return m.listSectionsFn(ctx, now)
	}
	return []*primary.AchievedSection{}, nil
}

func (m *mockIppoService) SelectAchieved(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error) {
	m.lastSelection = sel
	return &primary.Ippo{ID: "IPPO-001", Title: "Test IPPO", Status: "achieved"}, nil
}

func (m *mockIppoService) DeleteAchieved(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error) {
	m.lastSelection = sel
	if m.deleteAchievedFn != nil {
		return m.deleteAchievedFn(ctx, sel)
	}
	return &primary.Ippo{ID: "IPPO-001", Title: "Test IPPO", Status: "achieved"}, nil
}

func (m *mockIppoService) StockAchieved(ctx context.Context, sel primary.AchievedSelection) (*primary.Ippo, error) {
	m.lastSelection = sel
	if m.stockAchievedFn != nil {
		return m.stockAchievedFn(ctx, sel)
	}
	return &primary.Ippo{ID: "IPPO-001", Title: "Test IPPO", Status: "stocked"}, nil
}

var _ primary.IppoService = (*mockIppoService)(nil)
