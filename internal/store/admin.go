package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stylehaus/storefront-client/internal/api"
	"github.com/stylehaus/storefront-client/internal/models"
)

const DefaultAdminTab = "dashboard"

type DashboardStats struct {
	Products    int
	Categories  int
	RFQRequests int
	NewRFQ      int
}

// AdminStore owns console-only UI state: the active tab, login form
// visibility and the dashboard counters.
type AdminStore struct {
	mu     sync.Mutex
	client api.Client
	logger *slog.Logger

	activeTab     string
	showLoginForm bool
	stats         DashboardStats
	loading       bool
	errMsg        string
}

func NewAdminStore(client api.Client, logger *slog.Logger) *AdminStore {
	return &AdminStore{
		client:    client,
		logger:    logger,
		activeTab: DefaultAdminTab,
	}
}

type AdminSnapshot struct {
	ActiveTab     string
	ShowLoginForm bool
	Stats         DashboardStats
	Loading       bool
	Error         string
}

func (s *AdminStore) Snapshot() AdminSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return AdminSnapshot{
		ActiveTab:     s.activeTab,
		ShowLoginForm: s.showLoginForm,
		Stats:         s.stats,
		Loading:       s.loading,
		Error:         s.errMsg,
	}
}

func (s *AdminStore) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeTab = tab
}

func (s *AdminStore) SetShowLoginForm(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showLoginForm = show
}

func (s *AdminStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = ""
}

func (s *AdminStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeTab = DefaultAdminTab
	s.showLoginForm = false
	s.stats = DashboardStats{}
	s.loading = false
	s.errMsg = ""
}

// RefreshStats recomputes the dashboard counters. Listing calls ask for a
// single item each; only the totals matter here.
func (s *AdminStore) RefreshStats(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	products, err := s.client.Products(ctx, models.ProductFilters{Limit: 1})
	if err != nil {
		return s.finishStats(DashboardStats{}, err)
	}

	categories, err := s.client.Categories(ctx)
	if err != nil {
		return s.finishStats(DashboardStats{}, err)
	}

	rfqAll, err := s.client.RFQRequests(ctx, models.RFQFilters{Limit: 1})
	if err != nil {
		return s.finishStats(DashboardStats{}, err)
	}

	rfqNew, err := s.client.RFQRequests(ctx, models.RFQFilters{Status: models.RFQStatusNew, Limit: 1})
	if err != nil {
		return s.finishStats(DashboardStats{}, err)
	}

	stats := DashboardStats{
		Products:    products.Total,
		Categories:  len(categories),
		RFQRequests: rfqAll.Total,
		NewRFQ:      rfqNew.Total,
	}

	return s.finishStats(stats, nil)
}

// finishStats keeps the previous counters when any call failed.
func (s *AdminStore) finishStats(stats DashboardStats, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to refresh dashboard stats")

		return err
	}

	s.stats = stats

	return nil
}
