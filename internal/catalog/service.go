package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/internal/utils"
)

const (
	ReadinessReady          = "ready"
	ReadinessNotInitialized = "not_initialized"

	defaultSearchLimit = 20
)

// Reader is the read side of the catalog store
type Reader interface {
	GetCatalogCard(ctx context.Context, id string) (*models.CatalogCard, error)
	ListCatalog(ctx context.Context, filter models.CatalogFilter) ([]*models.CatalogCard, int, error)
	SearchCatalog(ctx context.Context, query string, limit int) ([]*models.CatalogCard, int, error)
	GetCatalogFilterOptions(ctx context.Context) (*models.CatalogFilterOptions, error)
	GetCatalogStats(ctx context.Context) (*models.CatalogStats, error)
}

// SearchResult is a bounded quick-search result
type SearchResult struct {
	Data       []*models.CatalogCard `json:"data"`
	TotalCount int                   `json:"totalCount"`
}

// Readiness describes whether the catalog has been created and filled
type Readiness struct {
	Status     string     `json:"status"`
	TotalCards int        `json:"totalCards"`
	LastSynced *time.Time `json:"lastSynced"`
	Message    string     `json:"message"`
}

// StatusReport is the sync register merged with live catalog stats
type StatusReport struct {
	models.SyncStatus
	CatalogStats models.CatalogStats `json:"catalogStats"`
}

// Service serves read-only catalog queries
type Service struct {
	store  Reader
	logger *logrus.Logger
}

// NewService creates a catalog browse service
func NewService(store Reader, logger *logrus.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns one page of the catalog
func (s *Service) List(ctx context.Context, filter models.CatalogFilter) (*models.PagedResult[*models.CatalogCard], error) {
	filter.Page, filter.Limit = utils.Normalize(filter.Page, filter.Limit)
	filter.Search = strings.TrimSpace(filter.Search)

	cards, total, err := s.store.ListCatalog(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list catalog")
		return nil, err
	}

	return &models.PagedResult[*models.CatalogCard]{
		Data:       cards,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

// Filters lists facet values present in the catalog
func (s *Service) Filters(ctx context.Context) (*models.CatalogFilterOptions, error) {
	return s.store.GetCatalogFilterOptions(ctx)
}

// Search matches name or set name as a substring
func (s *Service) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewFieldValidationError("q", "Search query is required")
	}
	if limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > utils.MaxLimit {
		limit = utils.MaxLimit
	}

	cards, total, err := s.store.SearchCatalog(ctx, query, limit)
	if err != nil {
		s.logger.WithError(err).WithField("query", query).Error("Catalog search failed")
		return nil, err
	}
	return &SearchResult{Data: cards, TotalCount: total}, nil
}

// Get returns one catalog card by its catalog id
func (s *Service) Get(ctx context.Context, id string) (*models.CatalogCard, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewFieldValidationError("id", "catalog id is required")
	}
	return s.store.GetCatalogCard(ctx, id)
}

// Readiness reports whether the catalog table exists and how full it is
func (s *Service) Readiness(ctx context.Context) (*Readiness, error) {
	stats, err := s.store.GetCatalogStats(ctx)
	if err != nil {
		if db.Diagnose(err).Kind == db.FailureTableMissing {
			return &Readiness{
				Status:  ReadinessNotInitialized,
				Message: "Catalog table does not exist. Run the migrations first.",
			}, nil
		}
		return nil, err
	}

	r := &Readiness{
		Status:     ReadinessReady,
		TotalCards: stats.TotalCards,
		LastSynced: stats.LastSynced,
		Message:    "Catalog is empty. Start a sync to fill it.",
	}
	if stats.TotalCards > 0 {
		last := "Never"
		if stats.LastSynced != nil {
			last = stats.LastSynced.Format(time.RFC3339)
		}
		r.Message = fmt.Sprintf("Catalog has %d cards. Last synced: %s", stats.TotalCards, last)
	}
	return r, nil
}

// StatusReport merges a register snapshot with catalog stats. A stats
// failure yields zero stats rather than an error.
func (s *Service) StatusReport(ctx context.Context, status models.SyncStatus) *StatusReport {
	report := &StatusReport{SyncStatus: status}
	stats, err := s.store.GetCatalogStats(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to get catalog stats for sync status")
		return report
	}
	report.CatalogStats = *stats
	return report
}
