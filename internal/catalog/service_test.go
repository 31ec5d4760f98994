package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

type MockReader struct {
	mock.Mock
}

func (m *MockReader) GetCatalogCard(ctx context.Context, id string) (*models.CatalogCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogCard), args.Error(1)
}

func (m *MockReader) ListCatalog(ctx context.Context, filter models.CatalogFilter) ([]*models.CatalogCard, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.CatalogCard), args.Int(1), args.Error(2)
}

func (m *MockReader) SearchCatalog(ctx context.Context, query string, limit int) ([]*models.CatalogCard, int, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.CatalogCard), args.Int(1), args.Error(2)
}

func (m *MockReader) GetCatalogFilterOptions(ctx context.Context) (*models.CatalogFilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogFilterOptions), args.Error(1)
}

func (m *MockReader) GetCatalogStats(ctx context.Context) (*models.CatalogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogStats), args.Error(1)
}

func newTestService(store Reader) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(store, logger)
}

func TestService_ListClampsPaging(t *testing.T) {
	store := new(MockReader)
	store.On("ListCatalog", mock.Anything, models.CatalogFilter{Search: "char", Page: 1, Limit: 50}).
		Return([]*models.CatalogCard{{ID: "base1-4"}}, 101, nil)

	result, err := newTestService(store).List(context.Background(), models.CatalogFilter{Search: " char ", Page: -2, Limit: 0})
	require.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 50, Total: 101, TotalPages: 3}, result.Pagination)
}

func TestService_Search(t *testing.T) {
	store := new(MockReader)
	store.On("SearchCatalog", mock.Anything, "pika", 20).Return([]*models.CatalogCard{{ID: "base1-58"}}, 1, nil)

	svc := newTestService(store)
	result, err := svc.Search(context.Background(), "pika", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)

	_, err = svc.Search(context.Background(), "  ", 10)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestService_Readiness(t *testing.T) {
	ctx := context.Background()

	t.Run("ready with cards", func(t *testing.T) {
		synced := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		store := new(MockReader)
		store.On("GetCatalogStats", mock.Anything).Return(&models.CatalogStats{TotalCards: 18000, LastSynced: &synced}, nil)

		r, err := newTestService(store).Readiness(ctx)
		require.NoError(t, err)
		assert.Equal(t, ReadinessReady, r.Status)
		assert.Equal(t, "Catalog has 18000 cards. Last synced: 2024-06-01T10:00:00Z", r.Message)
	})

	t.Run("empty", func(t *testing.T) {
		store := new(MockReader)
		store.On("GetCatalogStats", mock.Anything).Return(&models.CatalogStats{}, nil)

		r, err := newTestService(store).Readiness(ctx)
		require.NoError(t, err)
		assert.Equal(t, ReadinessReady, r.Status)
		assert.Zero(t, r.TotalCards)
	})

	t.Run("table missing", func(t *testing.T) {
		store := new(MockReader)
		store.On("GetCatalogStats", mock.Anything).
			Return(nil, fmt.Errorf("failed to get catalog stats: %w", &pq.Error{Code: "42P01", Message: `relation "tcg_catalog" does not exist`}))

		r, err := newTestService(store).Readiness(ctx)
		require.NoError(t, err)
		assert.Equal(t, ReadinessNotInitialized, r.Status)
	})

	t.Run("other failures propagate", func(t *testing.T) {
		store := new(MockReader)
		store.On("GetCatalogStats", mock.Anything).Return(nil, fmt.Errorf("boom"))

		_, err := newTestService(store).Readiness(ctx)
		assert.Error(t, err)
	})
}

func TestService_StatusReport(t *testing.T) {
	status := models.IdleSyncStatus()

	store := new(MockReader)
	store.On("GetCatalogStats", mock.Anything).Return(&models.CatalogStats{TotalCards: 12}, nil)
	report := newTestService(store).StatusReport(context.Background(), status)
	assert.Equal(t, models.SyncIdle, report.Status)
	assert.Equal(t, 12, report.CatalogStats.TotalCards)

	failing := new(MockReader)
	failing.On("GetCatalogStats", mock.Anything).Return(nil, fmt.Errorf("down"))
	report = newTestService(failing).StatusReport(context.Background(), status)
	assert.Zero(t, report.CatalogStats.TotalCards)
	assert.Nil(t, report.CatalogStats.LastSynced)
}
