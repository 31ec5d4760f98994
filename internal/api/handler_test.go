package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/tcg-tracker/internal/cards"
	"github.com/Kamar-Folarin/tcg-tracker/internal/catalog"
	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
	apperrors "github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/internal/tcgapi"
)

// MockCardService is a mock implementation of CardService
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) Create(ctx context.Context, in cards.CardInput) (*cards.CardView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.CardView), args.Error(1)
}

func (m *MockCardService) Get(ctx context.Context, id string) (*cards.CardView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.CardView), args.Error(1)
}

func (m *MockCardService) Update(ctx context.Context, id string, patch cards.CardPatch) (*cards.CardView, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.CardView), args.Error(1)
}

func (m *MockCardService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardService) List(ctx context.Context, filter models.CollectionFilter) (*models.PagedResult[*cards.CardView], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PagedResult[*cards.CardView]), args.Error(1)
}

func (m *MockCardService) Filters(ctx context.Context) (*models.CollectionFilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollectionFilterOptions), args.Error(1)
}

func (m *MockCardService) Stats(ctx context.Context) (*models.CollectionStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollectionStats), args.Error(1)
}

func (m *MockCardService) CatalogPrice(ctx context.Context, id string) (*cards.PriceLookup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.PriceLookup), args.Error(1)
}

func (m *MockCardService) AddFromCatalog(ctx context.Context, in cards.FromCatalogInput) (*cards.CardView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cards.CardView), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, filter models.CatalogFilter) (*models.PagedResult[*models.CatalogCard], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PagedResult[*models.CatalogCard]), args.Error(1)
}

func (m *MockCatalogService) Filters(ctx context.Context) (*models.CatalogFilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogFilterOptions), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query string, limit int) (*catalog.SearchResult, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SearchResult), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*models.CatalogCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CatalogCard), args.Error(1)
}

func (m *MockCatalogService) Readiness(ctx context.Context) (*catalog.Readiness, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Readiness), args.Error(1)
}

func (m *MockCatalogService) StatusReport(ctx context.Context, status models.SyncStatus) *catalog.StatusReport {
	args := m.Called(ctx, status)
	return args.Get(0).(*catalog.StatusReport)
}

// MockSyncService is a mock implementation of SyncService
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Start(ctx context.Context) (models.SyncStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.SyncStatus), args.Error(1)
}

func (m *MockSyncService) Status() models.SyncStatus {
	args := m.Called()
	return args.Get(0).(models.SyncStatus)
}

// MockSearcher is a mock implementation of LiveSearcher
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, p tcgapi.SearchParams) (*tcgapi.SearchResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tcgapi.SearchResult), args.Error(1)
}

// MockVerifier is a mock implementation of TableVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyTables(ctx context.Context) ([]db.TableReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db.TableReport), args.Error(1)
}

type testMocks struct {
	cards    *MockCardService
	catalog  *MockCatalogService
	sync     *MockSyncService
	searcher *MockSearcher
	verifier *MockVerifier
}

func setupTestHandler() (*Handler, *testMocks) {
	mocks := &testMocks{
		cards:    new(MockCardService),
		catalog:  new(MockCatalogService),
		sync:     new(MockSyncService),
		searcher: new(MockSearcher),
		verifier: new(MockVerifier),
	}
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	handler := NewHandler(mocks.cards, mocks.catalog, mocks.sync, mocks.searcher, mocks.verifier, logger)
	return handler, mocks
}

func setupTestRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cards", handler.ListCards)
	router.POST("/cards", handler.CreateCard)
	router.POST("/cards/from-catalog", handler.AddFromCatalog)
	router.GET("/cards/stats", handler.GetCardStats)
	router.GET("/cards/:id", handler.GetCard)
	router.PATCH("/cards/:id", handler.UpdateCard)
	router.DELETE("/cards/:id", handler.DeleteCard)
	router.GET("/cards/:id/catalog-price", handler.GetCatalogPrice)
	router.GET("/catalog", handler.ListCatalog)
	router.GET("/catalog/search", handler.SearchCatalog)
	router.GET("/catalog/stats", handler.GetCatalogStats)
	router.GET("/catalog/:id", handler.GetCatalogCard)
	router.POST("/sync", handler.StartSync)
	router.GET("/sync/status", handler.GetSyncStatus)
	router.GET("/tcg/search", handler.SearchLive)
	router.GET("/health", handler.Health)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func testCardView(id string) *cards.CardView {
	return cards.NewCardView(&models.CollectionCard{
		ID:        id,
		Name:      "Charizard",
		Set:       "Base Set",
		Condition: models.ConditionNearMint,
		Value:     120.5,
		Quantity:  2,
	})
}

func TestListCards(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	expected := &models.PagedResult[*cards.CardView]{
		Data:       []*cards.CardView{testCardView("c1")},
		Pagination: models.NewPagination(1, 250, 1),
	}
	mocks.cards.On("List", mock.Anything, models.CollectionFilter{
		Search: "char",
		Set:    "Base Set",
		Page:   1,
		Limit:  250,
	}).Return(expected, nil)

	w := doRequest(router, "GET", "/cards?search=char&set=Base+Set&page=0&limit=999", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Data []struct {
			ID         string  `json:"id"`
			TotalValue float64 `json:"totalValue"`
		} `json:"data"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "c1", response.Data[0].ID)
	assert.Equal(t, 241.0, response.Data[0].TotalValue)
	assert.Equal(t, 1, response.Pagination.TotalPages)
	mocks.cards.AssertExpectations(t)
}

func TestCreateCard(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(m *MockCardService)
		expectedStatus int
		expectedError  ErrorResponse
	}{
		{
			name: "successful creation",
			body: `{"name": "Charizard", "set": "Base Set", "value": "120.50", "quantity": 2}`,
			setup: func(m *MockCardService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("cards.CardInput")).Return(testCardView("c1"), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing required fields",
			body: `{"name": "Charizard"}`,
			setup: func(m *MockCardService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil,
					apperrors.NewFieldValidationError("set", "Missing required fields: name, set, and value are required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: ErrorResponse{
				Error: "Missing required fields: name, set, and value are required",
				Field: "set",
			},
		},
		{
			name:           "malformed body",
			body:           `{"name": `,
			setup:          func(m *MockCardService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  ErrorResponse{Error: "Invalid request body"},
		},
		{
			name: "missing tables",
			body: `{"name": "Charizard", "set": "Base Set", "value": 1}`,
			setup: func(m *MockCardService) {
				m.On("Create", mock.Anything, mock.Anything).Return(nil,
					&pq.Error{Code: "42P01", Message: `relation "pokemon_cards" does not exist`})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: ErrorResponse{
				Error:   "Failed to create card",
				Details: "Database tables do not exist. Run the migrations (tcgctl migrate) to create them.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := setupTestHandler()
			router := setupTestRouter(handler)
			tt.setup(mocks.cards)

			w := doRequest(router, "POST", "/cards", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusCreated {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
			}
			mocks.cards.AssertExpectations(t)
		})
	}
}

func TestCreateCard_PassesLooseNumbers(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.cards.On("Create", mock.Anything, mock.MatchedBy(func(in cards.CardInput) bool {
		value, ok := in.Value.Float()
		return in.Name == "Pikachu" && ok && value == 3.5
	})).Return(testCardView("c2"), nil)

	w := doRequest(router, "POST", "/cards", `{"name": "Pikachu", "set": "Jungle", "value": "3.5"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.cards.AssertExpectations(t)
}

func TestGetCard(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockResponse   *cards.CardView
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "found",
			id:             "c1",
			mockResponse:   testCardView("c1"),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			id:             "missing",
			mockError:      apperrors.NewResourceNotFoundError("card", "missing"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "Card not found",
		},
		{
			name:           "database unreachable",
			id:             "c2",
			mockError:      apperrors.NewInternalError("query failed", assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to fetch card",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mocks := setupTestHandler()
			router := setupTestRouter(handler)
			if tt.mockResponse != nil {
				mocks.cards.On("Get", mock.Anything, tt.id).Return(tt.mockResponse, nil)
			} else {
				mocks.cards.On("Get", mock.Anything, tt.id).Return(nil, tt.mockError)
			}

			w := doRequest(router, "GET", "/cards/"+tt.id, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w).Error)
			}
		})
	}
}

func TestUpdateCard(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.cards.On("Update", mock.Anything, "c1", mock.MatchedBy(func(p cards.CardPatch) bool {
		return p.Quantity.Set && !p.Name.Set && p.Rarity.Set && p.Rarity.Null
	})).Return(testCardView("c1"), nil)

	w := doRequest(router, "PATCH", "/cards/c1", `{"quantity": 3, "rarity": null}`)
	assert.Equal(t, http.StatusOK, w.Code)

	mocks.cards.On("Update", mock.Anything, "c9", mock.Anything).Return(nil,
		apperrors.NewFieldValidationError("quantity", "quantity must be at least 1"))
	w = doRequest(router, "PATCH", "/cards/c9", `{"quantity": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "quantity", decodeError(t, w).Field)

	mocks.cards.AssertExpectations(t)
}

func TestDeleteCard(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.cards.On("Delete", mock.Anything, "c1").Return(nil)
	mocks.cards.On("Delete", mock.Anything, "missing").Return(apperrors.NewResourceNotFoundError("card", "missing"))

	w := doRequest(router, "DELETE", "/cards/c1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = doRequest(router, "DELETE", "/cards/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Card not found", decodeError(t, w).Error)
}

func TestGetCatalogPrice(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	market := 350.0
	number := "4"
	mocks.cards.On("CatalogPrice", mock.Anything, "c1").Return(&cards.PriceLookup{
		CatalogCard:  cards.CatalogRef{ID: "base1-4", Name: "Charizard", Set: "Base", Number: &number},
		Prices:       models.CatalogPrices{Market: &market},
		CurrentValue: 120.5,
	}, nil)
	mocks.cards.On("CatalogPrice", mock.Anything, "c2").Return(nil,
		apperrors.NewNotFoundError("Card not found in catalog", nil))

	w := doRequest(router, "GET", "/cards/c1/catalog-price", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var lookup cards.PriceLookup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lookup))
	assert.Equal(t, "base1-4", lookup.CatalogCard.ID)
	assert.Equal(t, 350.0, *lookup.Prices.Market)
	assert.Equal(t, 120.5, lookup.CurrentValue)

	w = doRequest(router, "GET", "/cards/c2/catalog-price", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Card not found in catalog", decodeError(t, w).Error)
}

func TestAddFromCatalog(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.cards.On("AddFromCatalog", mock.Anything, mock.MatchedBy(func(in cards.FromCatalogInput) bool {
		return in.CatalogID == "base1-4" && in.Condition == "Excellent"
	})).Return(testCardView("c1"), nil)
	mocks.cards.On("AddFromCatalog", mock.Anything, mock.MatchedBy(func(in cards.FromCatalogInput) bool {
		return in.CatalogID == "nope"
	})).Return(nil, apperrors.NewResourceNotFoundError("catalog card", "nope"))

	w := doRequest(router, "POST", "/cards/from-catalog", `{"catalogId": "base1-4", "condition": "Excellent"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "POST", "/cards/from-catalog", `{"catalogId": "nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Card not found in catalog", decodeError(t, w).Error)
}

func TestCardStats(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.cards.On("Stats", mock.Anything).Return(&models.CollectionStats{TotalCards: 7, TotalValue: 300.25, UniqueCards: 3}, nil)

	w := doRequest(router, "GET", "/cards/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalCards": 7, "totalValue": 300.25, "uniqueCards": 3}`, w.Body.String())
}

func TestListCatalog(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.catalog.On("List", mock.Anything, models.CatalogFilter{
		Rarity: "Rare Holo",
		Type:   "Fire",
		Page:   2,
		Limit:  50,
	}).Return(&models.PagedResult[*models.CatalogCard]{
		Data:       []*models.CatalogCard{{ID: "base1-4", Name: "Charizard"}},
		Pagination: models.NewPagination(2, 50, 51),
	}, nil)

	w := doRequest(router, "GET", "/catalog?rarity=Rare+Holo&type=Fire&page=2&limit=abc", "")
	assert.Equal(t, http.StatusOK, w.Code)
	mocks.catalog.AssertExpectations(t)
}

func TestSearchCatalog(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.catalog.On("Search", mock.Anything, "pika", 20).Return(&catalog.SearchResult{
		Data:       []*models.CatalogCard{{ID: "base1-58", Name: "Pikachu"}},
		TotalCount: 1,
	}, nil)
	mocks.catalog.On("Search", mock.Anything, "", 20).Return(nil,
		apperrors.NewFieldValidationError("q", "Search query is required"))

	w := doRequest(router, "GET", "/catalog/search?q=pika", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/catalog/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrorResponse{Error: "Search query is required", Field: "q"}, decodeError(t, w))
}

func TestGetCatalogCard(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.catalog.On("Get", mock.Anything, "xy1-1").Return(nil, apperrors.NewResourceNotFoundError("catalog card", "xy1-1"))

	w := doRequest(router, "GET", "/catalog/xy1-1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Card not found in catalog", decodeError(t, w).Error)
}

func TestGetCatalogStats(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.catalog.On("Readiness", mock.Anything).Return(&catalog.Readiness{
		Status:  catalog.ReadinessNotInitialized,
		Message: "Catalog table does not exist. Run the migrations first.",
	}, nil)

	w := doRequest(router, "GET", "/catalog/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var readiness catalog.Readiness
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readiness))
	assert.Equal(t, catalog.ReadinessNotInitialized, readiness.Status)
}

func TestStartSync(t *testing.T) {
	started := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	running := models.SyncStatus{Status: models.SyncRunning, Message: "Starting sync...", StartTime: &started}

	t.Run("accepted", func(t *testing.T) {
		handler, mocks := setupTestHandler()
		router := setupTestRouter(handler)
		mocks.sync.On("Start", mock.Anything).Return(running, nil)

		w := doRequest(router, "POST", "/sync", "")
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"success": true, "message": "Sync started in background", "status": "running"}`, w.Body.String())
	})

	t.Run("already running", func(t *testing.T) {
		handler, mocks := setupTestHandler()
		router := setupTestRouter(handler)
		progress := running
		progress.CardsProcessed = 500
		mocks.sync.On("Start", mock.Anything).Return(progress, apperrors.NewSyncInProgressError(started))
		mocks.sync.On("Status").Return(progress)

		w := doRequest(router, "POST", "/sync", "")
		assert.Equal(t, http.StatusConflict, w.Code)

		var response SyncConflictResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.Equal(t, "Sync is already in progress", response.Message)
		assert.Equal(t, 500, response.Status.CardsProcessed)
		assert.Equal(t, models.SyncRunning, response.Status.Status)
	})
}

func TestGetSyncStatus(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	status := models.IdleSyncStatus()
	mocks.sync.On("Status").Return(status)
	mocks.catalog.On("StatusReport", mock.Anything, status).Return(&catalog.StatusReport{
		SyncStatus:   status,
		CatalogStats: models.CatalogStats{TotalCards: 42},
	})

	w := doRequest(router, "GET", "/sync/status", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "idle", response["status"])
	assert.Equal(t, "No sync in progress", response["message"])
	stats := response["catalogStats"].(map[string]interface{})
	assert.Equal(t, 42.0, stats["totalCards"])
}

func TestSearchLive(t *testing.T) {
	handler, mocks := setupTestHandler()
	router := setupTestRouter(handler)

	mocks.searcher.On("Search", mock.Anything, tcgapi.SearchParams{
		Q:        "charizard",
		Page:     2,
		PageSize: 20,
	}).Return(&tcgapi.SearchResult{Data: []tcgapi.Card{{ID: "base1-4", Name: "Charizard"}}, Page: 2, PageSize: 20, Count: 1}, nil)
	mocks.searcher.On("Search", mock.Anything, tcgapi.SearchParams{
		Name:     "Mew",
		PageSize: 10,
	}).Return(nil, tcgapi.NewAPIError(503, "Service Unavailable", nil))

	w := doRequest(router, "GET", "/tcg/search?q=charizard&page=2", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/tcg/search?name=Mew&pageSize=10", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeError(t, w)
	assert.Equal(t, "Failed to search Pokemon cards", response.Error)
	assert.NotEmpty(t, response.Details)
	mocks.searcher.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	t.Run("all tables present", func(t *testing.T) {
		handler, mocks := setupTestHandler()
		router := setupTestRouter(handler)
		mocks.verifier.On("VerifyTables", mock.Anything).Return([]db.TableReport{
			{Name: "pokemon_cards", Exists: true, Rows: 3},
			{Name: "tcg_catalog", Exists: true, Rows: 18000},
		}, nil)

		w := doRequest(router, "GET", "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ok", response.Status)
		assert.Len(t, response.Tables, 2)
	})

	t.Run("missing table", func(t *testing.T) {
		handler, mocks := setupTestHandler()
		router := setupTestRouter(handler)
		mocks.verifier.On("VerifyTables", mock.Anything).Return([]db.TableReport{
			{Name: "pokemon_cards", Exists: true},
			{Name: "tcg_catalog", Exists: false},
		}, nil)

		w := doRequest(router, "GET", "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "degraded", response.Status)
	})
}
