package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/tcg-tracker/internal/cards"
	"github.com/Kamar-Folarin/tcg-tracker/internal/catalog"
	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/internal/tcgapi"
	"github.com/Kamar-Folarin/tcg-tracker/internal/utils"
)

// CardService manages the user's collection
type CardService interface {
	Create(ctx context.Context, in cards.CardInput) (*cards.CardView, error)
	Get(ctx context.Context, id string) (*cards.CardView, error)
	Update(ctx context.Context, id string, patch cards.CardPatch) (*cards.CardView, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.CollectionFilter) (*models.PagedResult[*cards.CardView], error)
	Filters(ctx context.Context) (*models.CollectionFilterOptions, error)
	Stats(ctx context.Context) (*models.CollectionStats, error)
	CatalogPrice(ctx context.Context, id string) (*cards.PriceLookup, error)
	AddFromCatalog(ctx context.Context, in cards.FromCatalogInput) (*cards.CardView, error)
}

// CatalogService browses the mirrored catalog
type CatalogService interface {
	List(ctx context.Context, filter models.CatalogFilter) (*models.PagedResult[*models.CatalogCard], error)
	Filters(ctx context.Context) (*models.CatalogFilterOptions, error)
	Search(ctx context.Context, query string, limit int) (*catalog.SearchResult, error)
	Get(ctx context.Context, id string) (*models.CatalogCard, error)
	Readiness(ctx context.Context) (*catalog.Readiness, error)
	StatusReport(ctx context.Context, status models.SyncStatus) *catalog.StatusReport
}

// SyncService starts catalog sync runs and reports on them
type SyncService interface {
	Start(ctx context.Context) (models.SyncStatus, error)
	Status() models.SyncStatus
}

// LiveSearcher queries the external catalog directly
type LiveSearcher interface {
	Search(ctx context.Context, p tcgapi.SearchParams) (*tcgapi.SearchResult, error)
}

// TableVerifier reports on the database schema
type TableVerifier interface {
	VerifyTables(ctx context.Context) ([]db.TableReport, error)
}

type Handler struct {
	cardService    CardService
	catalogService CatalogService
	syncService    SyncService
	searcher       LiveSearcher
	verifier       TableVerifier
	logger         *logrus.Logger
}

func NewHandler(
	cardService CardService,
	catalogService CatalogService,
	syncService SyncService,
	searcher LiveSearcher,
	verifier TableVerifier,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		cardService:    cardService,
		catalogService: catalogService,
		syncService:    syncService,
		searcher:       searcher,
		verifier:       verifier,
		logger:         logger,
	}
}

// respondWithError maps err onto a status code. notFound is the message used
// when the error carries no message of its own; action prefixes 500 bodies.
func (h *Handler) respondWithError(c *gin.Context, err error, notFound, action string) {
	switch {
	case errors.IsNotFound(err):
		msg := notFound
		var appErr *errors.AppError
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: msg})
	case errors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errors.MessageOf(err), Field: errors.FieldOf(err)})
	case errors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: errors.MessageOf(err)})
	default:
		h.logger.WithError(err).WithField("path", c.FullPath()).Error(action)
		details := err.Error()
		if hint := db.Diagnose(err).Hint; hint != "" {
			details = hint
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: action, Details: details})
	}
}

func invalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

func (h *Handler) ListCards(c *gin.Context) {
	filter := models.CollectionFilter{
		Search:    c.Query("search"),
		Set:       c.Query("set"),
		Rarity:    c.Query("rarity"),
		Condition: c.Query("condition"),
		Type:      c.Query("type"),
		Series:    c.Query("series"),
		Page:      utils.ClampPage(c.Query("page")),
		Limit:     utils.ClampLimit(c.Query("limit")),
	}

	result, err := h.cardService.List(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, "", "Failed to fetch cards")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) CreateCard(c *gin.Context) {
	var in cards.CardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c)
		return
	}

	card, err := h.cardService.Create(c.Request.Context(), in)
	if err != nil {
		h.respondWithError(c, err, "", "Failed to create card")
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *Handler) AddFromCatalog(c *gin.Context) {
	var in cards.FromCatalogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidBody(c)
		return
	}

	card, err := h.cardService.AddFromCatalog(c.Request.Context(), in)
	if err != nil {
		h.respondWithError(c, err, "Card not found in catalog", "Failed to add card from catalog")
		return
	}
	c.JSON(http.StatusCreated, card)
}

func (h *Handler) GetCardFilters(c *gin.Context) {
	options, err := h.cardService.Filters(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "", "Failed to fetch filter options")
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *Handler) GetCardStats(c *gin.Context) {
	stats, err := h.cardService.Stats(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "", "Failed to fetch collection stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetCard(c *gin.Context) {
	card, err := h.cardService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, "Card not found", "Failed to fetch card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) UpdateCard(c *gin.Context) {
	var patch cards.CardPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		invalidBody(c)
		return
	}

	card, err := h.cardService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondWithError(c, err, "Card not found", "Failed to update card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteCard(c *gin.Context) {
	if err := h.cardService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondWithError(c, err, "Card not found", "Failed to delete card")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) GetCatalogPrice(c *gin.Context) {
	lookup, err := h.cardService.CatalogPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, "Card not found", "Failed to fetch catalog price")
		return
	}
	c.JSON(http.StatusOK, lookup)
}

func (h *Handler) ListCatalog(c *gin.Context) {
	filter := models.CatalogFilter{
		Search: c.Query("search"),
		Set:    c.Query("set"),
		Rarity: c.Query("rarity"),
		Series: c.Query("series"),
		Type:   c.Query("type"),
		Page:   utils.ClampPage(c.Query("page")),
		Limit:  utils.ClampLimit(c.Query("limit")),
	}

	result, err := h.catalogService.List(c.Request.Context(), filter)
	if err != nil {
		h.respondWithError(c, err, "", "Failed to fetch catalog")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetCatalogFilters(c *gin.Context) {
	options, err := h.catalogService.Filters(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "", "Failed to fetch catalog filter options")
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *Handler) SearchCatalog(c *gin.Context) {
	limit := utils.ClampLimitWithDefault(c.Query("limit"), 20)
	result, err := h.catalogService.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		h.respondWithError(c, err, "", "Failed to search catalog")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetCatalogStats(c *gin.Context) {
	readiness, err := h.catalogService.Readiness(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "", "Failed to fetch catalog stats")
		return
	}
	c.JSON(http.StatusOK, readiness)
}

func (h *Handler) GetCatalogCard(c *gin.Context) {
	card, err := h.catalogService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondWithError(c, err, "Card not found in catalog", "Failed to fetch catalog card")
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) StartSync(c *gin.Context) {
	status, err := h.syncService.Start(c.Request.Context())
	if err != nil {
		if errors.IsConflict(err) {
			c.JSON(http.StatusConflict, SyncConflictResponse{
				Success: false,
				Message: "Sync is already in progress",
				Status:  h.syncService.Status(),
			})
			return
		}
		h.respondWithError(c, err, "", "Failed to start sync")
		return
	}

	h.logger.WithField("started_at", status.StartTime).Info("Catalog sync started")
	c.JSON(http.StatusAccepted, SyncStartedResponse{
		Success: true,
		Message: "Sync started in background",
		Status:  status.Status,
	})
}

func (h *Handler) GetSyncStatus(c *gin.Context) {
	report := h.catalogService.StatusReport(c.Request.Context(), h.syncService.Status())
	c.JSON(http.StatusOK, report)
}

func (h *Handler) SearchLive(c *gin.Context) {
	params := tcgapi.SearchParams{
		Q:        c.Query("q"),
		Name:     strings.TrimSpace(c.Query("name")),
		Set:      strings.TrimSpace(c.Query("set")),
		Number:   strings.TrimSpace(c.Query("number")),
		Rarity:   strings.TrimSpace(c.Query("rarity")),
		Page:     queryInt(c, "page", 0),
		PageSize: queryInt(c, "pageSize", 20),
	}

	result, err := h.searcher.Search(c.Request.Context(), params)
	if err != nil {
		h.logger.WithError(err).Error("Failed to search Pokemon cards")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to search Pokemon cards",
			Details: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) Health(c *gin.Context) {
	reports, err := h.verifier.VerifyTables(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err, "", "Failed to verify tables")
		return
	}

	resp := HealthResponse{Status: "ok", Tables: reports}
	code := http.StatusOK
	if !db.AllPresent(reports) {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
