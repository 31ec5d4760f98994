package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title TCG Tracker API
// @version 1.0
// @description API for tracking a Pokemon card collection against a mirrored card catalog
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @contact.email omofolarinwa.kamar@gmail.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// SetupRouter configures the API routes and middleware
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), CORSMiddleware(), LoggingMiddleware(h.logger))

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 group
	v1 := r.Group("/api/v1")
	{
		cards := v1.Group("/cards")
		{
			// @Summary List collection cards
			// @Description Get one page of the collection, newest first, with optional facet filters
			// @Tags cards
			// @Produce json
			// @Param search query string false "Name or set substring"
			// @Param set query string false "Exact set name"
			// @Param rarity query string false "Exact rarity"
			// @Param condition query string false "Exact condition"
			// @Param type query string false "Energy type of the matching catalog card"
			// @Param series query string false "Series of the matching catalog card"
			// @Param page query int false "Page number" default(1)
			// @Param limit query int false "Page size" default(50)
			// @Success 200 {object} CardListResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards [get]
			cards.GET("", h.ListCards)

			// @Summary Add a card to the collection
			// @Description Create a collection card; name, set and value are required
			// @Tags cards
			// @Accept json
			// @Produce json
			// @Param card body cards.CardInput true "Card to add"
			// @Success 201 {object} CardResponse
			// @Failure 400 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards [post]
			cards.POST("", h.CreateCard)

			// @Summary Add a catalog card to the collection
			// @Description Copy name, set, number, rarity and image from a catalog card; value defaults to its best price
			// @Tags cards
			// @Accept json
			// @Produce json
			// @Param request body cards.FromCatalogInput true "Catalog card reference"
			// @Success 201 {object} CardResponse
			// @Failure 400 {object} ErrorResponse
			// @Failure 404 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/from-catalog [post]
			cards.POST("/from-catalog", h.AddFromCatalog)

			// @Summary Get collection filter options
			// @Description List the sets, rarities, conditions and types present in the collection
			// @Tags cards
			// @Produce json
			// @Success 200 {object} models.CollectionFilterOptions
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/filters [get]
			cards.GET("/filters", h.GetCardFilters)

			// @Summary Get collection stats
			// @Description Total copies, total value and distinct records in the collection
			// @Tags cards
			// @Produce json
			// @Success 200 {object} models.CollectionStats
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/stats [get]
			cards.GET("/stats", h.GetCardStats)

			// @Summary Get a collection card
			// @Tags cards
			// @Produce json
			// @Param id path string true "Card ID"
			// @Success 200 {object} CardResponse
			// @Failure 404 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/{id} [get]
			cards.GET("/:id", h.GetCard)

			// @Summary Update a collection card
			// @Description Apply the fields present in the body; absent fields are left unchanged
			// @Tags cards
			// @Accept json
			// @Produce json
			// @Param id path string true "Card ID"
			// @Param card body cards.CardInput true "Fields to change"
			// @Success 200 {object} CardResponse
			// @Failure 400 {object} ErrorResponse
			// @Failure 404 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/{id} [put]
			cards.PUT("/:id", h.UpdateCard)
			cards.PATCH("/:id", h.UpdateCard)

			// @Summary Delete a collection card
			// @Tags cards
			// @Produce json
			// @Param id path string true "Card ID"
			// @Success 200 {object} SuccessResponse
			// @Failure 404 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/{id} [delete]
			cards.DELETE("/:id", h.DeleteCard)

			// @Summary Look up catalog prices for a collection card
			// @Description Match the card against the catalog by name, set and number and return the catalog prices
			// @Tags cards
			// @Produce json
			// @Param id path string true "Card ID"
			// @Success 200 {object} cards.PriceLookup
			// @Failure 404 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /cards/{id}/catalog-price [get]
			cards.GET("/:id/catalog-price", h.GetCatalogPrice)
		}

		catalog := v1.Group("/catalog")
		{
			// @Summary List catalog cards
			// @Description Browse the mirrored catalog by name with optional facet filters
			// @Tags catalog
			// @Produce json
			// @Param search query string false "Name or set substring"
			// @Param set query string false "Exact set name"
			// @Param rarity query string false "Exact rarity"
			// @Param series query string false "Exact series"
			// @Param type query string false "Energy type"
			// @Param page query int false "Page number" default(1)
			// @Param limit query int false "Page size" default(50)
			// @Success 200 {object} CatalogListResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /catalog [get]
			catalog.GET("", h.ListCatalog)

			// @Summary Get catalog filter options
			// @Tags catalog
			// @Produce json
			// @Success 200 {object} models.CatalogFilterOptions
			// @Failure 500 {object} ErrorResponse
			// @Router /catalog/filters [get]
			catalog.GET("/filters", h.GetCatalogFilters)

			// @Summary Quick search the catalog
			// @Tags catalog
			// @Produce json
			// @Param q query string true "Name or set substring"
			// @Param limit query int false "Maximum results" default(20)
			// @Success 200 {object} catalog.SearchResult
			// @Failure 400 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /catalog/search [get]
			catalog.GET("/search", h.SearchCatalog)

			// @Summary Get catalog status
			// @Description Report whether the catalog table exists, how many cards it holds and when it was last synced
			// @Tags catalog
			// @Produce json
			// @Success 200 {object} catalog.Readiness
			// @Failure 500 {object} ErrorResponse
			// @Router /catalog/stats [get]
			catalog.GET("/stats", h.GetCatalogStats)

			// @Summary Get a catalog card
			// @Tags catalog
			// @Produce json
			// @Param id path string true "Catalog card ID" example("base1-4")
			// @Success 200 {object} models.CatalogCard
			// @Failure 404 {object} ErrorResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /catalog/{id} [get]
			catalog.GET("/:id", h.GetCatalogCard)
		}

		sync := v1.Group("/sync")
		{
			// @Summary Start a catalog sync
			// @Description Mirror the external catalog in the background; only one run may be active
			// @Tags sync
			// @Produce json
			// @Success 202 {object} SyncStartedResponse
			// @Failure 409 {object} SyncConflictResponse
			// @Failure 500 {object} ErrorResponse
			// @Router /sync [post]
			sync.POST("", h.StartSync)

			// @Summary Get catalog sync status
			// @Description Snapshot of the current or last sync run merged with catalog stats
			// @Tags sync
			// @Produce json
			// @Success 200 {object} catalog.StatusReport
			// @Router /sync/status [get]
			sync.GET("/status", h.GetSyncStatus)
		}

		// @Summary Search the external catalog
		// @Description Proxy a search to the external card API; results are cached for a few minutes
		// @Tags tcg
		// @Produce json
		// @Param q query string false "Free text or a formatted query" example("Charizard")
		// @Param name query string false "Name prefix"
		// @Param set query string false "Set name"
		// @Param number query string false "Card number"
		// @Param rarity query string false "Rarity"
		// @Param page query int false "Page number" default(1)
		// @Param pageSize query int false "Page size" default(20)
		// @Success 200 {object} tcgapi.SearchResult
		// @Failure 500 {object} ErrorResponse
		// @Router /tcg/search [get]
		v1.GET("/tcg/search", h.SearchLive)

		// @Summary Verify database tables
		// @Description Report which required tables exist and how many rows they hold
		// @Tags health
		// @Produce json
		// @Success 200 {object} HealthResponse
		// @Failure 503 {object} HealthResponse
		// @Failure 500 {object} ErrorResponse
		// @Router /health [get]
		v1.GET("/health", h.Health)
	}

	return r
}
