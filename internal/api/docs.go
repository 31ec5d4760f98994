package api

import (
	_ "github.com/Kamar-Folarin/tcg-tracker/docs"

	"github.com/Kamar-Folarin/tcg-tracker/internal/cards"
	"github.com/Kamar-Folarin/tcg-tracker/internal/db"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

// ErrorResponse represents an error response
// @Description Error response
// @swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// @example Card not found
	Error string `json:"error" example:"Card not found"`
	// Offending input field, set for validation errors
	Field string `json:"field,omitempty" example:"value"`
	// Operator hint or underlying cause, set for internal errors
	Details string `json:"details,omitempty" example:"Database tables do not exist. Run the migrations (tcgctl migrate) to create them."`
}

// SuccessResponse acknowledges an operation without a body
// @swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// CardResponse is a collection card with its total value
// @Description A collection card; totalValue is value times quantity
// @swagger:model CardResponse
type CardResponse = cards.CardView

// CardListResponse represents a paginated list of collection cards
// @Description A page of collection cards
// @swagger:model CardListResponse
type CardListResponse struct {
	Data       []*cards.CardView `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

// CatalogListResponse represents a paginated list of catalog cards
// @Description A page of catalog cards ordered by name
// @swagger:model CatalogListResponse
type CatalogListResponse struct {
	Data       []*models.CatalogCard `json:"data"`
	Pagination models.Pagination     `json:"pagination"`
}

// SyncStartedResponse is returned when a sync run was accepted
// @Description A sync run was started in the background
// @swagger:model SyncStartedResponse
type SyncStartedResponse struct {
	Success bool             `json:"success" example:"true"`
	Message string           `json:"message" example:"Sync started in background"`
	Status  models.SyncState `json:"status" example:"running"`
}

// SyncConflictResponse is returned when a sync run is already active
// @Description A sync run is already in progress; status is the current register
// @swagger:model SyncConflictResponse
type SyncConflictResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"Sync is already in progress"`
	Status  models.SyncStatus `json:"status"`
}

// HealthResponse reports the schema check
// @Description Table verification; status is degraded when any object is missing
// @swagger:model HealthResponse
type HealthResponse struct {
	Status string           `json:"status" example:"ok"`
	Tables []db.TableReport `json:"tables"`
}
