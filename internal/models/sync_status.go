package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SyncState is the lifecycle state of a catalog sync run
type SyncState string

const (
	SyncIdle      SyncState = "idle"
	SyncRunning   SyncState = "running"
	SyncCompleted SyncState = "completed"
	SyncError     SyncState = "error"
)

// SyncStatus is a snapshot of the catalog sync register
type SyncStatus struct {
	Status         SyncState  `json:"status"`
	Progress       int        `json:"progress"`
	TotalPages     int        `json:"totalPages"`
	CurrentPage    int        `json:"currentPage"`
	CardsProcessed int        `json:"cardsProcessed"`
	CardsInserted  int        `json:"cardsInserted"`
	CardsUpdated   int        `json:"cardsUpdated"`
	Errors         int        `json:"errors"`
	Message        string     `json:"message"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
}

// IdleSyncStatus is the register contents before any run
func IdleSyncStatus() SyncStatus {
	return SyncStatus{
		Status:  SyncIdle,
		Message: "No sync in progress",
	}
}

// IsRunning reports whether a run is in flight
func (s SyncStatus) IsRunning() bool {
	return s.Status == SyncRunning
}

// String returns the JSON string representation of the sync status
func (s SyncStatus) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to marshal sync status: %v"}`, err)
	}
	return string(data)
}
