package catalog

import (
	"sync"
	"time"

	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
)

// StatusRegister holds the progress of the current or most recent sync run.
// It lives in process memory and starts out idle.
type StatusRegister struct {
	mu     sync.RWMutex
	status models.SyncStatus
}

// NewStatusRegister creates an idle status register
func NewStatusRegister() *StatusRegister {
	return &StatusRegister{status: models.IdleSyncStatus()}
}

// Snapshot returns a copy of the register contents
func (r *StatusRegister) Snapshot() models.SyncStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyStatus(r.status)
}

// TryStart resets the register to a fresh running state unless a run is
// already in flight. When it refuses, the current contents are returned
// unchanged.
func (r *StatusRegister) TryStart(startedAt time.Time) (models.SyncStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status.IsRunning() {
		return copyStatus(r.status), false
	}

	r.status = models.SyncStatus{
		Status:    models.SyncRunning,
		Message:   "Starting sync...",
		StartTime: &startedAt,
	}
	return copyStatus(r.status), true
}

// Update applies fn to the register under the write lock
func (r *StatusRegister) Update(fn func(status *models.SyncStatus)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.status)
}

func copyStatus(s models.SyncStatus) models.SyncStatus {
	out := s
	if s.StartTime != nil {
		t := *s.StartTime
		out.StartTime = &t
	}
	if s.EndTime != nil {
		t := *s.EndTime
		out.EndTime = &t
	}
	return out
}
