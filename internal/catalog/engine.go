package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/Kamar-Folarin/tcg-tracker/internal/batch"
	"github.com/Kamar-Folarin/tcg-tracker/internal/config"
	"github.com/Kamar-Folarin/tcg-tracker/internal/errors"
	"github.com/Kamar-Folarin/tcg-tracker/internal/metrics"
	"github.com/Kamar-Folarin/tcg-tracker/internal/models"
	"github.com/Kamar-Folarin/tcg-tracker/internal/tcgapi"
)

// Source is the paginated external catalog
type Source interface {
	TotalCount(ctx context.Context, query string) (int, error)
	GetCardsPage(ctx context.Context, query string, page, pageSize int) (*tcgapi.CardsPage, error)
}

// Writer upserts catalog rows
type Writer interface {
	UpsertCatalogCard(ctx context.Context, card *models.CatalogCard) (inserted bool, err error)
}

// Engine refreshes the catalog store from the external source, one page at
// a time, publishing progress to a StatusRegister
type Engine struct {
	source   Source
	store    Writer
	register *StatusRegister
	config   *config.SyncConfig
	logger   *logrus.Logger
	now      func() time.Time
	wg       sync.WaitGroup
}

// NewEngine creates a sync engine
func NewEngine(source Source, store Writer, register *StatusRegister, cfg *config.SyncConfig, logger *logrus.Logger) *Engine {
	if cfg == nil {
		cfg = config.DefaultSyncConfig()
	}
	if register == nil {
		register = NewStatusRegister()
	}
	return &Engine{
		source:   source,
		store:    store,
		register: register,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Status returns the current register contents
func (e *Engine) Status() models.SyncStatus {
	return e.register.Snapshot()
}

// Start accepts a sync run and executes it in the background. It returns a
// SyncInProgressError without touching the register when a run is active.
// The run is detached from ctx cancellation.
func (e *Engine) Start(ctx context.Context) (models.SyncStatus, error) {
	status, ok := e.register.TryStart(e.now())
	if !ok {
		e.logger.Warn("Sync already in progress")
		return status, errors.NewSyncInProgressError(*status.StartTime)
	}

	runCtx := context.WithoutCancel(ctx)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		_ = e.run(runCtx, *status.StartTime)
	}()

	return status, nil
}

// Run executes a sync run in the foreground
func (e *Engine) Run(ctx context.Context) (models.SyncStatus, error) {
	status, ok := e.register.TryStart(e.now())
	if !ok {
		return status, errors.NewSyncInProgressError(*status.StartTime)
	}
	err := e.run(ctx, *status.StartTime)
	return e.register.Snapshot(), err
}

// Wait blocks until background runs have finished
func (e *Engine) Wait() {
	e.wg.Wait()
}

type runCounters struct {
	processed int
	inserted  int
	updated   int
	errors    int
}

func (e *Engine) publish(c *runCounters, message string) {
	e.register.Update(func(s *models.SyncStatus) {
		s.CardsProcessed = c.processed
		s.CardsInserted = c.inserted
		s.CardsUpdated = c.updated
		s.Errors = c.errors
		if message != "" {
			s.Message = message
		}
	})
}

func (e *Engine) run(ctx context.Context, startedAt time.Time) (err error) {
	logger := e.logger.WithFields(logrus.Fields{
		"action":     "catalog_sync",
		"started_at": startedAt.Format(time.RFC3339),
	})
	logger.Info("Starting catalog sync")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during sync: %v", r)
		}
		if err != nil {
			logger.WithError(err).Error("Catalog sync failed")
			e.fail(err)
			metrics.ObserveSyncRun("error", time.Since(startedAt))
		}
	}()

	total, err := e.source.TotalCount(ctx, e.config.Query)
	if err != nil {
		return fmt.Errorf("failed to get total card count: %w", err)
	}

	pageSize := e.config.PageSize
	if pageSize <= 0 || pageSize > config.MaxPageSize {
		pageSize = config.MaxPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize

	message := fmt.Sprintf("Found %d total cards. Processing %d pages...", total, totalPages)
	e.register.Update(func(s *models.SyncStatus) {
		s.TotalPages = totalPages
		s.Message = message
	})
	logger.WithFields(logrus.Fields{
		"total_cards": total,
		"total_pages": totalPages,
	}).Info(message)

	limit := rate.Inf
	if e.config.PageDelay > 0 {
		limit = rate.Every(e.config.PageDelay)
	}
	limiter := rate.NewLimiter(limit, 1)

	counters := &runCounters{}
	processor := batch.NewProcessor(
		batch.WithProgressEvery[json.RawMessage](e.config.ProgressEvery, func(batch.Progress) {
			e.publish(counters, fmt.Sprintf("Processed %d cards...", counters.processed))
		}),
		batch.WithErrorHandler(func(raw json.RawMessage, err error) {
			counters.errors++
			metrics.ObserveSyncCard("failed")
			logger.WithError(err).WithField("card_id", recordID(raw)).Warn("Failed to process catalog record")
			e.publish(counters, "")
		}),
	)

	for page := 1; page <= totalPages; page++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		pageStart := time.Now()
		pageLogger := logger.WithFields(logrus.Fields{
			"page":        page,
			"total_pages": totalPages,
		})
		pageLogger.Debug("Processing catalog page")

		result, err := e.source.GetCardsPage(ctx, e.config.Query, page, pageSize)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			pageLogger.WithError(err).Error("Failed to fetch catalog page")
			counters.errors++
			metrics.ObserveSyncPage(time.Since(pageStart), true)
			e.publish(counters, "")
			e.advance(page, totalPages)
			continue
		}

		syncedAt := e.now()
		_, err = processor.ProcessItems(ctx, result.Data, func(ctx context.Context, raw json.RawMessage) error {
			inserted, err := e.upsertRecord(ctx, raw, syncedAt)
			if err != nil {
				return err
			}
			counters.processed++
			if inserted {
				counters.inserted++
				metrics.ObserveSyncCard("inserted")
			} else {
				counters.updated++
				metrics.ObserveSyncCard("updated")
			}
			return nil
		})
		if err != nil {
			return err
		}

		metrics.ObserveSyncPage(time.Since(pageStart), false)
		e.publish(counters, "")
		e.advance(page, totalPages)
	}

	duration := time.Since(startedAt)
	message = fmt.Sprintf("Sync completed! Processed %d cards in %.2fs", counters.processed, duration.Seconds())
	endTime := e.now()
	e.register.Update(func(s *models.SyncStatus) {
		s.Status = models.SyncCompleted
		s.Progress = 100
		s.CardsProcessed = counters.processed
		s.CardsInserted = counters.inserted
		s.CardsUpdated = counters.updated
		s.Errors = counters.errors
		s.Message = message
		s.EndTime = &endTime
	})
	metrics.ObserveSyncRun("completed", duration)

	logger.WithFields(logrus.Fields{
		"processed": counters.processed,
		"inserted":  counters.inserted,
		"updated":   counters.updated,
		"errors":    counters.errors,
	}).Info(message)

	return nil
}

func (e *Engine) upsertRecord(ctx context.Context, raw json.RawMessage, syncedAt time.Time) (bool, error) {
	var card tcgapi.Card
	if err := json.Unmarshal(raw, &card); err != nil {
		return false, fmt.Errorf("failed to decode record: %w", err)
	}
	row, err := ToCatalogCard(card, syncedAt)
	if err != nil {
		return false, err
	}
	inserted, err := e.store.UpsertCatalogCard(ctx, row)
	if err != nil {
		return false, fmt.Errorf("failed to upsert card %s: %w", card.ID, err)
	}
	return inserted, nil
}

func (e *Engine) advance(page, totalPages int) {
	e.register.Update(func(s *models.SyncStatus) {
		s.CurrentPage = page
		s.Progress = page * 100 / totalPages
	})
}

func (e *Engine) fail(err error) {
	endTime := e.now()
	e.register.Update(func(s *models.SyncStatus) {
		s.Status = models.SyncError
		s.Message = fmt.Sprintf("Sync failed: %s", err.Error())
		s.EndTime = &endTime
	})
}

// recordID pulls the id out of a raw record for logging
func recordID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}
