package batch

import (
	"context"
	"fmt"
)

// Progress is a cumulative snapshot of one ProcessItems call
type Progress struct {
	Total     int
	Processed int
	Succeeded int
	Failed    int
	LastErr   error
}

// ItemFunc handles one item
type ItemFunc[T any] func(ctx context.Context, item T) error

// ProgressFunc receives cumulative progress
type ProgressFunc func(Progress)

// Processor applies a function to items one at a time. A failing or
// panicking item is counted and skipped; only context cancellation stops
// the loop early. Progress batching counts successes across all
// ProcessItems calls on the same Processor.
type Processor[T any] struct {
	progressEvery int
	onProgress    ProgressFunc
	onError       func(item T, err error)
	succeeded     int
}

// Option configures a Processor
type Option[T any] func(*Processor[T])

// WithProgressEvery reports progress after every n successful items,
// counted over the lifetime of the Processor
func WithProgressEvery[T any](n int, fn ProgressFunc) Option[T] {
	return func(p *Processor[T]) {
		p.progressEvery = n
		p.onProgress = fn
	}
}

// WithErrorHandler is called for every failed item
func WithErrorHandler[T any](fn func(item T, err error)) Option[T] {
	return func(p *Processor[T]) {
		p.onError = fn
	}
}

// NewProcessor creates a new batch processor
func NewProcessor[T any](opts ...Option[T]) *Processor[T] {
	p := &Processor[T]{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Succeeded returns the successful items over all calls
func (p *Processor[T]) Succeeded() int {
	return p.succeeded
}

// ProcessItems processes items sequentially in order
func (p *Processor[T]) ProcessItems(ctx context.Context, items []T, fn ItemFunc[T]) (Progress, error) {
	progress := Progress{Total: len(items)}

	for _, item := range items {
		select {
		case <-ctx.Done():
			return progress, ctx.Err()
		default:
		}

		err := p.processItem(ctx, item, fn)
		progress.Processed++
		if err != nil {
			progress.Failed++
			progress.LastErr = err
			if p.onError != nil {
				p.onError(item, err)
			}
			continue
		}

		progress.Succeeded++
		p.succeeded++
		if p.onProgress != nil && p.progressEvery > 0 && p.succeeded%p.progressEvery == 0 {
			p.onProgress(progress)
		}
	}

	return progress, nil
}

func (p *Processor[T]) processItem(ctx context.Context, item T, fn ItemFunc[T]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing item: %v", r)
		}
	}()
	return fn(ctx, item)
}
