package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	EventsForReconcile(ctx context.Context, limit int) ([]model.Event, error)
	ResolveEventClose(ctx context.Context, event *model.Event) (schedule.Resolution, error)
	UpdateEventCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error
}

// CloseReconciler keeps the stored close instant of published events in step
// with their close policy. Window edits after publication shift the derived
// close time; the reconciler re-resolves each published event and rewrites
// the stored instant when it has drifted.
type CloseReconciler struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCloseReconciler constructs the reconciler worker pool.
func NewCloseReconciler(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *CloseReconciler {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &CloseReconciler{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Event, batchSize*workers),
	}
}

// Start launches background processing.
func (r *CloseReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *CloseReconciler) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *CloseReconciler) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *CloseReconciler) fetchAndDispatch(ctx context.Context) {
	events, err := r.facade.EventsForReconcile(ctx, r.batchSize)
	if err != nil {
		r.logger.Error("fetch events for reconciliation failed", slog.String("error", err.Error()))
		return
	}
	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- event:
		}
	}
}

func (r *CloseReconciler) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reconcile(ctx, event)
		}
	}
}

func (r *CloseReconciler) reconcile(ctx context.Context, event model.Event) {
	resolution, err := r.facade.ResolveEventClose(ctx, &event)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoWindowsAvailable) {
			r.logger.Warn("published event has no pickup windows", slog.String("event", event.ID.String()))
			return
		}
		r.logger.Error("close resolution failed", slog.String("event", event.ID.String()), slog.String("error", err.Error()))
		return
	}

	if event.CloseAt != nil && event.CloseAt.Equal(resolution.Effective) {
		return
	}

	if err := r.facade.UpdateEventCloseAt(ctx, event.ID, resolution.Effective); err != nil {
		r.logger.Error("update close instant failed", slog.String("event", event.ID.String()), slog.String("error", err.Error()))
		return
	}
	r.logger.Info("close instant reconciled",
		slog.String("event", event.ID.String()),
		slog.Time("close_at", resolution.Effective),
	)
}
