package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
)

// CloseUpdateCall stores information about UpdateEventCloseAt invocations.
type CloseUpdateCall struct {
	EventID uuid.UUID
	CloseAt time.Time
}

// WorkerFacadeStub mimics reconciler interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Event
	EventsFn       func(context.Context, int) ([]model.Event, error)
	ResolveFn      func(context.Context, *model.Event) (schedule.Resolution, error)
	UpdateFn       func(context.Context, uuid.UUID, time.Time) error
	Updates        []CloseUpdateCall
	mu             sync.Mutex
	fetchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// EventsForReconcile returns batches from configured queue.
func (s *WorkerFacadeStub) EventsForReconcile(ctx context.Context, limit int) ([]model.Event, error) {
	if s.EventsFn != nil {
		return s.EventsFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.fetchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// ResolveEventClose returns configured resolution data.
func (s *WorkerFacadeStub) ResolveEventClose(ctx context.Context, event *model.Event) (schedule.Resolution, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, event)
	}
	return schedule.Resolution{Effective: time.Unix(0, 0).UTC()}, nil
}

// UpdateEventCloseAt records update requests.
func (s *WorkerFacadeStub) UpdateEventCloseAt(ctx context.Context, id uuid.UUID, closeAt time.Time) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, closeAt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, CloseUpdateCall{EventID: id, CloseAt: closeAt})
	return nil
}
