package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/ovenside/storefront/internal/domain/errors"
	"github.com/ovenside/storefront/internal/domain/model"
	"github.com/ovenside/storefront/internal/schedule"
	testhelpers "github.com/ovenside/storefront/internal/test"
)

func TestNewCloseReconcilerDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rec := NewCloseReconciler(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, logger)
	if rec.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", rec.batchSize)
	}
	if rec.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", rec.workers)
	}
}

func waitForUpdates(t *testing.T, facade *testhelpers.WorkerFacadeStub, timeout time.Duration) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		facade.Lock()
		done := len(facade.Updates) > 0
		facade.Unlock()
		if done {
			return
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for close reconciliation")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestCloseReconcilerUpdatesDriftedClose(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	eventID := uuid.New()
	stale := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	resolved := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)

	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Event{{{ID: eventID, Status: model.EventStatusPublished, CloseAt: &stale}}},
		ResolveFn: func(context.Context, *model.Event) (schedule.Resolution, error) {
			return schedule.Resolution{Effective: resolved}, nil
		},
	}
	rec := NewCloseReconciler(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)
	waitForUpdates(t, facade, 500*time.Millisecond)
	rec.Stop()

	facade.Lock()
	defer facade.Unlock()
	if facade.Updates[0].EventID != eventID {
		t.Fatalf("unexpected event id: %s", facade.Updates[0].EventID)
	}
	if !facade.Updates[0].CloseAt.Equal(resolved) {
		t.Fatalf("expected close at %v, got %v", resolved, facade.Updates[0].CloseAt)
	}
}

func TestCloseReconcilerSkipsUnchangedClose(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	current := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)

	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Event{{{ID: uuid.New(), Status: model.EventStatusPublished, CloseAt: &current}}},
		ResolveFn: func(context.Context, *model.Event) (schedule.Resolution, error) {
			return schedule.Resolution{Effective: current}, nil
		},
	}
	rec := NewCloseReconciler(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)
	time.Sleep(100 * time.Millisecond)
	rec.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Updates) != 0 {
		t.Fatalf("expected no updates for matching close, got %v", facade.Updates)
	}
}

func TestCloseReconcilerSkipsEventsWithoutWindows(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Event{{{ID: uuid.New(), Status: model.EventStatusPublished}}},
		ResolveFn: func(context.Context, *model.Event) (schedule.Resolution, error) {
			return schedule.Resolution{}, domainErrors.ErrNoWindowsAvailable
		},
	}
	rec := NewCloseReconciler(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)
	time.Sleep(100 * time.Millisecond)
	rec.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Updates) != 0 {
		t.Fatalf("expected no updates when resolution fails, got %v", facade.Updates)
	}
}

func TestCloseReconcilerSetsMissingClose(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	resolved := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)

	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Event{{{ID: uuid.New(), Status: model.EventStatusPublished}}},
		ResolveFn: func(context.Context, *model.Event) (schedule.Resolution, error) {
			return schedule.Resolution{Effective: resolved}, nil
		},
	}
	rec := NewCloseReconciler(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec.Start(ctx)
	waitForUpdates(t, facade, 500*time.Millisecond)
	rec.Stop()

	facade.Lock()
	defer facade.Unlock()
	if !facade.Updates[0].CloseAt.Equal(resolved) {
		t.Fatalf("expected close at %v, got %v", resolved, facade.Updates[0].CloseAt)
	}
}
