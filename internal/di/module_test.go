package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/ovenside/storefront/internal/app"
	"github.com/ovenside/storefront/internal/config"
	"github.com/ovenside/storefront/internal/domain/repository"
	"github.com/ovenside/storefront/internal/storage/postgres"
	"github.com/ovenside/storefront/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		SessionSecret:     "secret",
		StoreTZOffset:     "+00:00",
		ReconcileInterval: time.Millisecond,
		ReconcileBatch:    1,
		WorkerPoolSize:    1,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	merchantRepo := test.NewMerchantRepositoryStub()
	eventRepo := &test.EventRepositoryStub{}
	windowRepo := &test.WindowRepositoryStub{}
	locationRepo := &test.LocationRepositoryStub{}
	menuRepo := &test.MenuItemRepositoryStub{}

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.MerchantRepository(merchantRepo)),
			fx.Replace(repository.EventRepository(eventRepo)),
			fx.Replace(repository.PickupWindowRepository(windowRepo)),
			fx.Replace(repository.LocationRepository(locationRepo)),
			fx.Replace(repository.MenuItemRepository(menuRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
