package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ovenside/storefront/internal/config"
	"github.com/ovenside/storefront/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.MerchantRepository { return s.Merchants() },
		func(s *Storage) repository.EventRepository { return s.Events() },
		func(s *Storage) repository.PickupWindowRepository { return s.Windows() },
		func(s *Storage) repository.LocationRepository { return s.Locations() },
		func(s *Storage) repository.MenuItemRepository { return s.MenuItems() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
