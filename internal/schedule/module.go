package schedule

import (
	"go.uber.org/fx"

	"github.com/ovenside/storefront/internal/config"
)

// Module wires the scheduling engine into the fx container.
var Module = fx.Provide(newEngine)

func newEngine(cfg *config.Config) (*Engine, error) {
	loc, err := cfg.StoreLocation()
	if err != nil {
		return nil, err
	}
	return NewEngine(loc), nil
}
