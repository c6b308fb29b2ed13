package bootstrap

import (
	"time"

	"mansion-pos/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewHotelLocation,
	),
)

// NewHotelLocation is the calendar used for checkout deadlines and report
// boundaries.
func NewHotelLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Hotel.Location()
}
