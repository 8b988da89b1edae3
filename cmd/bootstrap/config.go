package bootstrap

import (
	"hotel-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	ConfigSections,
)

// ConfigSections exposes the parts of Config that constructors take directly.
// Tests that supply their own Config include it to get the same graph.
var ConfigSections = fx.Provide(
	func(c config.Config) config.RateLimitConfig { return c.RateLimit },
)
