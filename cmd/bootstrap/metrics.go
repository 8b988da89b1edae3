package bootstrap

import (
	"hotel-admin/internal/pkg/metrics"
	"hotel-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(r *metrics.Registry) queries.RateLookupRecorder { return r },
	),
)
