// Package kernel assembles the global HTTP middleware stack and mounts the
// application routes.
package kernel

import (
	"time"

	"github.com/shashiranjanraj/kashvi-admin/app/routes"
	"github.com/shashiranjanraj/kashvi-admin/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-admin/pkg/middleware"
	"github.com/shashiranjanraj/kashvi-admin/pkg/reqid"
	"github.com/shashiranjanraj/kashvi-admin/pkg/router"
	"github.com/shashiranjanraj/kashvi-admin/pkg/workerpool"
)

// Build returns the fully wired router. Middleware order matters: metrics
// wrap everything, recovery guards the rest of the chain, the request ID is
// assigned before the logger reads it.
func Build(pool *workerpool.Pool) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
	)

	r.HandleFunc("/metrics", metrics.Handler())

	routes.Register(r, pool)
	return r
}
