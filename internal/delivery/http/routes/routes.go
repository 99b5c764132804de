package routes

import (
	"laborlink/internal/delivery/http/handler"
	v1 "laborlink/internal/delivery/http/routes/v1"
	"laborlink/internal/metrics"
	"laborlink/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	api     v1.Handlers
	auth    fiber.Handler
	ws      *ws.Handler
	metrics *metrics.Metrics
}

func NewRegistry(health *handler.HealthHandler, api v1.Handlers, auth fiber.Handler, wsHandler *ws.Handler, m *metrics.Metrics) *Registry {
	return &Registry{health: health, api: api, auth: auth, ws: wsHandler, metrics: m}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	if r.metrics != nil {
		app.Get("/metrics", r.metrics.Handler())
	}
	if r.ws != nil {
		app.Get("/ws/jobs", r.ws.HandleJobsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.api, r.auth)
}
