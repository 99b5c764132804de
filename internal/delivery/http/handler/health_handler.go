package handler

import (
	"context"
	"time"

	"laborlink/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness. The database is a hard dependency; the
// cache is reported but never fails the check.
type HealthHandler struct {
	db    Pinger
	cache Pinger
	store string
}

func NewHealthHandler(store string, db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, store: store}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Handle)
}

func (h *HealthHandler) Handle(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := fiber.Map{"store": h.store, "cache": "disabled"}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			data["cache"] = "unavailable"
		} else {
			data["cache"] = "ok"
		}
	}
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "unavailable"
			return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
		}
		data["database"] = "ok"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
