package middleware

import (
	"time"

	"laborlink/internal/metrics"
	"laborlink/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxRequestIDKey = "request_id"

type AccessLogMiddleware struct {
	logger  *logging.Logger
	metrics *metrics.Metrics
}

func NewAccessLogMiddleware(logger *logging.Logger, m *metrics.Metrics) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger, metrics: m}
}

// Middleware must be installed outside the error middleware so the logged
// status is the one actually written.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		m.metrics.ObserveHTTP(c.Method(), status)
		m.logger.Info("http access",
			"rid", rid,
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"latency", time.Since(start).String(),
			"resp_bytes", len(c.Response().Body()),
			"ua", c.Get("User-Agent"),
		)

		return err
	}
}
