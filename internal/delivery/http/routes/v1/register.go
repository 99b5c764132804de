package v1

import (
	"laborlink/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationHandler
	Categories   *handler.CategoryHandler
	Locales      *handler.LocaleHandler
	Stats        *handler.StatsHandler
	Users        *handler.UserHandler
	Site         *handler.SiteHandler
}

// Register mounts the v1 API. auth validates access tokens; role checks are
// attached per route by the handlers.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	h.Auth.RegisterRoutes(r.Group("/auth"))
	h.Locales.RegisterRoutes(r.Group("/locales"))
	h.Categories.RegisterRoutes(r.Group("/categories"), auth)
	h.Site.RegisterRoutes(r.Group("/site"), auth)

	jobs := r.Group("/jobs")
	h.Jobs.RegisterRoutes(jobs, auth)
	h.Applications.RegisterJobRoutes(jobs, auth)

	h.Applications.RegisterRoutes(r.Group("/applications", auth))
	h.Stats.RegisterRoutes(r.Group("/admin", auth))
	h.Users.RegisterRoutes(r.Group("/users", auth))
}
