package app

import (
	"context"
	"fmt"
	"strings"

	"laborlink/internal/config"
	"laborlink/internal/delivery/http/handler"
	"laborlink/internal/delivery/http/middleware"
	"laborlink/internal/delivery/http/routes"
	v1 "laborlink/internal/delivery/http/routes/v1"
	"laborlink/internal/pkg/jwt"
	"laborlink/internal/pkg/logging"
	"laborlink/internal/usecase"
	"laborlink/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap wires the server. The returned cleanup stops the websocket hub
// and closes the database and cache.
func Bootstrap(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger, c.Metrics).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	cfg := c.Config
	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.RefreshExpiresIn)

	board := usecase.NewJobBoardUsecase(c.Jobs, c.Applications, c.Generator, c.Cache, c.Hub, c.Metrics, c.Logger)
	api := v1.Handlers{
		Auth:         handler.NewAuthHandler(usecase.NewAuthUsecase(c.Users, jwtSvc)),
		Jobs:         handler.NewJobsHandler(board),
		Applications: handler.NewApplicationHandler(usecase.NewApplicationUsecase(c.Applications, c.Jobs, c.Users, c.Metrics, c.Logger)),
		Categories:   handler.NewCategoryHandler(usecase.NewCategoryUsecase(c.Categories, c.Logger)),
		Locales:      handler.NewLocaleHandler(),
		Stats:        handler.NewStatsHandler(usecase.NewStatsUsecase(c.Users, c.Jobs, c.Applications)),
		Users:        handler.NewUserHandler(usecase.NewUserUsecase(c.Users), usecase.NewProfileUsecase(c.Profiles, c.Users, c.Logger)),
		Site:         handler.NewSiteHandler(usecase.NewSiteUsecase(c.Site, c.Logger)),
	}

	var db handler.Pinger
	if c.DB != nil {
		db = c.DB
	}

	routes.NewRegistry(
		handler.NewHealthHandler(cfg.App.StoreBackend, db, c.Cache),
		api,
		middleware.NewAuthMiddleware(jwtSvc).Middleware(),
		ws.NewHandler(c.Hub, c.Logger),
		c.Metrics,
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
