package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"laborlink/internal/domain/user"
	"laborlink/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func do(t *testing.T, app *fiber.App, path, token string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestErrorMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/app", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "Already there", nil, nil)
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db exploded", nil, errors.New("secret detail"))
	})
	app.Get("/plain", func(c fiber.Ctx) error { return errors.New("oops") })
	app.Get("/fiber", func(c fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/panic", func(c fiber.Ctx) error { panic("boom") })

	status, env := do(t, app, "/app", "")
	assert.Equal(t, 409, status)
	assert.Equal(t, "Already there", env.Message)

	status, env = do(t, app, "/internal", "")
	assert.Equal(t, 500, status)
	assert.Equal(t, "internal server error", env.Message)

	status, _ = do(t, app, "/plain", "")
	assert.Equal(t, 500, status)

	status, _ = do(t, app, "/fiber", "")
	assert.Equal(t, 404, status)

	status, env = do(t, app, "/panic", "")
	assert.Equal(t, 500, status)
	assert.Equal(t, 500, env.Status)
}

func TestNewAppError_StackOnlyForServerErrors(t *testing.T) {
	assert.Empty(t, NewAppError(400, "bad", nil, nil).Stack)
	assert.NotEmpty(t, NewAppError(500, "bad", nil, errors.New("x")).Stack)
}

func TestAuthMiddleware_RolesAndTokens(t *testing.T) {
	svc := jwt.NewHMACService("a", "r", time.Minute, time.Hour)

	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	auth := NewAuthMiddleware(svc).Middleware()
	app.Get("/me", auth, func(c fiber.Ctx) error {
		actor, _ := ActorFrom(c)
		return c.JSON(envelope{Status: 200, Message: string(actor.Role)})
	})
	app.Get("/admin", auth, RequireRoles(user.RoleAdmin), func(c fiber.Ctx) error {
		return c.JSON(envelope{Status: 200, Message: "ok"})
	})

	worker, err := svc.GenerateAccessToken(uuid.New(), "w@x.io", "worker")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	status, _ := do(t, app, "/me", "")
	assert.Equal(t, 401, status)

	status, _ = do(t, app, "/me", refresh)
	assert.Equal(t, 401, status)

	status, env := do(t, app, "/me", worker)
	assert.Equal(t, 200, status)
	assert.Equal(t, "worker", env.Message)

	status, _ = do(t, app, "/admin", worker)
	assert.Equal(t, 403, status)
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)
	_, ok = BearerToken("Bearer   ")
	assert.False(t, ok)
}
