package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"laborlink/internal/config"
	"laborlink/internal/pkg/logging"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = fiber.TestConfig{Timeout: 5 * time.Second}

func memoryConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "laborlink", Environment: "test", HTTPPort: "0", StoreBackend: config.StoreMemory},
		JWT: config.JWTConfig{
			AccessSecret:     "access",
			RefreshSecret:    "refresh",
			AccessExpiresIn:  time.Minute,
			RefreshExpiresIn: time.Hour,
		},
		Seed: config.SeedConfig{DefaultPassword: "password123"},
	}
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}

func TestBootstrap_MemoryServesSeededJobs(t *testing.T) {
	a, cleanup, err := Bootstrap(context.Background(), memoryConfig(), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	resp, err := a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/health", nil), testConfig)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = a.Fiber.Test(httptest.NewRequest(http.MethodGet, "/api/v1/jobs?scope=International&lang=hi", nil), testConfig)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data []struct {
			Title string `json:"title"`
			Scope string `json:"scope"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, "औद्योगिक इलेक्ट्रीशियन", env.Data[0].Title)
}

func TestBootstrap_SeedDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.Seed.Disabled = true
	a, cleanup, err := Bootstrap(context.Background(), cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	jobs, err := a.Container.Jobs.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
