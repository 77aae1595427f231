package app

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/metinatakli/cinema-ticketing/api"
	"github.com/metinatakli/cinema-ticketing/internal/mocks"
	"github.com/metinatakli/cinema-ticketing/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetHealth(t *testing.T) {
	app := newTestApplication(newTestRepos(), func(cfg *Config) {
		cfg.Env = "staging"
	})

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)
	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.Equal(t, api.UP, response.Status)
	assert.Equal(t, "staging", response.SystemInfo.Environment)
	assert.Equal(t, version, response.SystemInfo.Version)
}

func TestGetHealth_RedisDown(t *testing.T) {
	redisClient := new(mocks.MockRedisClient)
	redisClient.On("Ping", mock.Anything).Return(redis.NewStatusResult("", errors.New("connection refused")))

	repos := newTestRepos()
	app := NewApp(
		Config{Env: "test"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
		redisClient,
		validator.NewValidator(),
		repos.rooms,
		repos.seats,
		repos.showtimes,
		repos.tickets,
	)

	w, r := executeRequest(t, http.MethodGet, "/healthcheck", nil)
	app.Routes().ServeHTTP(w, r)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response api.HealthcheckResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, api.DOWN, response.Status)

	redisClient.AssertExpectations(t)
}

func TestMethodNotAllowed(t *testing.T) {
	app := newTestApplication(newTestRepos())

	w, r := executeRequest(t, http.MethodPatch, "/healthcheck", nil)
	app.Routes().ServeHTTP(w, r)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
