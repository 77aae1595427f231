package app

import (
	"context"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-ticketing/api"
)

const healthcheckTimeout = 2 * time.Second

// GetHealth reports DOWN with 503 when PostgreSQL or the configured Redis
// does not answer a ping.
func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, code := api.UP, http.StatusOK

	err := app.ping(r.Context())
	if err != nil {
		app.contextGetLogger(r).Warn("healthcheck failed", "error", err)
		status, code = api.DOWN, http.StatusServiceUnavailable
	}

	resp := api.HealthcheckResponse{
		Status: status,
		SystemInfo: api.SystemInfo{
			Version:     version,
			Environment: app.config.Env,
		},
	}

	err = app.writeJSON(w, code, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthcheckTimeout)
	defer cancel()

	if app.db != nil {
		if err := app.db.Ping(ctx); err != nil {
			return err
		}
	}

	if app.redis != nil {
		if err := app.redis.Ping(ctx).Err(); err != nil {
			return err
		}
	}

	return nil
}
