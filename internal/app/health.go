package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/shandysiswandi/pedidos/internal/pkg/router"
)

const healthTimeout = 2 * time.Second

type healthCheck struct {
	name string
	ping func(context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthHandler reports "ok" for every dependency that answers within
// healthTimeout and 503 when any of them does not.
func healthHandler(checks ...healthCheck) router.Handler {
	return func(r *router.Request) (any, error) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		code := http.StatusOK

		for _, c := range checks {
			if err := c.ping(ctx); err != nil {
				slog.WarnContext(ctx, "health check failed", "dependency", c.name, "error", err)
				resp.Checks[c.name] = "unavailable"
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.name] = "ok"
		}

		return router.Plain{Code: code, Body: resp}, nil
	}
}
