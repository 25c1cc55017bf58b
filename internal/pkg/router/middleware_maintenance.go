package router

import (
	"net/http"
	"slices"

	"github.com/shandysiswandi/pedidos/internal/pkg/config"
)

const maintenanceMessage = "service is under maintenance"

// middlewareMaintenance answers 503 while app.maintenance.enabled is set, or
// for routes listed in app.maintenance.endpoints. The config is read per request
// so a hot-reloaded file takes effect without a restart. /health stays open.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg == nil {
				next.ServeHTTP(w, r)
				return
			}

			route := matchedRoutePath(r)
			if route != "/health" &&
				(cfg.GetBool("app.maintenance.enabled") || slices.Contains(cfg.GetArray("app.maintenance.endpoints"), route)) {
				writeJSON(w, errorResponse{Message: maintenanceMessage}, http.StatusServiceUnavailable)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
