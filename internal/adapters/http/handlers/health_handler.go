package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive if it can answer.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, http.StatusOK, dto.HealthResponse{Status: dto.HealthOK})
}

// Readiness handles GET /health/ready. It answers 503 while any dependency
// fails. Failure details are logged, not returned, since they can name
// internal hosts.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())
	logger := logging.FromContext(r.Context())

	resp := dto.HealthResponse{Status: dto.HealthReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = dto.HealthOK
			continue
		}
		logger.WarnContext(r.Context(), "dependency not ready",
			slog.String("dependency", name),
			slog.Any("error", err),
		)
		resp.Checks[name] = dto.HealthDown
		resp.Status = dto.HealthNotReady
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	respond(w, r, code, resp)
}
