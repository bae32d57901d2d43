package dto

// Health probe statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthDown     = "unavailable"
)

// HealthResponse is the body of the liveness and readiness probes. Checks is
// keyed by dependency name and omitted for liveness.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
