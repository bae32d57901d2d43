// Package http is the inbound HTTP adapter: routing, the server lifecycle and
// the storefront JSON API.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/handlers"
)

// NewRouter mounts the probes and the /api/v1 storefront routes behind mws,
// applied outermost first. The storefront routes need middleware.Session
// among them. Unknown paths and methods get problem documents too.
func NewRouter(
	storefront *handlers.StorefrontHandler,
	health *handlers.HealthHandler,
	mws ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)

	r.NotFound(problem(http.StatusNotFound))
	r.MethodNotAllowed(problem(http.StatusMethodNotAllowed))

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/storefront", storefront.GetStorefront)
		api.Post("/search", storefront.Search)
		api.Get("/checkout", storefront.Checkout)

		api.Get("/cart", storefront.GetCart)
		api.Post("/cart", storefront.AddToCart)
		api.Post("/cart/toggle", storefront.ToggleCart)
		api.Delete("/cart/{index}", storefront.RemoveFromCart)
	})

	return r
}

func problem(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dto.WriteProblem(w, r, dto.Problem(r, status))
	}
}
