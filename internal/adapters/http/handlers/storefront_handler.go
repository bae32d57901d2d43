package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// StorefrontHandler serves the storefront API for the session named by the
// request's session cookie.
type StorefrontHandler struct {
	sessions ports.SessionResolver
}

// NewStorefrontHandler creates a StorefrontHandler over the given resolver.
func NewStorefrontHandler(sessions ports.SessionResolver) *StorefrontHandler {
	return &StorefrontHandler{sessions: sessions}
}

// storefront resolves the caller's storefront, writing an error response and
// returning nil when it cannot.
func (h *StorefrontHandler) storefront(w http.ResponseWriter, r *http.Request) ports.StorefrontService {
	id := middleware.SessionIDFromContext(r.Context())
	if id == "" {
		dto.WriteErrorResponse(w, r, fmt.Errorf("no session: %w", domain.ErrForbidden))
		return nil
	}

	sf, err := h.sessions.Resolve(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil
	}
	return sf
}

// fail writes err with whatever message the storefront now shows.
func fail(w http.ResponseWriter, r *http.Request, sf ports.StorefrontService, err error) {
	dto.WriteMessageError(w, r, err, sf.State(r.Context()).Message)
}

// GetStorefront handles GET /api/v1/storefront.
func (h *StorefrontHandler) GetStorefront(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	if sf == nil {
		return
	}
	respond(w, r, http.StatusOK, dto.ToStorefrontResponse(sf.State(r.Context())))
}

// Search handles POST /api/v1/search.
func (h *StorefrontHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if !readJSON(w, r, &req) {
		return
	}

	sf := h.storefront(w, r)
	if sf == nil {
		return
	}

	if _, err := sf.Submit(r.Context(), req.Name); err != nil {
		fail(w, r, sf, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToStorefrontResponse(sf.State(r.Context())))
}

// GetCart handles GET /api/v1/cart.
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	if sf == nil {
		return
	}
	respond(w, r, http.StatusOK, dto.ToCartResponse(sf.State(r.Context())))
}

// AddToCart handles POST /api/v1/cart. The domain is picked from the
// session's displayed results by suffix.
func (h *StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req dto.AddToCartRequest
	if !readJSON(w, r, &req) {
		return
	}

	sf := h.storefront(w, r)
	if sf == nil {
		return
	}

	line, err := sf.AddResult(r.Context(), req.TLD)
	if err != nil {
		fail(w, r, sf, err)
		return
	}

	view := sf.State(r.Context())
	respond(w, r, http.StatusCreated, dto.AddToCartResponse{
		Added:   dto.ToLineResponse(cart.IndexOf(view.Lines, line.Key()), line),
		Message: view.Message,
		Cart:    dto.ToCartResponse(view),
	})
}

// RemoveFromCart handles DELETE /api/v1/cart/{index}.
func (h *StorefrontHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	idx, err := cartIndex(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	sf := h.storefront(w, r)
	if sf == nil {
		return
	}

	if _, err := sf.RemoveFromCart(r.Context(), idx); err != nil {
		fail(w, r, sf, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToCartResponse(sf.State(r.Context())))
}

// ToggleCart handles POST /api/v1/cart/toggle.
func (h *StorefrontHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	if sf == nil {
		return
	}
	respond(w, r, http.StatusOK, dto.ToggleResponse{Visible: sf.ToggleCart(r.Context())})
}

// Checkout handles GET /api/v1/checkout.
func (h *StorefrontHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sf := h.storefront(w, r)
	if sf == nil {
		return
	}
	respond(w, r, http.StatusOK, dto.ToCheckoutResponse(sf.Checkout(r.Context())))
}
