package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 64 << 10

// respond encodes v as the JSON body. The status is already on the wire when
// encoding fails, so the failure is only logged.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response", slog.Any("error", err))
	}
}

// readJSON decodes exactly one JSON value from the body into dst and runs its
// Validate method when it has one. On failure the 400 is already written.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil && dec.More() {
		err = errors.New("trailing data")
	}
	if err != nil {
		reason := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			reason = fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit)
		}
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"body": reason}})
		return false
	}

	if v, ok := dst.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return false
		}
	}
	return true
}

// cartIndex reads the {index} path segment. Negative numbers parse and are
// left to the cart to reject as out of range.
func cartIndex(r *http.Request) (int, error) {
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, &domain.ValidationError{Fields: map[string]string{"index": "must be a whole number"}}
	}
	return idx, nil
}
