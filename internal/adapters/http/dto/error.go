package dto

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document. Message is an extension
// member holding the text shown to the shopper.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Message  string        `json:"message,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one invalid request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// Problem returns a bare problem document for status.
func Problem(r *http.Request, status int) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   http.StatusText(status),
		Instance: r.URL.Path,
	}
}

// NewErrorResponse builds the problem document for err. Below 500 the detail
// is the error text; 5xx keep the status text because the chain can name
// files, hosts or registrar responses.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := Problem(r, statusFor(err))
	if resp.Status < http.StatusInternalServerError {
		resp.Detail = err.Error()
	}

	var verr *domain.ValidationError
	if resp.Status == http.StatusBadRequest && errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteMessageError(w, r, err, "")
}

// WriteMessageError writes the problem document for err with the shopper's
// message attached.
func WriteMessageError(w http.ResponseWriter, r *http.Request, err error, message string) {
	resp := NewErrorResponse(r, err)
	resp.Message = message
	WriteProblem(w, r, resp)
}

// WriteProblem sends resp as application/problem+json.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem", slog.Any("error", err))
	}
}

// statusFor maps an error chain to a status. Order matters: a timeout is a
// 504 whatever timed out, and a registrar failure is a 502 even when the
// registrar's own answer wrapped a validation or auth error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrProviderFailure):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return details
}
