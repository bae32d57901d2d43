package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
)

const testSession = "0b6f7e0a-2c1d-4d3e-9f00-123456789abc"

// withChiParams attaches route params the way chi does when it matches.
func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// sessionRequest builds a request that already passed the Session middleware.
func sessionRequest(method, target string, body io.Reader) *http.Request {
	if body == nil {
		body = http.NoBody
	}
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(middleware.WithSessionID(r.Context(), testSession))
}

func fooCom() availability.Candidate {
	return availability.Candidate{Name: "foo", Suffix: "com", Price: 12.5, Status: availability.StatusAvailable}
}

func fooIOLine() cart.Line {
	return cart.Line{Name: "foo", Suffix: "io", Price: 20}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
