package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/dto"
	"github.com/jsamuelsen11/domain-storefront/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/domain-storefront/mocks"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t))

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	resp := decodeJSON[dto.HealthResponse](t, rec)
	if resp.Status != dto.HealthOK || resp.Checks != nil {
		t.Errorf("liveness = %+v, want bare ok", resp)
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		results    map[string]error
		wantStatus int
		want       dto.HealthResponse
	}{
		{
			name:       "fixture provider and memory store",
			results:    map[string]error{},
			wantStatus: http.StatusOK,
			want:       dto.HealthResponse{Status: dto.HealthReady},
		},
		{
			name:       "registrar and redis up",
			results:    map[string]error{"registrar": nil, "redis": nil},
			wantStatus: http.StatusOK,
			want: dto.HealthResponse{Status: dto.HealthReady, Checks: map[string]string{
				"registrar": dto.HealthOK,
				"redis":     dto.HealthOK,
			}},
		},
		{
			name:       "redis down",
			results:    map[string]error{"registrar": nil, "redis": errors.New("dial tcp 10.0.3.7:6379: connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			want: dto.HealthResponse{Status: dto.HealthNotReady, Checks: map[string]string{
				"registrar": dto.HealthOK,
				"redis":     dto.HealthDown,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)

			rec := httptest.NewRecorder()
			handlers.NewHealthHandler(registry).Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

			requireStatus(t, rec, tt.wantStatus)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			if resp.Status != tt.want.Status {
				t.Errorf("Status = %q, want %q", resp.Status, tt.want.Status)
			}
			if len(resp.Checks) != len(tt.want.Checks) {
				t.Fatalf("Checks = %v, want %v", resp.Checks, tt.want.Checks)
			}
			for name, want := range tt.want.Checks {
				if resp.Checks[name] != want {
					t.Errorf("Checks[%s] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
