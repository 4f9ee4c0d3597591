package health_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/health/model/dto"
	"frontdesk/internal/handlers/health"
)

type fakeHealth struct {
	status string
}

func (f fakeHealth) Check(_ context.Context) dto.HealthResponse {
	return dto.HealthResponse{Status: f.status}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantCode int
	}{
		{name: "database answers", status: dto.StatusOK, wantCode: http.StatusOK},
		{name: "database down", status: dto.StatusDown, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.New(fakeHealth{status: tt.status}, otelMocks.NewOtel())

			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.status)
		})
	}
}
