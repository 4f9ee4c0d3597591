package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "conflict keeps its message",
			err:      failure.Conflict("room 204 is already booked for these dates"),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"room 204 is already booked for these dates"}`,
		},
		{
			name:     "plain error is hidden",
			err:      errors.New(`pq: relation "bookings" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "BK-20240510-ABC123"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"BK-20240510-ABC123"}}`, rec.Body.String())
}

func TestWithFile(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithFile(rec, constant.ContentTypeXLSX, "receipt.xlsx", []byte("PK\x03\x04"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="receipt.xlsx"`, rec.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "4", rec.Header().Get(constant.RequestHeaderContentLength))
	assert.Equal(t, "PK\x03\x04", rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}

func TestWithTracedError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	ot := otel.FromProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	_, scope := ot.NewScope(t.Context(), "handler", "handler.ConfirmToggle")

	rec := httptest.NewRecorder()
	response.WithTracedError(rec, scope, failure.NotFound("no pending change for room 101"), "failed to confirm cleaning toggle")
	scope.End()

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"no pending change for room 101"}`, rec.Body.String())

	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	}
}
