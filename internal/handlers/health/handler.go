package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/health/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Health
	otel    otel.Otel
}

func New(service service.Health, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the database answers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[dto.HealthResponse]
// @Failure 503 {object} response.Data[dto.HealthResponse]
// @Router /v1/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	res := handler.service.Check(ctx)

	if !res.Healthy() {
		response.WithJSON(w, http.StatusServiceUnavailable, res)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
