package housekeeping

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCleaningStatuses)
		routerGroup.Post("/rollover", handler.Rollover)
		routerGroup.Post("/{roomId}/toggle", handler.RequestToggle)
		routerGroup.Post("/{roomId}/toggle/confirm", handler.ConfirmToggle)
	})
}

func roomID(r *http.Request) (int, error) {
	id, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamRoomID))
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid room id") // nolint:wrapcheck
	}

	return id, nil
}

// GetCleaningStatuses lists every room's cleaning status with today's traffic.
// @Summary Housekeeping board
// @Tags Housekeeping
// @Produce json
// @Success 200 {object} response.Data[dto.GetCleaningStatusesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping [get]
// @Security BearerAuth
func (handler *Handler) GetCleaningStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningStatuses")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to get cleaning statuses")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RequestToggle starts a status change and returns the token that confirms it.
// @Summary Request a cleaning status change
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body dto.ToggleRequest false "Target status, flips the current one when empty"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/{roomId}/toggle [post]
// @Security BearerAuth
func (handler *Handler) RequestToggle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestToggle")
	defer scope.End()

	id, err := roomID(r)
	if err != nil {
		response.WithTracedError(w, scope, err, "invalid room id")

		return
	}

	scope.SetAttribute("room_id", id)

	req := dto.ToggleRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			response.WithTracedError(w, scope, err, "invalid request body")

			return
		}
	}

	res, err := handler.service.RequestToggle(ctx, id, req)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to request cleaning toggle")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmToggle applies a pending status change.
// @Summary Confirm a cleaning status change
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param roomId path int true "Room ID"
// @Param request body dto.ConfirmToggleRequest true "Confirmation token"
// @Success 200 {object} response.Data[dto.CleaningStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/housekeeping/{roomId}/toggle/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmToggle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmToggle")
	defer scope.End()

	id, err := roomID(r)
	if err != nil {
		response.WithTracedError(w, scope, err, "invalid room id")

		return
	}

	scope.SetAttribute("room_id", id)

	req := dto.ConfirmToggleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithTracedError(w, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.ConfirmToggle(ctx, id, req)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to confirm cleaning toggle")

		return
	}

	scope.AddEvent("Cleaning status changed")

	response.WithJSON(w, http.StatusOK, res)
}

// Rollover runs today's rollover now. Running it twice on one day changes nothing.
// @Summary Run the daily rollover
// @Tags Housekeeping
// @Produce json
// @Success 200 {object} response.Data[dto.RolloverResponse]
// @Failure 500 {object} response.Error
// @Router /v1/housekeeping/rollover [post]
// @Security BearerAuth
func (handler *Handler) Rollover(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rollover")
	defer scope.End()

	res, err := handler.service.Rollover(ctx, timezone.Now())
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to run rollover")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
