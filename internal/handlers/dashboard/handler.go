package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/dashboard/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy/daily", handler.GetDailyOccupancy)
		routerGroup.Get("/occupancy/monthly", handler.GetMonthlyOccupancy)
		routerGroup.Get("/top-rooms", handler.GetTopRooms)
	})
}

// GetDailyOccupancy returns one occupancy point per day of the month containing date.
// @Summary Daily occupancy
// @Tags Dashboard
// @Produce json
// @Param date query string false "Any date in the month (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.DailyOccupancyResponse]
// @Failure 400 {object} response.Error
// @Router /v1/dashboard/occupancy/daily [get]
// @Security BearerAuth
func (handler *Handler) GetDailyOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyOccupancy")
	defer scope.End()

	date, err := shared.DateOrToday(r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		response.WithTracedError(w, scope, err, "invalid request parameters")

		return
	}

	res, err := handler.service.DailyOccupancy(ctx, date)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to get daily occupancy")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMonthlyOccupancy returns one occupancy point per month of the year.
// @Summary Monthly occupancy
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} response.Data[dto.MonthlyOccupancyResponse]
// @Failure 400 {object} response.Error
// @Router /v1/dashboard/occupancy/monthly [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlyOccupancy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyOccupancy")
	defer scope.End()

	year := timezone.Now().Year()

	if value := r.URL.Query().Get(constant.RequestParamYear); value != "" {
		parsed, err := shared.ConvertStringToInt(value)
		if err != nil {
			err = failure.BadRequestFromString("invalid year")
			response.WithTracedError(w, scope, err, "invalid request parameters")

			return
		}

		year = parsed
	}

	res, err := handler.service.MonthlyOccupancy(ctx, year)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to get monthly occupancy")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTopRooms ranks rooms by how many bookings they have.
// @Summary Most booked rooms
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Number of rooms to return"
// @Success 200 {object} response.Data[dto.TopRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/dashboard/top-rooms [get]
// @Security BearerAuth
func (handler *Handler) GetTopRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTopRooms")
	defer scope.End()

	limit := 0

	if value := r.URL.Query().Get(constant.RequestParamLimit); value != "" {
		parsed, err := shared.ConvertStringToInt(value)
		if err != nil || parsed < 0 {
			err = failure.BadRequestFromString("invalid limit")
			response.WithTracedError(w, scope, err, "invalid request parameters")

			return
		}

		limit = parsed
	}

	res, err := handler.service.TopRooms(ctx, limit)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to get top rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
