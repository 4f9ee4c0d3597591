package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/status", handler.GetRoomStatus)
	})
}

// GetRooms lists the hotel's rooms.
// @Summary List rooms
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to get rooms")

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomStatus returns the vacant/booked board for a date.
// @Summary Room status board
// @Tags Room
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.RoomStatusBoardResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/status [get]
// @Security BearerAuth
func (handler *Handler) GetRoomStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStatus")
	defer scope.End()

	date, err := shared.DateOrToday(r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		response.WithTracedError(w, scope, err, "invalid request parameters")

		return
	}

	board, err := handler.service.Status(ctx, date)
	if err != nil {
		response.WithTracedError(w, scope, err, "failed to get room status")

		return
	}

	response.WithJSON(w, http.StatusOK, board)
}
