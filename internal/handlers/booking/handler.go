package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/stay"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/on", handler.GetBookingsOnDate)
		routerGroup.Get("/search", handler.SearchBookings)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a booking
// @Description Create a booking for a room. The customer is matched by phone number and the stay must not overlap another booking of the room.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookingRequest true "Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.BookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.WithTracedError(writer, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to create booking")

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateBooking replaces every field of an existing booking.
// @Summary Update a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.BookingRequest true "Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	scope.SetAttribute("booking_id", id)
	req := dto.BookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.WithTracedError(writer, scope, err, "invalid request body")

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to update booking")

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists every booking, newest first.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to get bookings")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingsOnDate lists the bookings that occupy a room on the given date.
// @Summary Bookings on a date
// @Tags Booking
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/on [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsOnDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsOnDate")
	defer scope.End()

	date, err := shared.DateOrToday(request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		response.WithTracedError(writer, scope, err, "invalid request parameters")

		return
	}

	res, err := handler.service.OnDate(ctx, stay.FormatDate(date))
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to get bookings on date")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchBookings matches customer name, phone, booking id or check-in date.
// @Summary Search bookings
// @Tags Booking
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/search [get]
// @Security BearerAuth
func (handler *Handler) SearchBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBookings")
	defer scope.End()

	res, err := handler.service.Search(ctx, request.URL.Query().Get(constant.RequestParamQuery))
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to search bookings")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckAvailability reports whether a room is free for a stay.
// @Summary Check room availability
// @Tags Booking
// @Produce json
// @Param room_id query int true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_id query string false "Booking being edited"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := request.URL.Query()
	roomID, _ := shared.ConvertStringToInt(query.Get(constant.RequestParamRoom))

	req := dto.AvailabilityRequest{
		RoomID:    roomID,
		CheckIn:   query.Get(constant.RequestParamCheckIn),
		CheckOut:  query.Get(constant.RequestParamCheckOut),
		ExcludeID: query.Get(constant.RequestParamExclude),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithTracedError(writer, scope, err, "invalid request parameters")

		return
	}

	res, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to check availability")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	scope.SetAttribute("booking_id", id)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		response.WithTracedError(writer, scope, err, "failed to get booking")

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
