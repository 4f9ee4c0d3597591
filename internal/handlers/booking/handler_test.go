package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/handlers/booking"
	"frontdesk/shared/failure"
)

const validBody = `{
	"customer_name": "Somchai Jaidee",
	"phone": "081-234-5678",
	"room_id": 4,
	"check_in_date": "2024-05-10",
	"check_out_date": "2024-05-12",
	"status": "Deposit",
	"price_per_night": 1200,
	"deposit": 500
}`

type fakeBooking struct {
	err error

	created      dto.BookingRequest
	updatedID    string
	onDate       string
	search       string
	availability dto.AvailabilityRequest
}

func (f *fakeBooking) Create(_ context.Context, req dto.BookingRequest) (dto.BookingResponse, error) {
	f.created = req

	return dto.BookingResponse{ID: "SRH-20240510-ABC123", RoomID: req.RoomID}, f.err
}

func (f *fakeBooking) Update(_ context.Context, id string, req dto.BookingRequest) (dto.BookingResponse, error) {
	f.updatedID = id

	return dto.BookingResponse{ID: id, RoomID: req.RoomID}, f.err
}

func (f *fakeBooking) Get(_ context.Context, id string) (dto.BookingResponse, error) {
	return dto.BookingResponse{ID: id}, f.err
}

func (f *fakeBooking) GetAll(context.Context) (dto.GetBookingsResponse, error) {
	return dto.GetBookingsResponse{}, f.err
}

func (f *fakeBooking) OnDate(_ context.Context, date string) (dto.GetBookingsResponse, error) {
	f.onDate = date

	return dto.GetBookingsResponse{}, f.err
}

func (f *fakeBooking) Search(_ context.Context, query string) (dto.GetBookingsResponse, error) {
	f.search = query

	return dto.GetBookingsResponse{}, f.err
}

func (f *fakeBooking) CheckAvailability(_ context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error) {
	f.availability = req

	return dto.AvailabilityResponse{RoomID: req.RoomID, Available: true}, f.err
}

func serve(svc *fakeBooking, method, target, body string) *httptest.ResponseRecorder {
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateBooking(t *testing.T) {
	svc := &fakeBooking{}

	rec := serve(svc, http.MethodPost, "/bookings/", validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRH-20240510-ABC123")
	assert.Equal(t, "Somchai Jaidee", svc.created.CustomerName)
	assert.Equal(t, 4, svc.created.RoomID)
}

func TestUpdateBooking_PassesPathID(t *testing.T) {
	svc := &fakeBooking{}

	rec := serve(svc, http.MethodPut, "/bookings/SRH-20240510-ABC123", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SRH-20240510-ABC123", svc.updatedID)
}

func TestGetBookingsOnDate(t *testing.T) {
	svc := &fakeBooking{}

	rec := serve(svc, http.MethodGet, "/bookings/on?date=2024-05-11", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-05-11", svc.onDate)
}

func TestSearchBookings(t *testing.T) {
	svc := &fakeBooking{}

	rec := serve(svc, http.MethodGet, "/bookings/search?q=0812345678", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0812345678", svc.search)
}

func TestCheckAvailability(t *testing.T) {
	svc := &fakeBooking{}

	rec := serve(svc, http.MethodGet, "/bookings/availability?room_id=4&check_in=2024-05-10&check_out=2024-05-12&exclude_id=SRH-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.AvailabilityRequest{RoomID: 4, CheckIn: "2024-05-10", CheckOut: "2024-05-12", ExcludeID: "SRH-1"}, svc.availability)
}

func TestBookingHandlers_Errors(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		err      error
		wantCode int
	}{
		{name: "missing customer name", method: http.MethodPost, target: "/bookings/", body: `{"phone":"081-234-5678"}`, wantCode: http.StatusBadRequest},
		{name: "unknown status", method: http.MethodPost, target: "/bookings/", body: strings.Replace(validBody, "Deposit", "Free", 1), wantCode: http.StatusBadRequest},
		{name: "overlapping stay", method: http.MethodPost, target: "/bookings/", body: validBody, err: failure.Conflict("room is already booked"), wantCode: http.StatusConflict},
		{name: "unknown booking", method: http.MethodGet, target: "/bookings/SRH-404", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound},
		{name: "bad date", method: http.MethodGet, target: "/bookings/on?date=10/05/2024", wantCode: http.StatusBadRequest},
		{name: "availability without room", method: http.MethodGet, target: "/bookings/availability?check_in=2024-05-10&check_out=2024-05-12", wantCode: http.StatusBadRequest},
		{name: "database down", method: http.MethodGet, target: "/bookings/", err: context.DeadlineExceeded, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeBooking{err: tt.err}, tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
