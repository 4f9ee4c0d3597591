package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/dashboard/service"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

func setup(t *testing.T) (*bookingMocks.MockBooking, *roomMocks.MockRoom, service.Dashboard) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Hotel.TopRooms = 10

	bookings := bookingMocks.NewMockBooking(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)

	return bookings, rooms, service.New(bookings, rooms, cfg, mocks.NewOtel())
}

func TestDashboardService_DailyOccupancy(t *testing.T) {
	bookings, rooms, svc := setup(t)

	date := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)

	rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(24, nil)
	bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]bookingModel.Booking, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), args["range_start"])
			assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), args["range_end"])

			return []bookingModel.Booking{
				{RoomID: 1, CheckInDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), CheckOutDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		})

	res, err := svc.DailyOccupancy(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, "2024-05", res.Month)
	assert.Equal(t, 24, res.RoomCount)
	require.Len(t, res.Points, 31)
	assert.InDelta(t, 4.1667, res.Points[15].OccupancyRate, 0.0001)
}

func TestDashboardService_MonthlyOccupancy(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		setupMock func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom)
		wantCode  int
	}{
		{
			name: "computed",
			year: 2024,
			setupMock: func(bookings *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name:      "year out of range",
			year:      99,
			setupMock: func(_ *bookingMocks.MockBooking, _ *roomMocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store failure",
			year: 2024,
			setupMock: func(_ *bookingMocks.MockBooking, rooms *roomMocks.MockRoom) {
				rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings, rooms, svc := setup(t)
			tt.setupMock(bookings, rooms)

			res, err := svc.MonthlyOccupancy(context.Background(), tt.year)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Len(t, res.Points, 12)
			assert.Equal(t, tt.year, res.Year)
		})
	}
}

func TestDashboardService_TopRooms_DefaultLimit(t *testing.T) {
	bookings, rooms, svc := setup(t)

	all := []bookingModel.Booking{}
	roomList := []roomModel.Room{}

	for id := 1; id <= 12; id++ {
		roomList = append(roomList, roomModel.Room{ID: id, Number: "R"})
		for range id {
			all = append(all, bookingModel.Booking{RoomID: id})
		}
	}

	rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomList, nil)
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(all, nil)

	res, err := svc.TopRooms(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, res.Rooms, 10)
	assert.Equal(t, 12, res.Rooms[0].RoomID)
	assert.Equal(t, 3, res.Rooms[9].RoomID)
}
