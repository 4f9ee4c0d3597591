package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	customerMocks "frontdesk/internal/domains/customer/mocks"
	customerModel "frontdesk/internal/domains/customer/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/stay"
)

type fixture struct {
	repo     *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	customer *customerMocks.MockCustomer
	svc      service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Hotel.PhoneRegion = "TH"

	f := fixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		customer: customerMocks.NewMockCustomer(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, f.customer, cfg, kafkaMocks.NewMockClient(ctrl), mocks.NewOtel())

	return f
}

func (f fixture) expectTransaction(times int) {
	f.repo.EXPECT().
		Transaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		}).
		Times(times)
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := stay.ParseDate(value)
	require.NoError(t, err)

	return parsed
}

func request() dto.BookingRequest {
	return dto.BookingRequest{
		CustomerName:  "Somchai Jaidee",
		Phone:         "081-234-5678",
		RoomID:        1,
		CheckInDate:   "2024-05-10",
		CheckOutDate:  "2024-05-12",
		Status:        model.StatusUnpaid,
		PricePerNight: 1200,
		Deposit:       500,
	}
}

var room101 = roomModel.Room{ID: 1, Number: "101", Type: roomModel.TypeRiverView, BedType: roomModel.BedDouble, Floor: 1}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.BookingRequest
		setupMock func(t *testing.T, f fixture)
		wantCode  int
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "created with deposit forced to zero",
			req:  request,
			setupMock: func(t *testing.T, f fixture) {
				f.expectTransaction(1)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "SRH-20240501-TURNVR", RoomID: 1, CheckInDate: day(t, "2024-05-12"), CheckOutDate: day(t, "2024-05-14")}}, nil)
				f.customer.EXPECT().
					UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, customer customerModel.Customer) (int64, error) {
						assert.Equal(t, "+66812345678", customer.Phone)
						assert.Equal(t, "Somchai Jaidee", customer.Name)
						assert.Nil(t, customer.Email)

						return 7, nil
					})
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Regexp(t, `^SRH-\d{8}-[0-9A-Z]{6}$`, booking.ID)
						assert.Equal(t, int64(7), booking.CustomerID)
						assert.Zero(t, booking.Deposit)
						assert.Equal(t, day(t, "2024-05-10"), booking.CheckInDate)

						return nil
					})
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "101", res.RoomNumber)
				assert.Equal(t, 2, res.Nights)
				assert.Zero(t, res.Deposit)
				assert.Equal(t, "+66812345678", res.Phone)
			},
		},
		{
			name: "deposit kept for deposit status",
			req: func() dto.BookingRequest {
				req := request()
				req.Status = model.StatusDeposit

				return req
			},
			setupMock: func(t *testing.T, f fixture) {
				f.expectTransaction(1)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.customer.EXPECT().UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.InDelta(t, 500, booking.Deposit, 0)

						return nil
					})
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.InDelta(t, 500, res.Deposit, 0)
			},
		},
		{
			name: "same day stay rejected",
			req: func() dto.BookingRequest {
				req := request()
				req.CheckOutDate = req.CheckInDate

				return req
			},
			setupMock: func(_ *testing.T, _ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "overlapping stay rejected",
			req:  request,
			setupMock: func(t *testing.T, f fixture) {
				f.expectTransaction(1)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().
					GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "SRH-20240501-TAKEN1", RoomID: 1, CheckInDate: day(t, "2024-05-11"), CheckOutDate: day(t, "2024-05-13")}}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown room",
			req:  request,
			setupMock: func(_ *testing.T, f fixture) {
				f.expectTransaction(1)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "retries when the generated id is taken",
			req:  request,
			setupMock: func(_ *testing.T, f fixture) {
				f.expectTransaction(2)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil).Times(2)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				f.customer.EXPECT().UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
				gomock.InOrder(
					f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505", Constraint: "bookings_pkey"}),
					f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.NotEmpty(t, res.ID)
			},
		},
		{
			name: "exclusion constraint reported as conflict",
			req:  request,
			setupMock: func(_ *testing.T, f fixture) {
				f.expectTransaction(1)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.customer.EXPECT().UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23P01"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "customer write failure",
			req:  request,
			setupMock: func(_ *testing.T, f fixture) {
				f.expectTransaction(1)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.customer.EXPECT().UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.Create(context.Background(), tt.req())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res)
		})
	}
}

func TestBookingService_Create_SamePhoneSharesCustomerKey(t *testing.T) {
	f := newFixture(t)

	phones := []string{}

	f.expectTransaction(2)
	f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101, nil).Times(2)
	f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.customer.EXPECT().
		UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, customer customerModel.Customer) (int64, error) {
			phones = append(phones, customer.Phone)

			return 9, nil
		}).
		Times(2)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first := request()
	second := request()
	second.CustomerName = "Somchai J."
	second.Phone = "+66 81 234 5678"
	second.CheckInDate = "2024-06-01"
	second.CheckOutDate = "2024-06-03"

	a, err := f.svc.Create(context.Background(), first)
	require.NoError(t, err)

	b, err := f.svc.Create(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, []string{"+66812345678", "+66812345678"}, phones)
	assert.Equal(t, a.CustomerID, b.CustomerID)
	assert.Equal(t, "Somchai J.", b.CustomerName)
}

func TestBookingService_Update(t *testing.T) {
	const id = "SRH-20240501-ABCDEF"

	createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(t *testing.T, f fixture)
		wantCode  int
	}{
		{
			name: "keeping own dates does not conflict",
			setupMock: func(t *testing.T, f fixture) {
				current := model.Booking{ID: id, RoomID: 1, CheckInDate: day(t, "2024-05-10"), CheckOutDate: day(t, "2024-05-12"), CreatedAt: createdAt}

				f.expectTransaction(1)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{current}, nil)
				f.customer.EXPECT().UpsertByPhoneTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(7), nil)
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, int64(7), mod[model.FieldCustomerID])
						assert.InDelta(t, 0, mod[model.FieldDeposit], 0)
						assert.NotContains(t, mod, model.FieldCreatedAt)

						return nil
					})
			},
		},
		{
			name: "missing booking",
			setupMock: func(_ *testing.T, f fixture) {
				f.expectTransaction(1)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "moving onto another stay conflicts",
			setupMock: func(t *testing.T, f fixture) {
				current := model.Booking{ID: id, RoomID: 1, CheckInDate: day(t, "2024-05-01"), CheckOutDate: day(t, "2024-05-03")}
				other := model.Booking{ID: "SRH-20240501-OTHER1", RoomID: 1, CheckInDate: day(t, "2024-05-11"), CheckOutDate: day(t, "2024-05-12")}

				f.expectTransaction(1)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
				f.rooms.EXPECT().LockTx(gomock.Any(), gomock.Any(), 1).Return(room101, nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{current, other}, nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.Update(context.Background(), id, request())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, res.ID)
			assert.Equal(t, "2024-05-10", res.CheckInDate)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.svc.Get(context.Background(), "SRH-20240101-NOPE00")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_OnDate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			{ID: "A", RoomID: 1, CheckInDate: day(t, "2024-05-10"), CheckOutDate: day(t, "2024-05-12")},
			{ID: "B", RoomID: 2, CheckInDate: day(t, "2024-05-08"), CheckOutDate: day(t, "2024-05-11")},
		}, nil)

	res, err := f.svc.OnDate(context.Background(), "2024-05-11")
	require.NoError(t, err)

	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "A", res.Bookings[0].ID)

	_, err = f.svc.OnDate(context.Background(), "11/05/2024")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_Search(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Contains(t, where, "customers.customer_name")
			assert.Contains(t, where, "TO_CHAR(bookings.check_in_date")
			assert.Equal(t, "%somchai%", args["search"])

			return []model.Booking{{ID: "A"}}, nil
		})

	res, err := f.svc.Search(context.Background(), "  somchai ")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.AvailabilityRequest
		setupMock     func(t *testing.T, f fixture)
		wantCode      int
		wantAvailable bool
	}{
		{
			name: "turnover day is free",
			req:  dto.AvailabilityRequest{RoomID: 1, CheckIn: "2024-05-10", CheckOut: "2024-05-12"},
			setupMock: func(t *testing.T, f fixture) {
				f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "X", RoomID: 1, CheckInDate: day(t, "2024-05-12"), CheckOutDate: day(t, "2024-05-14")}}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "overlap names the conflicting booking",
			req:  dto.AvailabilityRequest{RoomID: 1, CheckIn: "2024-05-11", CheckOut: "2024-05-13"},
			setupMock: func(t *testing.T, f fixture) {
				f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{{ID: "X", RoomID: 1, CheckInDate: day(t, "2024-05-10"), CheckOutDate: day(t, "2024-05-12")}}, nil)
			},
			wantAvailable: false,
		},
		{
			name:      "inverted range",
			req:       dto.AvailabilityRequest{RoomID: 1, CheckIn: "2024-05-13", CheckOut: "2024-05-11"},
			setupMock: func(_ *testing.T, _ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req:  dto.AvailabilityRequest{RoomID: 99, CheckIn: "2024-05-10", CheckOut: "2024-05-11"},
			setupMock: func(_ *testing.T, f fixture) {
				f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.CheckAvailability(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)

			if tt.wantAvailable {
				assert.Nil(t, res.Conflict)
			} else {
				require.NotNil(t, res.Conflict)
				assert.Equal(t, "X", res.Conflict.ID)
			}
		})
	}
}
