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
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/receipt/model/dto"
	"frontdesk/internal/domains/receipt/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

var checkIn = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

var stored = []bookingModel.Booking{
	{ID: "SRH-20240501-BBBBBB", CustomerName: "Second", RoomNumber: "102", CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 1), PricePerNight: 900},
	{ID: "SRH-20240501-AAAAAA", CustomerName: "First", RoomNumber: "101", CheckInDate: checkIn, CheckOutDate: checkIn.AddDate(0, 0, 2), PricePerNight: 1000, Deposit: 300, Status: bookingModel.StatusDeposit},
}

func newService(t *testing.T) (service.Receipt, *bookingMocks.MockBooking, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Hotel.NameEn = "Sunriver Hotel"
	cfg.Hotel.NameTh = "โรงแรมซันริเวอร์"
	cfg.Hotel.Phone = "093-152-9564"

	bookings := bookingMocks.NewMockBooking(ctrl)
	archive := s3Mocks.NewMockS3(ctrl)

	return service.New(bookings, cfg, archive, mocks.NewOtel()), bookings, archive
}

func TestReceiptService_Build(t *testing.T) {
	svc, bookings, _ := newService(t)

	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)

	res, err := svc.Build(context.Background(), dto.ReceiptRequest{
		BookingIDs: []string{"SRH-20240501-AAAAAA", "SRH-20240501-BBBBBB", "SRH-20240501-AAAAAA"},
	})
	require.NoError(t, err)

	assert.Equal(t, "SRH-20240501-AAAAAA", res.Number)
	assert.Equal(t, "First", res.Customer.Name)
	assert.Equal(t, "N/A", res.Customer.Address)
	assert.Equal(t, "Sunriver Hotel", res.Hotel.Name)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "101", res.Lines[0].RoomNumber)
	assert.Equal(t, "2024-05-10", res.Lines[0].CheckInDate)
	assert.InDelta(t, 2900, res.Total, 0.001)
	assert.InDelta(t, 300, res.Deposits, 0.001)
	assert.InDelta(t, 2600, res.Balance, 0.001)
}

func TestReceiptService_Build_Thai(t *testing.T) {
	svc, bookings, _ := newService(t)

	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored[1:], nil)

	res, err := svc.Build(context.Background(), dto.ReceiptRequest{BookingIDs: []string{"SRH-20240501-AAAAAA"}, Language: "th"})
	require.NoError(t, err)
	assert.Equal(t, "โรงแรมซันริเวอร์", res.Hotel.Name)
}

func TestReceiptService_Build_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bookings []bookingModel.Booking
		repoErr  error
		wantCode int
	}{
		{
			name:     "unknown booking",
			bookings: stored[:1],
			wantCode: http.StatusNotFound,
		},
		{
			name:     "repository failure",
			repoErr:  errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bookings, _ := newService(t)

			bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.bookings, tt.repoErr)

			_, err := svc.Build(context.Background(), dto.ReceiptRequest{BookingIDs: []string{"SRH-20240501-AAAAAA"}})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestReceiptService_Export(t *testing.T) {
	svc, bookings, _ := newService(t)

	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)

	res, err := svc.Export(context.Background(), dto.ReceiptRequest{BookingIDs: []string{"SRH-20240501-AAAAAA"}})
	require.NoError(t, err)

	assert.Equal(t, "receipt-SRH-20240501-AAAAAA.xlsx", res.FileName)
	assert.NotEmpty(t, res.Content)
	assert.Empty(t, res.URL)
}

func TestReceiptService_Export_Archive(t *testing.T) {
	svc, bookings, archive := newService(t)

	archive.EXPECT().Enabled().Return(true)
	bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
	archive.EXPECT().
		Upload(gomock.Any(), gomock.Any(), "receipt-SRH-20240501-AAAAAA.xlsx", constant.ContentTypeXLSX, gomock.Any()).
		Return("https://files.example.com/receipts/receipt-SRH-20240501-AAAAAA.xlsx", nil)

	res, err := svc.Export(context.Background(), dto.ReceiptRequest{BookingIDs: []string{"SRH-20240501-AAAAAA"}, Archive: true})
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/receipts/receipt-SRH-20240501-AAAAAA.xlsx", res.URL)
	assert.Empty(t, res.Content)
}

func TestReceiptService_Export_ArchiveDisabled(t *testing.T) {
	svc, _, archive := newService(t)

	archive.EXPECT().Enabled().Return(false)

	_, err := svc.Export(context.Background(), dto.ReceiptRequest{BookingIDs: []string{"SRH-20240501-AAAAAA"}, Archive: true})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
