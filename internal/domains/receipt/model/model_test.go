package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/receipt/model"
)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild(t *testing.T) {
	address := "215 Moo 1"
	hotel := model.Hotel{Name: "Sunriver Hotel", Phone: "093-152-9564"}
	issued := day(20)

	bookings := []bookingModel.Booking{
		{
			ID: "SRH-20240501-AAAAAA", CustomerName: "Somchai", Phone: "+66812345678", Address: &address,
			RoomNumber: "101", CheckInDate: day(10), CheckOutDate: day(13), PricePerNight: 1200,
			Status: bookingModel.StatusDeposit, Deposit: 500,
		},
		{
			ID: "SRH-20240501-BBBBBB", CustomerName: "Someone Else", RoomNumber: "102",
			CheckInDate: day(10), CheckOutDate: day(12), PricePerNight: 900, Status: bookingModel.StatusUnpaid,
		},
	}

	receipt := model.Build(bookings, hotel, model.LanguageEN, issued)

	assert.Equal(t, "SRH-20240501-AAAAAA", receipt.Number)
	assert.Equal(t, issued, receipt.IssuedOn)
	assert.Equal(t, hotel, receipt.Hotel)
	assert.Equal(t, model.Customer{Name: "Somchai", Address: address, Phone: "+66812345678", TaxID: "N/A"}, receipt.Customer)

	assert.Len(t, receipt.Lines, 2)
	assert.Equal(t, 3, receipt.Lines[0].Nights)
	assert.InDelta(t, 3600, receipt.Lines[0].Total, 0.001)
	assert.InDelta(t, 1800, receipt.Lines[1].Total, 0.001)
	assert.InDelta(t, 5400, receipt.Total, 0.001)
	assert.InDelta(t, 500, receipt.Deposits, 0.001)
	assert.InDelta(t, 4900, receipt.Balance, 0.001)
}

func TestBuild_Empty(t *testing.T) {
	receipt := model.Build(nil, model.Hotel{}, model.LanguageTH, day(1))

	assert.Empty(t, receipt.Number)
	assert.Empty(t, receipt.Lines)
	assert.Zero(t, receipt.Total)
}
