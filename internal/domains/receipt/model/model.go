package model

import (
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
)

const (
	LanguageEN = "en"
	LanguageTH = "th"

	notAvailable = "N/A"
)

type Hotel struct {
	Name    string
	Address string
	Phone   string
	TaxID   string
}

type Customer struct {
	Name    string
	Address string
	Phone   string
	TaxID   string
}

type Line struct {
	BookingID     string
	RoomNumber    string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Nights        int
	PricePerNight float64
	Total         float64
}

type Receipt struct {
	Number   string
	IssuedOn time.Time
	Language string
	Hotel    Hotel
	Customer Customer
	Lines    []Line
	Total    float64
	Deposits float64
	Balance  float64
}

// Build assembles a receipt for bookings. The first booking names the customer and the receipt number.
func Build(bookings []bookingModel.Booking, hotel Hotel, language string, issuedOn time.Time) Receipt {
	receipt := Receipt{
		IssuedOn: issuedOn,
		Language: language,
		Hotel:    hotel,
		Lines:    make([]Line, len(bookings)),
	}

	if len(bookings) == 0 {
		return receipt
	}

	main := bookings[0]
	receipt.Number = main.ID
	receipt.Customer = Customer{
		Name:    main.CustomerName,
		Address: orNotAvailable(main.Address),
		Phone:   main.Phone,
		TaxID:   orNotAvailable(main.TaxID),
	}

	for i, b := range bookings {
		nights := b.Nights()
		line := Line{
			BookingID:     b.ID,
			RoomNumber:    b.RoomNumber,
			CheckInDate:   b.CheckInDate,
			CheckOutDate:  b.CheckOutDate,
			Nights:        nights,
			PricePerNight: b.PricePerNight,
			Total:         float64(nights) * b.PricePerNight,
		}

		receipt.Lines[i] = line
		receipt.Total += line.Total
		receipt.Deposits += b.Deposit
	}

	receipt.Balance = receipt.Total - receipt.Deposits

	return receipt
}

func orNotAvailable(value *string) string {
	if value == nil || *value == "" {
		return notAvailable
	}

	return *value
}
