package dto

import (
	"strings"
	"time"

	"frontdesk/internal/domains/booking/model"
	customerModel "frontdesk/internal/domains/customer/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/stay"
	"frontdesk/shared/timezone"
)

type BookingRequest struct {
	CustomerName  string  `json:"customer_name"   validate:"required,max=100"`
	Phone         string  `json:"phone"           validate:"required,phone"`
	Email         string  `json:"email"           validate:"omitempty,email,max=100"`
	Address       string  `json:"address"         validate:"omitempty,max=255"`
	TaxID         string  `json:"tax_id"          validate:"omitempty,max=20"`
	RoomID        int     `json:"room_id"         validate:"required,gt=0"`
	CheckInDate   string  `json:"check_in_date"   validate:"required,date"`
	CheckOutDate  string  `json:"check_out_date"  validate:"required,date"`
	Status        string  `json:"status"          validate:"required,oneof=Unpaid Deposit Paid"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	Deposit       float64 `json:"deposit"         validate:"gte=0"`
}

// ToCustomer builds the customer record keyed by the already normalized phone.
func (r *BookingRequest) ToCustomer(phone string, now time.Time) customerModel.Customer {
	return customerModel.Customer{
		Name:      strings.TrimSpace(r.CustomerName),
		Phone:     phone,
		Email:     optional(r.Email),
		Address:   optional(r.Address),
		TaxID:     optional(r.TaxID),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *BookingRequest) ToModel(id string, customerID int64, checkIn, checkOut, now time.Time) model.Booking {
	booking := model.Booking{
		ID:            id,
		CustomerID:    customerID,
		RoomID:        r.RoomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        r.Status,
		PricePerNight: r.PricePerNight,
		Deposit:       r.Deposit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	booking.NormalizeDeposit()

	return booking
}

// ToUpdateFields lists the columns a full-record update replaces.
func ToUpdateFields(booking model.Booking) map[string]any {
	return map[string]any{
		model.FieldCustomerID:    booking.CustomerID,
		model.FieldRoomID:        booking.RoomID,
		model.FieldCheckInDate:   booking.CheckInDate,
		model.FieldCheckOutDate:  booking.CheckOutDate,
		model.FieldStatus:        booking.Status,
		model.FieldPricePerNight: booking.PricePerNight,
		model.FieldDeposit:       booking.Deposit,
		model.FieldUpdatedAt:     booking.UpdatedAt,
	}
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == constant.Empty {
		return nil
	}

	return &value
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerID    int64   `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	TaxID         *string `json:"tax_id"`
	RoomID        int     `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night"`
	Deposit       float64 `json:"deposit"`
	CreatedAt     string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CustomerID = booking.CustomerID
	r.CustomerName = booking.CustomerName
	r.Phone = booking.Phone
	r.Email = booking.Email
	r.Address = booking.Address
	r.TaxID = booking.TaxID
	r.RoomID = booking.RoomID
	r.RoomNumber = booking.RoomNumber
	r.CheckInDate = stay.FormatDate(booking.CheckInDate)
	r.CheckOutDate = stay.FormatDate(booking.CheckOutDate)
	r.Nights = booking.Nights()
	r.Status = booking.Status
	r.PricePerNight = booking.PricePerNight
	r.Deposit = booking.Deposit
	r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Total = len(models)
	r.Bookings = make([]BookingResponse, len(models))

	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityRequest struct {
	RoomID    int    `validate:"required,gt=0"`
	CheckIn   string `validate:"required,date"`
	CheckOut  string `validate:"required,date"`
	ExcludeID string `validate:"omitempty,max=32"`
}

type AvailabilityResponse struct {
	RoomID    int              `json:"room_id"`
	CheckIn   string           `json:"check_in"`
	CheckOut  string           `json:"check_out"`
	Available bool             `json:"available"`
	Conflict  *BookingResponse `json:"conflict,omitempty"`
}
