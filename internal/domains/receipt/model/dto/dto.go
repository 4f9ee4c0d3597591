package dto

import (
	"frontdesk/internal/domains/receipt/model"
	"frontdesk/shared/stay"
)

type ReceiptRequest struct {
	BookingIDs []string `json:"booking_ids" validate:"required,min=1,max=50,dive,required"`
	Language   string   `json:"language"    validate:"omitempty,oneof=en th"`
	Archive    bool     `json:"archive"`
}

// Lang returns the requested language, English when unset.
func (r *ReceiptRequest) Lang() string {
	if r.Language == "" {
		return model.LanguageEN
	}

	return r.Language
}

type HotelResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
}

type CustomerResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
}

type LineResponse struct {
	BookingID     string  `json:"booking_id"`
	RoomNumber    string  `json:"room_number"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	Total         float64 `json:"total"`
}

type ReceiptResponse struct {
	Number   string           `json:"receipt_number"`
	IssuedOn string           `json:"issued_on"`
	Hotel    HotelResponse    `json:"hotel"`
	Customer CustomerResponse `json:"customer"`
	Lines    []LineResponse   `json:"lines"`
	Total    float64          `json:"total_amount"`
	Deposits float64          `json:"deposits_paid"`
	Balance  float64          `json:"balance_due"`
}

func (r *ReceiptResponse) FromModel(receipt model.Receipt) {
	r.Number = receipt.Number
	r.IssuedOn = stay.FormatDate(receipt.IssuedOn)
	r.Hotel = HotelResponse(receipt.Hotel)
	r.Customer = CustomerResponse(receipt.Customer)
	r.Total = receipt.Total
	r.Deposits = receipt.Deposits
	r.Balance = receipt.Balance

	r.Lines = make([]LineResponse, len(receipt.Lines))
	for i, line := range receipt.Lines {
		r.Lines[i] = LineResponse{
			BookingID:     line.BookingID,
			RoomNumber:    line.RoomNumber,
			CheckInDate:   stay.FormatDate(line.CheckInDate),
			CheckOutDate:  stay.FormatDate(line.CheckOutDate),
			Nights:        line.Nights,
			PricePerNight: line.PricePerNight,
			Total:         line.Total,
		}
	}
}

// ExportResult carries either the rendered workbook or, once archived, its URL.
type ExportResult struct {
	FileName string `json:"file_name"`
	URL      string `json:"url,omitempty"`
	Content  []byte `json:"-"`
}
