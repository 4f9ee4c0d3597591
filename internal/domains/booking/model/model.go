package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"frontdesk/shared/stay"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "booking_id"
	FieldCustomerID    = "customer_id"
	FieldRoomID        = "room_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldStatus        = "status"
	FieldPricePerNight = "price_per_night"
	FieldDeposit       = "deposit"
	FieldCreatedAt     = "created_at"
	FieldUpdatedAt     = "updated_at"
	FieldCustomerName  = "customer_name"
	FieldPhone         = "phone"
)

const (
	StatusUnpaid  = "Unpaid"
	StatusDeposit = "Deposit"
	StatusPaid    = "Paid"
)

const (
	idPrefix       = "SRH"
	idSuffixLength = 6
	idAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type Booking struct {
	ID            string    `db:"booking_id"`
	CustomerID    int64     `db:"customer_id"`
	RoomID        int       `db:"room_id"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	Status        string    `db:"status"`
	PricePerNight float64   `db:"price_per_night"`
	Deposit       float64   `db:"deposit"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`

	CustomerName string  `db:"customer_name" table:"customers"`
	Phone        string  `db:"phone"         table:"customers"`
	Email        *string `db:"email"         table:"customers"`
	Address      *string `db:"address"       table:"customers"`
	TaxID        *string `db:"tax_id"        table:"customers"`
	RoomNumber   string  `db:"room_number"   table:"rooms"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN customers ON customers.customer_id = bookings.customer_id JOIN rooms ON rooms.room_id = bookings.room_id"
}

// Nights is the length of the stay.
func (b Booking) Nights() int {
	return stay.Nights(b.CheckInDate, b.CheckOutDate)
}

// NormalizeDeposit zeroes the deposit unless the booking is in Deposit status.
func (b *Booking) NormalizeDeposit() {
	if b.Status != StatusDeposit {
		b.Deposit = 0
	}
}

// GenerateID returns an id of the form SRH-YYYYMMDD-XXXXXX dated by createdAt.
func GenerateID(createdAt time.Time) (string, error) {
	suffix := make([]byte, idSuffixLength)
	limit := big.NewInt(int64(len(idAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate booking id: %w", err)
		}

		suffix[i] = idAlphabet[n.Int64()]
	}

	return fmt.Sprintf("%s-%s-%s", idPrefix, createdAt.Format(stay.CompactLayout), suffix), nil
}
