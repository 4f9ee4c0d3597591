// Package availability answers room occupancy questions over a snapshot of bookings.
package availability

import (
	"errors"
	"fmt"
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/stay"
)

type Status string

const (
	Vacant Status = "Vacant"
	Booked Status = "Booked"
)

var ErrRoomUnavailable = errors.New("room is not available")

// ConflictError names the booking that blocks a candidate stay.
type ConflictError struct {
	Booking model.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("room %d is already booked by %s from %s to %s",
		e.Booking.RoomID,
		e.Booking.ID,
		stay.FormatDate(e.Booking.CheckInDate),
		stay.FormatDate(e.Booking.CheckOutDate),
	)
}

func (e *ConflictError) Unwrap() error {
	return ErrRoomUnavailable
}

// OnDate returns the booking occupying roomID on date, if any.
func OnDate(bookings []model.Booking, roomID int, date time.Time) (model.Booking, bool) {
	for _, booking := range bookings {
		if booking.RoomID == roomID && stay.OccupiesDate(booking.CheckInDate, booking.CheckOutDate, date) {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func RoomStatus(bookings []model.Booking, roomID int, date time.Time) Status {
	if _, ok := OnDate(bookings, roomID, date); ok {
		return Booked
	}

	return Vacant
}

// FindConflict returns the first booking for roomID overlapping [checkIn, checkOut).
// The booking whose id equals excludeID is skipped so an edit never clashes with itself.
func FindConflict(bookings []model.Booking, roomID int, checkIn, checkOut time.Time, excludeID string) (model.Booking, bool) {
	for _, booking := range bookings {
		if booking.RoomID != roomID || (excludeID != "" && booking.ID == excludeID) {
			continue
		}

		if stay.Overlaps(checkIn, checkOut, booking.CheckInDate, booking.CheckOutDate) {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func IsRoomAvailable(bookings []model.Booking, roomID int, checkIn, checkOut time.Time, excludeID string) bool {
	_, found := FindConflict(bookings, roomID, checkIn, checkOut, excludeID)

	return !found
}

// Check returns a *ConflictError when the candidate stay clashes with an existing booking.
func Check(bookings []model.Booking, roomID int, checkIn, checkOut time.Time, excludeID string) error {
	if booking, found := FindConflict(bookings, roomID, checkIn, checkOut, excludeID); found {
		return &ConflictError{Booking: booking}
	}

	return nil
}

// Occupied returns every booking occupying date, in input order.
func Occupied(bookings []model.Booking, date time.Time) []model.Booking {
	res := []model.Booking{}

	for _, booking := range bookings {
		if stay.OccupiesDate(booking.CheckInDate, booking.CheckOutDate, date) {
			res = append(res, booking)
		}
	}

	return res
}
