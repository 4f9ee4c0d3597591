// Package traffic derives a room's guest movement for a day from its bookings.
package traffic

import (
	"slices"
	"time"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/stay"
)

const (
	LabelCheckingIn  = "checking-in"
	LabelCheckingOut = "checking-out"
	LabelInHouse     = "in-house"
	LabelVacant      = "vacant"
)

// Labels are independent; a turnover day is both CheckingOut and CheckingIn.
// InHouse means staying over today without arriving today.
type Labels struct {
	CheckingIn  bool `json:"checking_in"`
	CheckingOut bool `json:"checking_out"`
	InHouse     bool `json:"in_house"`
}

func (l Labels) Vacant() bool {
	return !l.CheckingIn && !l.CheckingOut && !l.InHouse
}

// Strings lists the active labels in the order a departure, arrival and stay-over are handled.
func (l Labels) Strings() []string {
	if l.Vacant() {
		return []string{LabelVacant}
	}

	res := []string{}

	if l.CheckingOut {
		res = append(res, LabelCheckingOut)
	}

	if l.CheckingIn {
		res = append(res, LabelCheckingIn)
	}

	if l.InHouse {
		res = append(res, LabelInHouse)
	}

	return res
}

func For(bookings []model.Booking, roomID int, today time.Time) Labels {
	var labels Labels

	for _, booking := range bookings {
		if booking.RoomID != roomID {
			continue
		}

		if stay.SameDay(booking.CheckInDate, today) {
			labels.CheckingIn = true
		}

		if stay.SameDay(booking.CheckOutDate, today) {
			labels.CheckingOut = true
		}

		if stay.OccupiesDate(booking.CheckInDate, booking.CheckOutDate, today) && !stay.SameDay(booking.CheckInDate, today) {
			labels.InHouse = true
		}
	}

	return labels
}

// OccupiedRooms returns the ids of rooms occupied on today, ascending and without duplicates.
func OccupiedRooms(bookings []model.Booking, today time.Time) []int {
	res := []int{}

	for _, booking := range bookings {
		if stay.OccupiesDate(booking.CheckInDate, booking.CheckOutDate, today) && !slices.Contains(res, booking.RoomID) {
			res = append(res, booking.RoomID)
		}
	}

	slices.Sort(res)

	return res
}
