// Package occupancy folds a booking snapshot into the dashboard's occupancy figures.
// Every function recomputes from its input; nothing is cached.
package occupancy

import (
	"sort"
	"strconv"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/stay"
)

const percent = 100

type DailyPoint struct {
	Day           int     `json:"day"`
	Date          string  `json:"date"`
	Booked        int     `json:"booked"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type MonthlyPoint struct {
	Month         int     `json:"month"`
	Label         string  `json:"label"`
	BookedNights  int     `json:"booked_nights"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type RoomBookings struct {
	RoomID       int    `json:"room_id"`
	RoomNumber   string `json:"room_number"`
	BookingCount int    `json:"booking_count"`
}

// BookedOn counts the bookings occupying date. Bookings of one room never overlap,
// so this equals the number of occupied rooms.
func BookedOn(bookings []bookingModel.Booking, date time.Time) int {
	count := 0

	for _, booking := range bookings {
		if stay.OccupiesDate(booking.CheckInDate, booking.CheckOutDate, date) {
			count++
		}
	}

	return count
}

// DailyOccupancy returns one point per day of the month containing date.
func DailyOccupancy(bookings []bookingModel.Booking, roomCount int, date time.Time) []DailyPoint {
	days := stay.MonthDays(date)
	res := make([]DailyPoint, len(days))

	for i, day := range days {
		booked := BookedOn(bookings, day)

		res[i] = DailyPoint{
			Day:           day.Day(),
			Date:          stay.FormatDate(day),
			Booked:        booked,
			OccupancyRate: rate(booked, roomCount),
		}
	}

	return res
}

// MonthlyOccupancy returns twelve points, each the booked room-nights of the month
// over its available room-nights.
func MonthlyOccupancy(bookings []bookingModel.Booking, roomCount, year int) []MonthlyPoint {
	res := make([]MonthlyPoint, 0, 12)

	for month := time.January; month <= time.December; month++ {
		days := stay.MonthDays(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

		nights := 0
		for _, day := range days {
			nights += BookedOn(bookings, day)
		}

		res = append(res, MonthlyPoint{
			Month:         int(month),
			Label:         month.String()[:3],
			BookedNights:  nights,
			OccupancyRate: rate(nights, len(days)*roomCount),
		})
	}

	return res
}

// TopBookedRooms ranks rooms by booking count, most booked first. Ties keep the order
// in which the rooms first appear in bookings.
func TopBookedRooms(bookings []bookingModel.Booking, rooms []roomModel.Room, limit int) []RoomBookings {
	counts := map[int]int{}
	order := []int{}

	for _, booking := range bookings {
		if _, seen := counts[booking.RoomID]; !seen {
			order = append(order, booking.RoomID)
		}

		counts[booking.RoomID]++
	}

	numbers := make(map[int]string, len(rooms))
	for _, room := range rooms {
		numbers[room.ID] = room.Number
	}

	res := make([]RoomBookings, len(order))
	for i, roomID := range order {
		number, ok := numbers[roomID]
		if !ok || number == "" {
			number = "Room " + strconv.Itoa(roomID)
		}

		res[i] = RoomBookings{RoomID: roomID, RoomNumber: number, BookingCount: counts[roomID]}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].BookingCount > res[j].BookingCount
	})

	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res
}

func rate(booked, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}

	return percent * float64(booked) / float64(capacity)
}
