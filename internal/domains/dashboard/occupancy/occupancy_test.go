package occupancy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/dashboard/occupancy"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared/stay"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := stay.ParseDate(value)
	require.NoError(t, err)

	return parsed
}

func TestDailyOccupancy_OneOfTwentyFourRooms(t *testing.T) {
	bookings := []bookingModel.Booking{
		{RoomID: 1, CheckInDate: day(t, "2024-04-20"), CheckOutDate: day(t, "2024-06-02")},
	}

	points := occupancy.DailyOccupancy(bookings, 24, day(t, "2024-05-17"))

	require.Len(t, points, 31)
	assert.Equal(t, 1, points[0].Day)
	assert.Equal(t, "2024-05-31", points[30].Date)

	for _, point := range points {
		assert.InDelta(t, 4.1667, point.OccupancyRate, 0.0001)
	}
}

func TestDailyOccupancy_HalfOpenStays(t *testing.T) {
	bookings := []bookingModel.Booking{
		{RoomID: 1, CheckInDate: day(t, "2024-02-10"), CheckOutDate: day(t, "2024-02-12")},
		{RoomID: 2, CheckInDate: day(t, "2024-02-11"), CheckOutDate: day(t, "2024-02-12")},
	}

	points := occupancy.DailyOccupancy(bookings, 4, day(t, "2024-02-01"))

	require.Len(t, points, 29)
	assert.InDelta(t, 25, points[9].OccupancyRate, 0)
	assert.InDelta(t, 50, points[10].OccupancyRate, 0)
	assert.InDelta(t, 0, points[11].OccupancyRate, 0)
}

func TestDailyOccupancy_NoRooms(t *testing.T) {
	bookings := []bookingModel.Booking{{RoomID: 1, CheckInDate: day(t, "2024-02-10"), CheckOutDate: day(t, "2024-02-12")}}

	for _, point := range occupancy.DailyOccupancy(bookings, 0, day(t, "2024-02-01")) {
		assert.Zero(t, point.OccupancyRate)
	}
}

func TestMonthlyOccupancy(t *testing.T) {
	bookings := []bookingModel.Booking{
		{RoomID: 1, CheckInDate: day(t, "2023-12-30"), CheckOutDate: day(t, "2024-01-04")},
		{RoomID: 2, CheckInDate: day(t, "2024-01-31"), CheckOutDate: day(t, "2024-02-02")},
	}

	points := occupancy.MonthlyOccupancy(bookings, 2, 2024)

	require.Len(t, points, 12)
	assert.Equal(t, "Jan", points[0].Label)
	assert.Equal(t, 4, points[0].BookedNights)
	assert.InDelta(t, 100*4.0/62.0, points[0].OccupancyRate, 0.0001)
	assert.Equal(t, 1, points[1].BookedNights)
	assert.InDelta(t, 100*1.0/58.0, points[1].OccupancyRate, 0.0001)
	assert.Zero(t, points[11].BookedNights)
}

func TestTopBookedRooms(t *testing.T) {
	rooms := []roomModel.Room{{ID: 1, Number: "101"}, {ID: 2, Number: "102"}, {ID: 3, Number: "103"}}
	bookings := []bookingModel.Booking{
		{RoomID: 3}, {RoomID: 1}, {RoomID: 2}, {RoomID: 1}, {RoomID: 2}, {RoomID: 9},
	}

	got := occupancy.TopBookedRooms(bookings, rooms, 3)

	assert.Equal(t, []occupancy.RoomBookings{
		{RoomID: 1, RoomNumber: "101", BookingCount: 2},
		{RoomID: 2, RoomNumber: "102", BookingCount: 2},
		{RoomID: 3, RoomNumber: "103", BookingCount: 1},
	}, got)

	all := occupancy.TopBookedRooms(bookings, rooms, 0)
	require.Len(t, all, 4)
	assert.Equal(t, "Room 9", all[3].RoomNumber)
}
