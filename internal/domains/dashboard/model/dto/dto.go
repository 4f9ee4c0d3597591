package dto

import "frontdesk/internal/domains/dashboard/occupancy"

type DailyOccupancyResponse struct {
	Month     string                 `json:"month"`
	RoomCount int                    `json:"room_count"`
	Points    []occupancy.DailyPoint `json:"points"`
}

type MonthlyOccupancyResponse struct {
	Year      int                      `json:"year"`
	RoomCount int                      `json:"room_count"`
	Points    []occupancy.MonthlyPoint `json:"points"`
}

type TopRoomsResponse struct {
	Rooms []occupancy.RoomBookings `json:"rooms"`
}
