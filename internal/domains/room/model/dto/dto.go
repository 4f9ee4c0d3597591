package dto

import (
	"fmt"

	"frontdesk/internal/domains/room/model"
)

const (
	StatusVacant = "Vacant"
	StatusBooked = "Booked"
)

type RoomResponse struct {
	ID      int    `json:"id"`
	Number  string `json:"number"`
	Type    string `json:"type"`
	BedType string `json:"bed_type"`
	Floor   int    `json:"floor"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.BedType = model.BedType
	r.Floor = model.Floor
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomStatusResponse is one row of the room-status board for a single date.
type RoomStatusResponse struct {
	RoomResponse
	Status       string  `json:"status"`
	BookingID    *string `json:"booking_id,omitempty"`
	CustomerName *string `json:"customer_name,omitempty"`
}

type RoomStatusBoardResponse struct {
	Date   string               `json:"date"`
	Vacant int                  `json:"vacant"`
	Booked int                  `json:"booked"`
	Rooms  []RoomStatusResponse `json:"rooms"`
}

// ProvisionFile is the YAML document cmd/provision loads rooms from.
type ProvisionFile struct {
	Rooms []model.Room `yaml:"rooms"`
}

func (p *ProvisionFile) Validate() error {
	seen := map[int]bool{}

	for _, room := range p.Rooms {
		if room.ID <= 0 {
			return errInvalidRoom(room, "id must be positive")
		}

		if seen[room.ID] {
			return errInvalidRoom(room, "duplicate id")
		}

		seen[room.ID] = true

		switch room.Type {
		case model.TypeRiverView, model.TypeStandardView, model.TypeCottage:
		default:
			return errInvalidRoom(room, "unknown room type "+room.Type)
		}

		switch room.BedType {
		case model.BedDouble, model.BedTwin:
		default:
			return errInvalidRoom(room, "unknown bed type "+room.BedType)
		}
	}

	return nil
}

func errInvalidRoom(room model.Room, reason string) error {
	return fmt.Errorf("room %d (%s): %s", room.ID, room.Number, reason)
}
