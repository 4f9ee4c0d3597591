package model

import "time"

const (
	TableName  = "cleaning_statuses"
	EntityName = "cleaning_status"

	FieldRoomID       = "room_id"
	FieldStatus       = "status"
	FieldLastUpdated  = "last_updated"
	FieldRolledOverOn = "rolled_over_on"
)

const (
	StatusClean         = "Clean"
	StatusNeedsCleaning = "Needs Cleaning"
)

type CleaningStatus struct {
	RoomID       int        `db:"room_id"`
	Status       string     `db:"status"`
	LastUpdated  time.Time  `db:"last_updated"`
	RolledOverOn *time.Time `db:"rolled_over_on"`
	RoomNumber   string     `db:"room_number" table:"rooms"`
}

func (CleaningStatus) GetJoinQuery() string {
	return "JOIN rooms ON rooms.room_id = cleaning_statuses.room_id"
}

// Flipped returns the other cleaning status.
func Flipped(status string) string {
	if status == StatusClean {
		return StatusNeedsCleaning
	}

	return StatusClean
}
