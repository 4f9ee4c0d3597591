package dto

import (
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/traffic"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

type CleaningStatusResponse struct {
	RoomID      int      `json:"room_id"`
	RoomNumber  string   `json:"room_number"`
	Status      string   `json:"status"`
	LastUpdated string   `json:"last_updated"`
	Traffic     []string `json:"traffic,omitempty"`
}

func (r *CleaningStatusResponse) FromModel(status model.CleaningStatus) {
	r.RoomID = status.RoomID
	r.RoomNumber = status.RoomNumber
	r.Status = status.Status
	r.LastUpdated = timezone.Format(status.LastUpdated, constant.DateFormat)
}

type GetCleaningStatusesResponse struct {
	Date     string                   `json:"date"`
	Statuses []CleaningStatusResponse `json:"statuses"`
}

func (r *GetCleaningStatusesResponse) FromModels(statuses []model.CleaningStatus, labels map[int]traffic.Labels) {
	r.Statuses = make([]CleaningStatusResponse, len(statuses))

	for i, status := range statuses {
		r.Statuses[i].FromModel(status)
		r.Statuses[i].Traffic = labels[status.RoomID].Strings()
	}
}

// ToggleRequest asks to change a room's cleaning status. An empty status flips the current one.
type ToggleRequest struct {
	Status string `json:"status" validate:"omitempty,oneof='Clean' 'Needs Cleaning'"`
}

type ToggleResponse struct {
	Token         string `json:"token"`
	RoomID        int    `json:"room_id"`
	CurrentStatus string `json:"current_status"`
	TargetStatus  string `json:"target_status"`
	ExpiresIn     int    `json:"expires_in"`
}

type ConfirmToggleRequest struct {
	Token string `json:"token" validate:"required,uuid"`
}

// PendingToggle is the change held until its token is confirmed.
type PendingToggle struct {
	RoomID int    `json:"room_id"`
	Status string `json:"status"`
}

type RolloverResponse struct {
	Date     string `json:"date"`
	Occupied []int  `json:"occupied_rooms"`
	Flipped  int64  `json:"flipped"`
}
