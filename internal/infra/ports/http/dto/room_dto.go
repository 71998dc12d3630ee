package dto

import (
	"time"

	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
)

type CreateRoomRequest struct {
	Password string `json:"password"`
}

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
}

type JoinRoomRequest struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type PushLocationRequest struct {
	ClientID string  `json:"client_id"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type MemberResponse struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`

	// Null until the member pushes a location for the first time.
	Lat       *float64   `json:"lat"`
	Lon       *float64   `json:"lon"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func NewMemberResponse(member models.Member) MemberResponse {
	resp := MemberResponse{
		ClientID:  member.ID,
		Name:      member.Name,
		UpdatedAt: member.UpdatedAt,
	}

	if member.Location != nil {
		resp.Lat = &member.Location.Lat
		resp.Lon = &member.Location.Lon
	}

	return resp
}
