package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Room объединяет участников, которые делятся своей геопозицией
type Room struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// PasswordHash - bcrypt хэш пароля комнаты; nil значит открытая комната
	PasswordHash []byte `json:"-"`

	Members map[string]Member `json:"members"`
}

func NewRoom(passwordHash []byte) *Room {
	return &Room{
		ID:           NewRoomID(),
		CreatedAt:    time.Now(),
		PasswordHash: passwordHash,
		Members:      make(map[string]Member),
	}
}

// NewRoomID generates a short opaque room identifier. Uniqueness is
// probabilistic, collisions are not checked.
func NewRoomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (r *Room) Protected() bool {
	return len(r.PasswordHash) > 0
}

// Member представляет участника комнаты
type Member struct {
	ID   string `json:"client_id"`
	Name string `json:"name"`

	// Location and UpdatedAt are either both nil (the member has not pushed
	// a location yet) or both set.
	Location  *Location  `json:"location,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
