package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/metric"
	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
)

// RoomRepository интерфейс для работы с комнатами в памяти
type RoomRepository interface {
	// Add inserts a freshly created room.
	Add(ctx context.Context, room *models.Room)

	// PasswordHash returns the room's bcrypt hash (nil for an open room)
	// and whether the room exists. The hash is immutable after creation.
	PasswordHash(ctx context.Context, roomID string) ([]byte, bool)

	// PutMember inserts or overwrites the member entry with the same id.
	PutMember(ctx context.Context, roomID string, member models.Member) error

	// SetLocation updates the member's location and timestamp together.
	SetLocation(ctx context.Context, roomID, clientID string, loc models.Location, at time.Time) error

	// Members returns a snapshot of the room's members sorted by client id.
	Members(ctx context.Context, roomID string) ([]models.Member, error)

	Count(ctx context.Context) int
}

type roomRepository struct {
	// rooms хранит map[room_id]*room, комнаты не удаляются до конца процесса
	rooms map[string]*models.Room

	mu sync.RWMutex
}

func NewRoomRepository() RoomRepository {
	return &roomRepository{
		rooms: make(map[string]*models.Room, 10),
	}
}

func (r *roomRepository) Add(ctx context.Context, room *models.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rooms[room.ID] = room

	metric.IncrementActiveRooms()
}

func (r *roomRepository) PasswordHash(ctx context.Context, roomID string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, exists := r.rooms[roomID]
	if !exists {
		return nil, false
	}

	return room.PasswordHash, true
}

func (r *roomRepository) PutMember(ctx context.Context, roomID string, member models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, exists := r.rooms[roomID]
	if !exists {
		return models.ErrRoomNotFound
	}

	room.Members[member.ID] = member

	return nil
}

func (r *roomRepository) SetLocation(ctx context.Context, roomID, clientID string, loc models.Location, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, exists := r.rooms[roomID]
	if !exists {
		return models.ErrRoomNotFound
	}

	member, exists := room.Members[clientID]
	if !exists {
		return models.ErrMemberNotFound
	}

	// Fresh pointers so already-taken snapshots are never mutated through.
	member.Location = &loc
	member.UpdatedAt = &at

	room.Members[clientID] = member

	return nil
}

func (r *roomRepository) Members(ctx context.Context, roomID string) ([]models.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, exists := r.rooms[roomID]
	if !exists {
		return nil, models.ErrRoomNotFound
	}

	members := make([]models.Member, 0, len(room.Members))

	for _, member := range room.Members {
		members = append(members, member)
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].ID < members[j].ID
	})

	return members, nil
}

func (r *roomRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rooms)
}
