package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/constant"
	"github.com/Meerasha8/GeoMeet-Backend/internal/application/metric"
	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/adapters/memory"
)

type RoomUsecase interface {
	// CreateRoom makes a new room and returns its id. An empty password
	// creates an open room.
	CreateRoom(ctx context.Context, password string) (string, error)

	// JoinRoom adds the client to the room, overwriting any previous
	// entry with the same client id (the location resets to absent).
	JoinRoom(ctx context.Context, roomID, clientID, name, password string) error

	// PushLocation stores the member's current coordinates.
	PushLocation(ctx context.Context, roomID, clientID string, lat, lon float64) error

	// ListLocations returns a snapshot of the room's members.
	ListLocations(ctx context.Context, roomID string) ([]models.Member, error)
}

type roomUsecase struct {
	roomRepo memory.RoomRepository
}

func NewRoomUsecase(roomRepo memory.RoomRepository) RoomUsecase {
	return &roomUsecase{roomRepo: roomRepo}
}

func (uc *roomUsecase) CreateRoom(ctx context.Context, password string) (string, error) {
	var passwordHash []byte

	if password != "" {
		var err error

		passwordHash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("hash room password: %w", err)
		}
	}

	room := models.NewRoom(passwordHash)

	uc.roomRepo.Add(ctx, room)

	slog.Info("room created", slog.String(constant.RoomID, room.ID))

	return room.ID, nil
}

func (uc *roomUsecase) JoinRoom(ctx context.Context, roomID, clientID, name, password string) error {
	if clientID == "" || name == "" {
		return models.ErrMissingField
	}

	passwordHash, exists := uc.roomRepo.PasswordHash(ctx, roomID)
	if !exists {
		return models.ErrRoomNotFound
	}

	// Hash is immutable after creation, so the compare can run outside
	// the repository lock.
	if len(passwordHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(passwordHash, []byte(password)); err != nil {
			return models.ErrInvalidPassword
		}
	}

	member := models.Member{
		ID:   clientID,
		Name: name,
	}

	if err := uc.roomRepo.PutMember(ctx, roomID, member); err != nil {
		return err
	}

	metric.IncrementMembersJoined()

	slog.Info(
		"member joined room",
		slog.String(constant.RoomID, roomID),
		slog.String(constant.ClientID, clientID),
	)

	return nil
}

func (uc *roomUsecase) PushLocation(ctx context.Context, roomID, clientID string, lat, lon float64) error {
	loc := models.Location{Lat: lat, Lon: lon}

	if err := uc.roomRepo.SetLocation(ctx, roomID, clientID, loc, time.Now()); err != nil {
		return err
	}

	metric.IncrementLocationUpdates()

	return nil
}

func (uc *roomUsecase) ListLocations(ctx context.Context, roomID string) ([]models.Member, error) {
	return uc.roomRepo.Members(ctx, roomID)
}
