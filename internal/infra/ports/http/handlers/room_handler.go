package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/constant"
	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/ports/http/dto"
	"github.com/Meerasha8/GeoMeet-Backend/internal/usecase"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
	}
}

func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	roomID, err := h.roomUsecase.CreateRoom(c.Request().Context(), req.Password)
	if err != nil {
		slog.Error("create room failed", slog.Any(constant.Error, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create room"})
	}

	return c.JSON(http.StatusCreated, dto.CreateRoomResponse{RoomID: roomID})
}

func (h *RoomHandler) JoinRoom(c echo.Context) error {
	var req dto.JoinRoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	err := h.roomUsecase.JoinRoom(c.Request().Context(), c.Param("id"), req.ClientID, req.Name, req.Password)
	if err != nil {
		return roomErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "joined"})
}

func (h *RoomHandler) PushLocation(c echo.Context) error {
	var req dto.PushLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	err := h.roomUsecase.PushLocation(c.Request().Context(), c.Param("id"), req.ClientID, req.Lat, req.Lon)
	if err != nil {
		return roomErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

func (h *RoomHandler) ListLocations(c echo.Context) error {
	members, err := h.roomUsecase.ListLocations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return roomErrorResponse(c, err)
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, member := range members {
		resp = append(resp, dto.NewMemberResponse(member))
	}

	return c.JSON(http.StatusOK, resp)
}

// roomErrorResponse отображает доменные ошибки в HTTP статусы
func roomErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrMissingField):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrRoomNotFound), errors.Is(err, models.ErrMemberNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidPassword):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		slog.Error("room operation failed", slog.Any(constant.Error, err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
