package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/ports/http/dto"
	"github.com/Meerasha8/GeoMeet-Backend/internal/usecase"
)

type VenueHandler struct {
	venueUsecase usecase.VenueUsecase
}

func NewVenueHandler(venueUsecase usecase.VenueUsecase) *VenueHandler {
	return &VenueHandler{
		venueUsecase: venueUsecase,
	}
}

func (h *VenueHandler) SearchVenues(c echo.Context) error {
	var req dto.SearchVenuesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if req.Query == "" {
		req.Query = dto.DefaultQuery
	}

	if req.Radius <= 0 {
		req.Radius = dto.DefaultRadiusMeters
	}

	venues := h.venueUsecase.SearchVenues(c.Request().Context(), req.Query, req.Radius, req.Locations)

	return c.JSON(http.StatusOK, venues)
}
