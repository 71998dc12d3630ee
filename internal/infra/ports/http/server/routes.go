package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/ports/http/handlers"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/ports/http/middleware"
)

func New(
	roomHandler *handlers.RoomHandler,
	venueHandler *handlers.VenueHandler,
) *echo.Echo {
	e := echo.New()

	e.HideBanner = true

	e.Use(echomw.CORS())
	e.Use(middleware.SlogLogger())
	e.Use(middleware.PrometheusMiddleware())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "GeoMeet backend is running"})
	})

	api := e.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.POST("", roomHandler.CreateRoom)
			rooms.POST("/:id/join", roomHandler.JoinRoom)
			rooms.POST("/:id/location", roomHandler.PushLocation)
			rooms.GET("/:id/locations", roomHandler.ListLocations)
		}

		api.POST("/venues", venueHandler.SearchVenues)
	}

	return e
}
