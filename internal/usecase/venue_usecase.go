package usecase

import (
	"context"
	"log/slog"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/constant"
	"github.com/Meerasha8/GeoMeet-Backend/internal/application/metric"
	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/adapters/foursquare"
	"github.com/Meerasha8/GeoMeet-Backend/internal/infra/adapters/openroute"
)

const defaultVenueLimit = 5

type VenueUsecase interface {
	// SearchVenues fans out a place search per coordinate and merges the
	// results. Entries that are not [lat, lon] pairs are skipped, and a
	// failed lookup for one coordinate never suppresses the others.
	SearchVenues(ctx context.Context, query string, radiusMeters int, locations [][]float64) []models.Venue
}

type venueUsecase struct {
	places     foursquare.API
	isochrones openroute.API

	// limit - максимум мест на одну координату
	limit int
}

func NewVenueUsecase(places foursquare.API, isochrones openroute.API, limit int) VenueUsecase {
	if limit <= 0 {
		limit = defaultVenueLimit
	}

	return &venueUsecase{
		places:     places,
		isochrones: isochrones,
		limit:      limit,
	}
}

func (uc *venueUsecase) SearchVenues(ctx context.Context, query string, radiusMeters int, locations [][]float64) []models.Venue {
	var collected []models.Venue

	for _, loc := range locations {
		if len(loc) != 2 {
			continue
		}

		lat, lon := loc[0], loc[1]

		// The polygon is fetched for future meeting-point refinement and
		// is not merged into the returned list.
		if polygon, ok := uc.isochrones.Isochrone(ctx, lat, lon, radiusMeters); ok {
			metric.RecordProviderRequest("openroute", "ok")

			slog.Info(
				"isochrone computed",
				slog.Float64("lat", lat),
				slog.Float64("lon", lon),
				slog.Int("bytes", len(polygon)),
			)
		} else {
			metric.RecordProviderRequest("openroute", "skipped")
		}

		venues, err := uc.places.Search(ctx, query, lat, lon, radiusMeters, uc.limit)
		if err != nil {
			metric.RecordProviderRequest("foursquare", "error")

			slog.Error(
				"search places failed",
				slog.Float64("lat", lat),
				slog.Float64("lon", lon),
				slog.Any(constant.Error, err),
			)

			continue
		}

		metric.RecordProviderRequest("foursquare", "ok")

		collected = append(collected, venues...)
	}

	return dedupVenues(collected)
}

// dedupVenues drops duplicates by (name, address), keeping the
// first-encountered order.
func dedupVenues(venues []models.Venue) []models.Venue {
	seen := make(map[[2]string]struct{}, len(venues))
	unique := make([]models.Venue, 0, len(venues))

	for _, venue := range venues {
		if _, ok := seen[venue.Key()]; ok {
			continue
		}

		seen[venue.Key()] = struct{}{}
		unique = append(unique, venue)
	}

	return unique
}
