package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/config"
	"github.com/Meerasha8/GeoMeet-Backend/internal/domain/models"
)

// API интерфейс поиска мест через Foursquare Places
type API interface {
	// Search returns up to limit places matching query near the point.
	Search(ctx context.Context, query string, lat, lon float64, radiusMeters, limit int) ([]models.Venue, error)
}

type Client struct {
	apiKey     string
	apiVersion string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.FoursquareConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		apiVersion: cfg.APIVersion,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Location struct {
			FormattedAddress string `json:"formatted_address"`
			Address          string `json:"address"`
		} `json:"location"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	} `json:"results"`
}

func (c *Client) Search(ctx context.Context, query string, lat, lon float64, radiusMeters, limit int) ([]models.Venue, error) {
	params := url.Values{}
	params.Set("query", query)
	// Foursquare expects lat,lon
	params.Set("ll", formatCoord(lat)+","+formatCoord(lon))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Places-Api-Version", c.apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("search places: status %d: %s", resp.StatusCode, body)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	venues := make([]models.Venue, 0, len(parsed.Results))

	for _, place := range parsed.Results {
		venue := models.Venue{
			Name:     place.Name,
			Address:  place.Location.FormattedAddress,
			Category: models.NoCategory,
		}

		if venue.Name == "" {
			venue.Name = models.UnknownName
		}

		if venue.Address == "" {
			venue.Address = place.Location.Address
		}
		if venue.Address == "" {
			venue.Address = models.NoAddress
		}

		if len(place.Categories) > 0 && place.Categories[0].Name != "" {
			venue.Category = place.Categories[0].Name
		}

		venues = append(venues, venue)
	}

	return venues, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
