package openroute

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Meerasha8/GeoMeet-Backend/internal/application/config"
	"github.com/Meerasha8/GeoMeet-Backend/internal/application/constant"
)

// API интерфейс расчёта изохрон через OpenRouteService
type API interface {
	// Isochrone returns the reachability polygon for the point, or
	// (nil, false) when it could not be computed. It never fails hard:
	// a missing key, a transport error or a non-success status all
	// degrade to "not computed".
	Isochrone(ctx context.Context, lat, lon float64, rangeMeters int) (json.RawMessage, bool)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.ORSConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type isochroneRequest struct {
	// ORS expects [lon, lat]
	Locations [][2]float64 `json:"locations"`
	Range     []int        `json:"range"`
}

func (c *Client) Isochrone(ctx context.Context, lat, lon float64, rangeMeters int) (json.RawMessage, bool) {
	// Placeholder keys from sample configs count as no key.
	if c.apiKey == "" || strings.HasPrefix(c.apiKey, "YOUR_") {
		return nil, false
	}

	body, err := json.Marshal(isochroneRequest{
		Locations: [][2]float64{{lon, lat}},
		Range:     []int{rangeMeters},
	})
	if err != nil {
		return nil, false
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v2/isochrones/driving-car",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, false
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("isochrone request failed", slog.Any(constant.Error, err))
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		slog.Warn(
			"isochrone request rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(respBody)),
		)
		return nil, false
	}

	polygon, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("read isochrone response", slog.Any(constant.Error, err))
		return nil, false
	}

	return polygon, true
}
