package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Debug      bool   `env:"DEBUG" envDefault:"false"`
	Port       string `env:"PORT" envDefault:"5000"`
	MetricPort string `env:"METRIC_PORT" envDefault:"9090"`

	// VenueLimit - максимум мест на одну координату при поиске
	VenueLimit int `env:"VENUE_LIMIT" envDefault:"5"`

	Foursquare FoursquareConfig
	ORS        ORSConfig
}

type FoursquareConfig struct {
	APIKey     string        `env:"FOURSQUARE_API_KEY"`
	APIVersion string        `env:"FOURSQUARE_API_VERSION" envDefault:"2025-06-17"`
	BaseURL    string        `env:"FOURSQUARE_BASE_URL" envDefault:"https://places-api.foursquare.com/places"`
	Timeout    time.Duration `env:"FOURSQUARE_TIMEOUT" envDefault:"10s"`
}

type ORSConfig struct {
	// APIKey - пустое значение отключает расчёт изохрон
	APIKey  string        `env:"ORS_API_KEY"`
	BaseURL string        `env:"ORS_BASE_URL" envDefault:"https://api.openrouteservice.org"`
	Timeout time.Duration `env:"ORS_TIMEOUT" envDefault:"10s"`
}

func New() (*Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return &c, nil
}
