// Package config resolves runtime settings for nexttrain.
//
// Values come from built-in defaults, then an optional YAML file, then
// command line flags or their environment variables. The merged result is
// validated using struct tags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/travigo/nexttrain/pkg/mbta"
	"github.com/travigo/nexttrain/pkg/transit"
	"gopkg.in/yaml.v3"
)

const DefaultTimezone = "America/New_York"

type Config struct {
	API      APIConfig `yaml:"api"`
	Timezone string    `yaml:"timezone" validate:"required"`
}

type APIConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"required,url"`
	Key        string `yaml:"key"`
	RouteTypes []int  `yaml:"routeTypes" validate:"min=1,dive,gte=0,lte=4"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
}

// Overrides carries the values supplied on the command line. Empty fields
// leave the lower layers untouched.
type Overrides struct {
	BaseURL  string
	APIKey   string
	Timezone string
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:    mbta.DefaultBaseURL,
			RouteTypes: []int{transit.RouteTypeHeavyRail, transit.RouteTypeLightRail},
			TimeoutMS:  30000,
		},
		Timezone: DefaultTimezone,
	}
}

// Load builds the configuration. path may be empty, in which case no file
// is read.
func Load(path string, overrides Overrides) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if overrides.BaseURL != "" {
		cfg.API.BaseURL = overrides.BaseURL
	}
	if overrides.APIKey != "" {
		cfg.API.Key = overrides.APIKey
	}
	if overrides.Timezone != "" {
		cfg.Timezone = overrides.Timezone
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	return nil
}

func (c Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func (c Config) ClientConfig() mbta.Config {
	return mbta.Config{
		BaseURL:    c.API.BaseURL,
		APIKey:     c.API.Key,
		RouteTypes: c.API.RouteTypes,
		Timeout:    time.Duration(c.API.TimeoutMS) * time.Millisecond,
	}
}
