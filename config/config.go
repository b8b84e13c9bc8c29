package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds widget configuration decoded from the embedded YAML and env.
type Config struct {
	LogLevel string `yaml:"log_level"`

	Forecast struct {
		URL          string `yaml:"url"`
		HourlyWindow int    `yaml:"hourly_window"`
	} `yaml:"forecast"`

	Geocoding struct {
		URL       string `yaml:"url"`
		UserAgent string `yaml:"user_agent"`
	} `yaml:"geocoding"`

	IPGeo struct {
		URL string `yaml:"url"`
	} `yaml:"ipgeo"`

	Device struct {
		Latitude  *float64 `yaml:"latitude"`
		Longitude *float64 `yaml:"longitude"`
	} `yaml:"device"`
}

// Parse decodes raw YAML, applies env overrides and validates the result.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key string
		dst *string
	}{
		{"WIDGET_LOG_LEVEL", &c.LogLevel},
		{"WIDGET_FORECAST_URL", &c.Forecast.URL},
		{"WIDGET_GEOCODING_URL", &c.Geocoding.URL},
		{"WIDGET_USER_AGENT", &c.Geocoding.UserAgent},
		{"WIDGET_IPGEO_URL", &c.IPGeo.URL},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.dst = v
		}
	}
}

func (c *Config) Validate() error {
	var errs []error

	if c.Forecast.URL == "" {
		errs = append(errs, errors.New("forecast.url is required"))
	}
	if c.Geocoding.URL == "" {
		errs = append(errs, errors.New("geocoding.url is required"))
	}
	if c.Geocoding.UserAgent == "" {
		errs = append(errs, errors.New("geocoding.user_agent is required"))
	}
	if c.IPGeo.URL == "" {
		errs = append(errs, errors.New("ipgeo.url is required"))
	}
	if c.Forecast.HourlyWindow <= 0 {
		errs = append(errs, fmt.Errorf("forecast.hourly_window must be positive, got %d", c.Forecast.HourlyWindow))
	}
	if (c.Device.Latitude == nil) != (c.Device.Longitude == nil) {
		errs = append(errs, errors.New("device.latitude and device.longitude must be set together"))
	}
	if lat := c.Device.Latitude; lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, fmt.Errorf("device.latitude %v out of range", *lat))
	}
	if lon := c.Device.Longitude; lon != nil && (*lon < -180 || *lon > 180) {
		errs = append(errs, fmt.Errorf("device.longitude %v out of range", *lon))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
