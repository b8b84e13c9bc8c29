package manager

import (
	"context"

	"widget/wmo"
)

// DeviceLocator is a single-shot device position query.
type DeviceLocator interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
}

// IPLocator estimates coordinates from the caller's network address.
type IPLocator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

type Forecaster interface {
	Forecast(ctx context.Context, coordinates Coordinates) (Forecast, error)
}

type Geocoding interface {
	PlaceName(ctx context.Context, coordinates Coordinates) (string, error)
}

// Renderer receives the outcome of a load.
type Renderer interface {
	Show(report Report)
	ShowError(state ErrorState)
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type CurrentConditions struct {
	TemperatureF float64
	HumidityPct  int
	Code         wmo.Code
	WindSpeedMph float64
}

type Forecast struct {
	Current     CurrentConditions
	HourlyCodes []wmo.Code
}

// Report is the combined result of a successful fetch.
type Report struct {
	Place   string
	Current CurrentConditions
	Summary string
}

type ErrorState int

const (
	StateUnsupported ErrorState = iota + 1
	StateLocationUnavailable
	StateFetchFailed
)

func (s ErrorState) String() string {
	switch s {
	case StateUnsupported:
		return "unsupported"
	case StateLocationUnavailable:
		return "location_unavailable"
	case StateFetchFailed:
		return "fetch_failed"
	default:
		return "unknown"
	}
}
