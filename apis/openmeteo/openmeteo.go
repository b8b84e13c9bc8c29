package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-resty/resty/v2"

	"widget/apis"
	"widget/manager"
	"widget/wmo"
)

const apiName = "api.open-meteo.com"

var ErrMalformed = errors.New("malformed forecast")

func New(baseURL string) *openMeteo {
	return &openMeteo{
		client: resty.New().SetBaseURL(baseURL),
	}
}

type openMeteo struct {
	client *resty.Client
}

func (o openMeteo) Forecast(ctx context.Context, coordinates manager.Coordinates) (manager.Forecast, error) {
	params := map[string]string{
		"latitude":         apis.FormatCoordinate(coordinates.Latitude),
		"longitude":        apis.FormatCoordinate(coordinates.Longitude),
		"current":          "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m",
		"hourly":           "weather_code",
		"temperature_unit": "fahrenheit",
		"wind_speed_unit":  "mph",
		"timezone":         "auto",
	}

	var r response
	if err := apis.Get(ctx, o.client, "/v1/forecast", params, &r); err != nil {
		return manager.Forecast{}, fmt.Errorf("%s: %w", apiName, err)
	}

	return r.forecast()
}

type response struct {
	Current *struct {
		Temperature *float64  `json:"temperature_2m"`
		Humidity    *float64  `json:"relative_humidity_2m"`
		WeatherCode *wmo.Code `json:"weather_code"`
		WindSpeed   *float64  `json:"wind_speed_10m"`
	} `json:"current"`
	Hourly *struct {
		WeatherCode []wmo.Code `json:"weather_code"`
	} `json:"hourly"`
}

func (r response) forecast() (manager.Forecast, error) {
	c := r.Current
	switch {
	case c == nil:
		return manager.Forecast{}, fmt.Errorf("%w: missing current", ErrMalformed)
	case c.Temperature == nil || c.Humidity == nil || c.WeatherCode == nil || c.WindSpeed == nil:
		return manager.Forecast{}, fmt.Errorf("%w: incomplete current", ErrMalformed)
	case r.Hourly == nil || r.Hourly.WeatherCode == nil:
		return manager.Forecast{}, fmt.Errorf("%w: missing hourly weather_code", ErrMalformed)
	}

	return manager.Forecast{
		Current: manager.CurrentConditions{
			TemperatureF: *c.Temperature,
			HumidityPct:  int(math.Round(*c.Humidity)),
			Code:         *c.WeatherCode,
			WindSpeedMph: *c.WindSpeed,
		},
		HourlyCodes: r.Hourly.WeatherCode,
	}, nil
}
