package manager

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultHourlyWindow = 12

func New(logger *zap.Logger) *weather {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &weather{
		logger:       logger,
		hourlyWindow: DefaultHourlyWindow,
	}
}

type weather struct {
	device       DeviceLocator
	ip           IPLocator
	forecaster   Forecaster
	geocoding    Geocoding
	hourlyWindow int
	logger       *zap.Logger
}

// Fetch gets the forecast and the place name concurrently. Only the
// forecast is mandatory; a geocoding failure becomes UnknownLocation.
func (w *weather) Fetch(ctx context.Context, coordinates Coordinates) (Report, error) {
	if w.forecaster == nil {
		return Report{}, fmt.Errorf("%w: forecaster not set", ErrWeatherFetchFailed)
	}

	forecast, place, err := join(ctx,
		func() (Forecast, error) {
			return w.forecaster.Forecast(ctx, coordinates)
		},
		func() (string, error) {
			if w.geocoding == nil {
				return "", fmt.Errorf("%w: geocoding not set", ErrGeocodingFailed)
			}
			return w.geocoding.PlaceName(ctx, coordinates)
		},
		func(err error) string {
			w.logger.Warn("geocoding failed", zap.Error(fmt.Errorf("%w: %w", ErrGeocodingFailed, err)))
			return UnknownLocation
		},
	)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrWeatherFetchFailed, err)
	}

	return Report{
		Place:   place,
		Current: forecast.Current,
		Summary: Summarize(forecast.HourlyCodes, w.hourlyWindow),
	}, nil
}

// Load runs one full cycle and hands the outcome to renderer.
// It returns the terminal error, if any, after it has been rendered.
func (w *weather) Load(ctx context.Context, renderer Renderer) error {
	logger := w.logger.With(zap.String("load_id", uuid.NewString()))

	coordinates, err := w.Resolve(ctx)
	if err != nil {
		logger.Warn("location failed", zap.Error(err))
		renderer.ShowError(StateOf(err))
		return err
	}
	logger.Debug("location resolved",
		zap.Float64("latitude", coordinates.Latitude),
		zap.Float64("longitude", coordinates.Longitude),
	)

	report, err := w.Fetch(ctx, coordinates)
	if err != nil {
		logger.Warn("weather fetch failed", zap.Error(err))
		renderer.ShowError(StateFetchFailed)
		return err
	}

	renderer.Show(report)
	return nil
}

func (w *weather) SetDevice(device DeviceLocator) {
	w.device = device
}

func (w *weather) SetIPLocator(ip IPLocator) {
	w.ip = ip
}

func (w *weather) SetForecaster(forecaster Forecaster) {
	w.forecaster = forecaster
}

func (w *weather) SetGeocoding(geocoding Geocoding) {
	w.geocoding = geocoding
}

func (w *weather) SetHourlyWindow(hours int) {
	if hours > 0 {
		w.hourlyWindow = hours
	}
}
