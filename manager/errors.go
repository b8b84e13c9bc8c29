package manager

import "errors"

var (
	ErrGeolocationUnsupported = errors.New("geolocation not supported")
	ErrGeolocationUnavailable = errors.New("device geolocation unavailable")
	ErrIPGeolocationFailed    = errors.New("ip geolocation failed")
	ErrWeatherFetchFailed     = errors.New("weather fetch failed")
	// ErrGeocodingFailed never reaches a caller; it is logged and replaced by UnknownLocation.
	ErrGeocodingFailed = errors.New("geocoding failed")
)

// UnknownLocation is shown when reverse geocoding yields nothing.
const UnknownLocation = "Unknown Location"

// StateOf maps a terminal load error to the error state it renders.
func StateOf(err error) ErrorState {
	switch {
	case errors.Is(err, ErrGeolocationUnsupported):
		return StateUnsupported
	case errors.Is(err, ErrIPGeolocationFailed):
		return StateLocationUnavailable
	default:
		return StateFetchFailed
	}
}
