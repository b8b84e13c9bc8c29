package device

import (
	"context"
	"errors"

	"widget/manager"
)

var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrTimeout             = errors.New("timeout")
)

// Fixed reports a position the user supplied. A zero Fixed has no fix.
type Fixed struct {
	Position *manager.Coordinates
}

func NewFixed(latitude, longitude float64) Fixed {
	return Fixed{Position: &manager.Coordinates{Latitude: latitude, Longitude: longitude}}
}

func (f Fixed) CurrentPosition(ctx context.Context) (manager.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return manager.Coordinates{}, ErrTimeout
	}
	if f.Position == nil {
		return manager.Coordinates{}, ErrPositionUnavailable
	}
	return *f.Position, nil
}

// Denied behaves like a device where the user refused location access.
type Denied struct{}

func (Denied) CurrentPosition(context.Context) (manager.Coordinates, error) {
	return manager.Coordinates{}, ErrPermissionDenied
}
