package manager

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Resolve prefers the device position and falls back to IP geolocation.
// A nil device locator means the capability is absent; no fallback is tried.
func (w *weather) Resolve(ctx context.Context) (Coordinates, error) {
	if w.device == nil {
		return Coordinates{}, ErrGeolocationUnsupported
	}

	coordinates, err := w.device.CurrentPosition(ctx)
	if err == nil {
		return coordinates, nil
	}
	w.logger.Warn("geolocation error", zap.Error(fmt.Errorf("%w: %w", ErrGeolocationUnavailable, err)))

	if w.ip == nil {
		return Coordinates{}, fmt.Errorf("%w: no ip locator", ErrIPGeolocationFailed)
	}

	coordinates, err = w.ip.Locate(ctx)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %w", ErrIPGeolocationFailed, err)
	}

	return coordinates, nil
}
