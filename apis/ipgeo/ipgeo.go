package ipgeo

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"widget/apis"
	"widget/manager"
)

var ErrNoCoordinates = errors.New("no coordinates in response")

func New(baseURL string) *ipapi {
	return &ipapi{
		client: resty.New().SetBaseURL(baseURL),
	}
}

type ipapi struct {
	client *resty.Client
}

func (i ipapi) Locate(ctx context.Context) (manager.Coordinates, error) {
	var r struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		// ipapi.co answers 200 with error=true when it refuses a lookup.
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}

	if err := apis.Get(ctx, i.client, "/json/", nil, &r); err != nil {
		return manager.Coordinates{}, fmt.Errorf("ip lookup: %w", err)
	}

	if r.Error {
		return manager.Coordinates{}, fmt.Errorf("ip lookup: %s", r.Reason)
	}

	if r.Latitude == nil || r.Longitude == nil {
		return manager.Coordinates{}, fmt.Errorf("ip lookup: %w", ErrNoCoordinates)
	}

	return manager.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}, nil
}
