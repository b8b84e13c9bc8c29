package geocoding

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"widget/apis"
	"widget/manager"
)

func New(baseURL, userAgent string) *geocoding {
	return &geocoding{
		client: resty.New().
			SetBaseURL(baseURL).
			SetHeader("User-Agent", userAgent),
	}
}

type geocoding struct {
	client *resty.Client
}

// PlaceName reverse-geocodes coordinates. The first of city, town, village
// and county that is present wins; with none present it returns UnknownLocation.
func (g geocoding) PlaceName(ctx context.Context, coordinates manager.Coordinates) (string, error) {
	params := map[string]string{
		"lat":    apis.FormatCoordinate(coordinates.Latitude),
		"lon":    apis.FormatCoordinate(coordinates.Longitude),
		"format": "json",
	}

	var r response
	if err := apis.Get(ctx, g.client, "/reverse", params, &r); err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}

	if r.Address == nil {
		return "", fmt.Errorf("reverse geocode: no address in response")
	}

	for _, name := range []string{r.Address.City, r.Address.Town, r.Address.Village, r.Address.County} {
		if name != "" {
			return name, nil
		}
	}

	return manager.UnknownLocation, nil
}

type response struct {
	Address *struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		County  string `json:"county"`
	} `json:"address"`
}
