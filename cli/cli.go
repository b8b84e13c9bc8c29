package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"widget/device"
	"widget/manager"
	"widget/render"
)

type Widget interface {
	SetDevice(device manager.DeviceLocator)
	Load(ctx context.Context, renderer manager.Renderer) error
}

// New builds the root command. fallback is the device locator used when no
// position flags are given; nil means the device has no geolocation.
func New(widget Widget, fallback manager.DeviceLocator) (*cobra.Command, error) {
	var (
		lat, lon      float64
		noGeolocation bool
		denyLocation  bool
		unit          string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "widget",
		Args:  cobra.NoArgs,
		Short: "Current weather and a short forecast for where you are",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lat") != cmd.Flags().Changed("lon") {
				return fmt.Errorf("--lat and --lon must be given together")
			}
			if unit != "f" && unit != "c" {
				return fmt.Errorf("unknown unit %q, want f or c", unit)
			}
			if format != "text" && format != "html" {
				return fmt.Errorf("unknown format %q, want text or html", format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case noGeolocation:
				widget.SetDevice(nil)
			case denyLocation:
				widget.SetDevice(device.Denied{})
			case cmd.Flags().Changed("lat"):
				widget.SetDevice(device.NewFixed(lat, lon))
			default:
				widget.SetDevice(fallback)
			}

			page := render.NewPage()
			renderer := render.New(page)

			// a failed load is already on the page
			_ = widget.Load(cmd.Context(), renderer)

			if renderer.Temperature() != nil {
				toggle := render.RegionFahrenheit
				if unit == "c" {
					toggle = render.RegionCelsius
				}
				page.Region(toggle).Click()
			}

			if format == "html" {
				return page.WriteHTML(cmd.OutOrStdout())
			}
			return page.WriteText(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&lat, "lat", 0, "device latitude")
	flags.Float64Var(&lon, "lon", 0, "device longitude")
	flags.BoolVar(&noGeolocation, "no-geolocation", false, "behave as a device without geolocation")
	flags.BoolVar(&denyLocation, "deny-location", false, "refuse device location and fall back to IP lookup")
	flags.StringVar(&unit, "unit", "f", "temperature unit to show: f or c")
	flags.StringVar(&format, "format", "text", "output format: text or html")
	cmd.MarkFlagsMutuallyExclusive("no-geolocation", "deny-location")

	return cmd, nil
}
