package main

import (
	"context"
	_ "embed"
	"log"
	"os"

	"go.uber.org/zap"

	"widget/apis/geocoding"
	"widget/apis/ipgeo"
	"widget/apis/openmeteo"
	"widget/cli"
	"widget/config"
	"widget/device"
	"widget/manager"
	"widget/observability"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx := context.Background()

	cfg, err := config.Parse(configRaw)
	if err != nil {
		log.Fatalf("config: %s", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %s", err)
	}
	defer logger.Sync()

	weatherManager := manager.New(logger)
	weatherManager.SetIPLocator(ipgeo.New(cfg.IPGeo.URL))
	weatherManager.SetForecaster(openmeteo.New(cfg.Forecast.URL))
	weatherManager.SetGeocoding(geocoding.New(cfg.Geocoding.URL, cfg.Geocoding.UserAgent))
	weatherManager.SetHourlyWindow(cfg.Forecast.HourlyWindow)

	fallback := device.Fixed{}
	if cfg.Device.Latitude != nil && cfg.Device.Longitude != nil {
		fallback = device.NewFixed(*cfg.Device.Latitude, *cfg.Device.Longitude)
	}

	cmd, err := cli.New(weatherManager, fallback)
	if err != nil {
		log.Fatalf("new cli: %s", err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		logger.Error("exec", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
