// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/client"
	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/internal/store"
	"github.com/MKhiriev/go-paw-finder/internal/tui"
	"github.com/MKhiriev/go-paw-finder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build.String())

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("paw-finder-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	dogs, err := adapter.NewHTTPDogsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create dogs adapter")
	}

	geoLocator := adapter.NewNopGeoLocator()
	if cfg.Geo.Enabled() {
		if geoLocator, err = adapter.NewHTTPGeoLocator(cfg.Geo, log); err != nil {
			log.Fatal().Err(err).Msg("create geolocator")
		}
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewClientServices(storages, dogs, geoLocator, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}
}
