// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/handler"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/server"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
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

	log := logger.NewLogger("paw-finder-proxy")
	cfg, err := config.GetProxyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.LogLevel)

	log.Debug().Any("config", cfg).Msg("received configs")

	appInfo, err := service.NewAppInfoService(cfg.Version, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app info service")
	}

	upstream := utils.NewPassThroughClient(cfg.Upstream.HTTPAddress, cfg.Upstream.RequestTimeout)

	handlers, err := handler.NewHandlers(appInfo, upstream, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
