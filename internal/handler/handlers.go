// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/handler/http"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(appInfo service.AppInfoService, upstream *utils.HTTPClient, cfg config.ProxyServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" || upstream == nil || appInfo == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(appInfo, upstream, logger)}, nil
}
