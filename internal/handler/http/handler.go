// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
)

type Handler struct {
	appInfo  service.AppInfoService
	upstream *utils.HTTPClient

	logger *logger.Logger
}

// NewHandler returns a handler forwarding to upstream. upstream must have
// its base URL set and its cookie jar disabled, since cookies belong to the
// proxied callers.
func NewHandler(appInfo service.AppInfoService, upstream *utils.HTTPClient, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		appInfo:  appInfo,
		upstream: upstream,
		logger:   logger,
	}
}
