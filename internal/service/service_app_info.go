// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports version as the application version. When
// version is empty the linker-injected build version is used instead.
func NewAppInfoService(version string, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" || version == models.BuildValueNotAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
