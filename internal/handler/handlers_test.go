// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/mock"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	upstream := utils.NewPassThroughClient("http://upstream.test", time.Second)

	h, err := NewHandlers(appInfo, upstream, config.ProxyServer{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	upstream := utils.NewPassThroughClient("http://upstream.test", time.Second)

	tests := []struct {
		name     string
		cfg      config.ProxyServer
		upstream *utils.HTTPClient
	}{
		{name: "no address", upstream: upstream},
		{name: "no upstream", cfg: config.ProxyServer{HTTPAddress: ":8080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(appInfo, tt.upstream, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, errNoHandlersAreCreated)
			assert.Nil(t, h)
		})
	}
}
