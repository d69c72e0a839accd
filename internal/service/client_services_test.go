// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/mock"
	"github.com/MKhiriev/go-paw-finder/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewClientServices_MissingDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	dogs := mock.NewMockDogsAdapter(ctrl)
	storages := &store.ClientStorages{}

	tests := []struct {
		name     string
		storages *store.ClientStorages
		dogs     adapter.DogsAdapter
		cfg      *config.ClientConfig
	}{
		{name: "no storages", dogs: dogs, cfg: &config.ClientConfig{}},
		{name: "no adapter", storages: storages, cfg: &config.ClientConfig{}},
		{name: "no config", storages: storages, dogs: dogs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClientServices(tt.storages, tt.dogs, nil, tt.cfg, logger.Nop())
			assert.ErrorIs(t, err, ErrMissingDependency)
		})
	}
}

func TestNewClientServices_WiresEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.ClientStorages{
		Profile:   mock.NewMockProfileRepository(ctrl),
		Locations: mock.NewMockLocationCache(ctrl),
	}
	cfg := &config.ClientConfig{Search: config.ClientSearch{PageSize: 6, FetchSize: 100}}

	svc, err := NewClientServices(storages, mock.NewMockDogsAdapter(ctrl), mock.NewMockGeoLocator(ctrl), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, svc.Session)
	assert.NotNil(t, svc.Favorites)
	assert.NotNil(t, svc.Resolver)
	assert.NotNil(t, svc.Hydrator)
	assert.NotNil(t, svc.Executor)
	assert.NotNil(t, svc.Sorter)
	assert.NotNil(t, svc.Paginator)
	assert.NotNil(t, svc.Browser)
	assert.NotNil(t, svc.Matcher)
	assert.NotNil(t, svc.PruneJob)
	assert.False(t, svc.Session.LoggedIn())
}
