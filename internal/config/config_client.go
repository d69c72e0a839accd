// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] and [GetProxyConfig] to fields left
// unset by every source.
const (
	DefaultAdapterAddress     = "https://frontend-take-home-service.fetch.com"
	DefaultRequestTimeout     = 15 * time.Second
	DefaultDSN                = "paw-finder.db"
	DefaultPageSize           = 6
	DefaultFetchSize          = 100
	DefaultMaxWorkingSet      = 10000
	DefaultHydrateConcurrency = 8
	DefaultCachePruneInterval = time.Hour
	DefaultCacheTTL           = 30 * 24 * time.Hour
	DefaultProxyAddress       = "localhost:8080"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	LogLevel string
	LogFile  string
}

// ClientAdapter holds network settings used for the upstream dog API.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientGeo holds the geolocation fallback settings.
type ClientGeo struct {
	HTTPAddress    string
	APIKey         string
	RequestTimeout time.Duration
}

// Enabled reports whether the geolocation fallback is configured.
func (g ClientGeo) Enabled() bool {
	return g.HTTPAddress != ""
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DSN string
}

// ClientSearch tunes paging and hydration on the client.
type ClientSearch struct {
	PageSize           int
	FetchSize          int
	MaxWorkingSet      int
	HydrateConcurrency int
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	CachePruneInterval time.Duration
	CacheTTL           time.Duration
}

// ClientConfig is the terminal client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Geo     ClientGeo
	Storage ClientStorage
	Search  ClientSearch
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Geo: ClientGeo{
			HTTPAddress:    cfg.Geo.HTTPAddress,
			APIKey:         cfg.Geo.APIKey,
			RequestTimeout: cfg.Geo.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Search: ClientSearch{
			PageSize:           cfg.Search.PageSize,
			FetchSize:          cfg.Search.FetchSize,
			MaxWorkingSet:      cfg.Search.MaxWorkingSet,
			HydrateConcurrency: cfg.Search.HydrateConcurrency,
		},
		Workers: ClientWorkers{
			CachePruneInterval: cfg.Workers.CachePruneInterval,
			CacheTTL:           cfg.Workers.CacheTTL,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	setDefault(&cfg.Adapter.HTTPAddress, DefaultAdapterAddress)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Geo.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Storage.DSN, DefaultDSN)
	setDefault(&cfg.Search.PageSize, DefaultPageSize)
	setDefault(&cfg.Search.FetchSize, DefaultFetchSize)
	setDefault(&cfg.Search.MaxWorkingSet, DefaultMaxWorkingSet)
	setDefault(&cfg.Search.HydrateConcurrency, DefaultHydrateConcurrency)
	setDefault(&cfg.Workers.CachePruneInterval, DefaultCachePruneInterval)
	setDefault(&cfg.Workers.CacheTTL, DefaultCacheTTL)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
