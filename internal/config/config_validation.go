// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Geo.Enabled() && cfg.Geo.APIKey == "" {
		return ErrInvalidGeoConfigs
	}

	s := cfg.Search
	if s.PageSize <= 0 || s.FetchSize < s.PageSize || s.MaxWorkingSet < s.PageSize ||
		s.MaxWorkingSet > 10000 || s.HydrateConcurrency <= 0 {
		return ErrInvalidSearchConfigs
	}

	if cfg.Workers.CachePruneInterval <= 0 || cfg.Workers.CacheTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ProxyConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Upstream.HTTPAddress == "" || cfg.Upstream.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
