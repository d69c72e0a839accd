// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ProxyServer holds the proxy listen settings.
type ProxyServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ProxyConfig is the HTTP proxy configuration assembled from
// [StructuredConfig].
type ProxyConfig struct {
	Version  string
	LogLevel string
	Server   ProxyServer
	Upstream ClientAdapter
}

// GetProxyConfig builds and validates the proxy config view.
func GetProxyConfig() (*ProxyConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	proxyCfg := newProxyConfig(cfg)
	return proxyCfg, proxyCfg.validate()
}

func newProxyConfig(cfg *StructuredConfig) *ProxyConfig {
	proxyCfg := &ProxyConfig{
		Version:  cfg.App.Version,
		LogLevel: cfg.App.LogLevel,
		Server: ProxyServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Upstream: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	setDefault(&proxyCfg.Server.HTTPAddress, DefaultProxyAddress)
	setDefault(&proxyCfg.Server.RequestTimeout, DefaultRequestTimeout)
	setDefault(&proxyCfg.Upstream.HTTPAddress, DefaultAdapterAddress)
	setDefault(&proxyCfg.Upstream.RequestTimeout, DefaultRequestTimeout)

	return proxyCfg
}
