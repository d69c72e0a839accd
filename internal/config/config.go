// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the version string and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database settings used for the profile and
	// the location cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the proxy listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter points at the upstream dog API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Geo points at the geolocation-by-zip fallback service.
	Geo Geo `envPrefix:"GEO_"`

	// Search tunes paging and hydration.
	Search Search `envPrefix:"SEARCH_"`

	// Workers holds background job intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by the proxy at /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database. The DSN decides the
// driver: a "postgres://" or "postgresql://" prefix selects pgx, anything
// else is treated as a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the proxy.
type Server struct {
	// HTTPAddress is the "host:port" the proxy listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single proxied request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the upstream dog API address and timeout.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Geo holds the geolocation service settings. An empty address disables
// the fallback lookup.
type Geo struct {
	// Env: GEO_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: GEO_API_KEY
	APIKey string `env:"API_KEY"`

	// Env: GEO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Search tunes the search pipeline.
type Search struct {
	// PageSize is the number of dogs shown per page.
	// Env: SEARCH_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// FetchSize is the window requested from the upstream per search call
	// for attribute sorts. Must be >= PageSize.
	// Env: SEARCH_FETCH_SIZE
	FetchSize int `env:"FETCH_SIZE"`

	// MaxWorkingSet bounds how many candidates a distance sort considers.
	// Env: SEARCH_MAX_WORKING_SET
	MaxWorkingSet int `env:"MAX_WORKING_SET"`

	// HydrateConcurrency caps concurrent dog-detail batch requests.
	// Env: SEARCH_HYDRATE_CONCURRENCY
	HydrateConcurrency int `env:"HYDRATE_CONCURRENCY"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// CachePruneInterval is how often stale location cache rows are removed.
	// Env: WORKERS_CACHE_PRUNE_INTERVAL
	CachePruneInterval time.Duration `env:"CACHE_PRUNE_INTERVAL"`

	// CacheTTL is the age after which a cached location is pruned.
	// Env: WORKERS_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
