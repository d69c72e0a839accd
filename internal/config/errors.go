// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing upstream address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSearchConfigs indicates inconsistent paging settings, such as
	// a fetch window smaller than a page.
	ErrInvalidSearchConfigs = errors.New("invalid search configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a missing proxy listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGeoConfigs indicates a geolocation address without an API key.
	ErrInvalidGeoConfigs = errors.New("invalid geo configuration")
)
