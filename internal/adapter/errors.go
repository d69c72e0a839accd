// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("upstream internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrGeoUnavailable is returned by the geolocator while its circuit
	// breaker is open or when it is not configured.
	ErrGeoUnavailable = errors.New("geolocation unavailable")
	// ErrNoCoordinates is returned when the geolocation service answers
	// without usable coordinates.
	ErrNoCoordinates = errors.New("no coordinates for zip code")
)
