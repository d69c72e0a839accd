// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the services the
// client talks to: the upstream dog API and the geolocation-by-zip service.
//
// [DogsAdapter] decouples the service layer from the REST protocol of the dog
// API; [NewHTTPDogsAdapter] is the resty implementation. [GeoLocator] resolves
// a zip to coordinates when the dog API does not know it;
// [NewHTTPGeoLocator] wraps its calls in a circuit breaker.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-paw-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DogsAdapter defines communication with the upstream dog API. The session is
// an HTTP-only cookie issued by Login; implementations keep it for all later
// calls.
type DogsAdapter interface {
	// Login POSTs name and email to /auth/login. On success the session
	// cookie is retained by the adapter.
	Login(ctx context.Context, req models.LoginRequest) error

	// Logout POSTs /auth/logout and forgets the session cookie.
	Logout(ctx context.Context) error

	// Breeds returns every breed name known upstream.
	Breeds(ctx context.Context) ([]string, error)

	// Search runs GET /dogs/search with the given query parameters and
	// returns one window of matching IDs.
	Search(ctx context.Context, query url.Values) (models.SearchResult, error)

	// Dogs POSTs up to 100 ids to /dogs and returns their records. Unknown
	// ids are absent from the result.
	Dogs(ctx context.Context, ids []string) ([]models.Dog, error)

	// Locations POSTs zip codes to /locations in a single request. Zips the upstream
	// does not know are absent from the result.
	Locations(ctx context.Context, zips []string) ([]models.Location, error)

	// Match POSTs candidate ids to /dogs/match and returns the chosen id.
	Match(ctx context.Context, ids []string) (string, error)
}

// GeoLocator resolves a zip code to coordinates using a service independent
// from the dog API.
type GeoLocator interface {
	Locate(ctx context.Context, zip string) (models.Coordinates, error)
}
