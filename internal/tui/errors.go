// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/internal/validators"
)

var ErrUserQuit = errors.New("user quit")

var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrSessionExpired, "Session expired, logging in again"},
	{service.ErrZipCodeRequired, "Set your zip code (z) to sort by distance"},
	{service.ErrNoFavorites, "Add some favourites first"},
	{service.ErrDogsNotFound, "Your favourites are no longer listed"},
	{service.ErrNoMatch, "No match this time, try again"},
	{service.ErrPageOutOfRange, "No more pages"},
	{service.ErrNoQuery, "Run a search first"},
	{validators.ErrEmptyName, "Name is required"},
	{validators.ErrInvalidEmail, "Email address is not valid"},
	{validators.ErrInvalidZipCode, "Zip code must have 5 digits"},
	{validators.ErrNegativeAge, "Ages cannot be negative"},
	{validators.ErrAgeRange, "Minimum age is above maximum age"},
	{adapter.ErrUnauthorized, "Not authorised by the dogs service"},
	{adapter.ErrTooManyRequests, "Too many requests, slow down"},
	{adapter.ErrGeoUnavailable, "Geolocation is unavailable right now"},
}

// humanizeError turns service and transport errors into a short status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the dogs service is unreachable"
	}

	return err.Error()
}
