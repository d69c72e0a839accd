// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Coordinates is a point on the globe in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is what the locations endpoint knows about a zip code.
// A zip code the service cannot resolve has no Location at all.
type Location struct {
	ZipCode   string  `json:"zip_code"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	County    string  `json:"county,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// CachedAt is set by the local location cache; zero for fresh upstream
	// entries.
	CachedAt time.Time `json:"-"`
}

// Coordinates returns the latitude/longitude pair of the location.
func (l Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}
