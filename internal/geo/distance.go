// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package geo provides great-circle distance helpers used to rank dogs by how
// far they are from the user.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/MKhiriev/go-paw-finder/models"
)

const (
	earthRadiusKm = 6371.0
	kmPerMile     = 0.621371
)

// Unit is a distance unit accepted by [FormatDistance].
type Unit string

const (
	Kilometers Unit = "km"
	Miles      Unit = "miles"
)

// ErrInvalidCoordinates is returned when a coordinate pair is missing a
// latitude or longitude. A zero value counts as missing.
var ErrInvalidCoordinates = errors.New("invalid input: both locations must have latitude and longitude")

// CalculateDistance returns the haversine distance between a and b in
// kilometers.
func CalculateDistance(a, b models.Coordinates) (float64, error) {
	if a.Latitude == 0 || a.Longitude == 0 || b.Latitude == 0 || b.Longitude == 0 {
		return 0, ErrInvalidCoordinates
	}

	lat1 := degreesToRadians(a.Latitude)
	lat2 := degreesToRadians(b.Latitude)
	deltaLat := degreesToRadians(b.Latitude - a.Latitude)
	deltaLon := degreesToRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

// KmToMiles converts kilometers to miles.
func KmToMiles(km float64) float64 {
	return km * kmPerMile
}

// FormatDistance renders a distance given in kilometers with one decimal in the
// requested unit, e.g. "12.3 km" or "7.6 miles".
func FormatDistance(km float64, unit Unit) string {
	if unit == Miles {
		return fmt.Sprintf("%.1f %s", KmToMiles(km), Miles)
	}
	return fmt.Sprintf("%.1f %s", km, Kilometers)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
