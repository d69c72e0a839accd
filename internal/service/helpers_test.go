// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-paw-finder/models"
)

// Fixture locations around Manhattan plus one in Los Angeles.
var (
	locChelsea = models.Location{ZipCode: "10001", City: "New York", State: "NY", Latitude: 40.7506, Longitude: -73.9972}
	locLES     = models.Location{ZipCode: "10002", City: "New York", State: "NY", Latitude: 40.7157, Longitude: -73.9863}
	locEastVil = models.Location{ZipCode: "10003", City: "New York", State: "NY", Latitude: 40.7318, Longitude: -73.9891}
	locLA      = models.Location{ZipCode: "90001", City: "Los Angeles", State: "CA", Latitude: 33.9731, Longitude: -118.2479}
)

func dog(id, zip string) models.Dog {
	return models.Dog{ID: id, Name: "dog-" + id, Breed: "Labrador", Age: 3, ZipCode: zip}
}

func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	return ids
}

// dogsFor returns a record for every id, all at zip.
func dogsFor(ids []string, zip string) []models.Dog {
	dogs := make([]models.Dog, len(ids))
	for i, id := range ids {
		dogs[i] = dog(id, zip)
	}
	return dogs
}

func intPtr(v int) *int { return &v }
