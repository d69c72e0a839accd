// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared by the adapter, service,
// store and UI layers of go-paw-finder.
package models

// Dog is an adoptable dog record as returned by the batch-detail endpoint.
type Dog struct {
	// ID is the stable upstream identifier; used as a map/set key.
	ID string `json:"id"`

	// Name is the dog's display name.
	Name string `json:"name"`

	// Age is the dog's age in whole years.
	Age int `json:"age"`

	// Breed is the breed name as listed by GET /dogs/breeds.
	Breed string `json:"breed"`

	// Img is the URL of the dog's photo.
	Img string `json:"img"`

	// ZipCode is the 5-digit US postal code of the shelter. It is the join
	// key to [Location].
	ZipCode string `json:"zip_code"`

	// City and State are derived from the zip code by the location
	// resolver. They are not part of the upstream record.
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// IDs returns the identifiers of dogs in slice order.
func IDs(dogs []Dog) []string {
	ids := make([]string, 0, len(dogs))
	for _, d := range dogs {
		ids = append(ids, d.ID)
	}
	return ids
}

// ZipCodes returns the distinct non-empty zip codes of dogs in first-seen
// order.
func ZipCodes(dogs []Dog) []string {
	seen := make(map[string]struct{}, len(dogs))
	zips := make([]string, 0, len(dogs))
	for _, d := range dogs {
		if d.ZipCode == "" {
			continue
		}
		if _, ok := seen[d.ZipCode]; ok {
			continue
		}
		seen[d.ZipCode] = struct{}{}
		zips = append(zips, d.ZipCode)
	}
	return zips
}
