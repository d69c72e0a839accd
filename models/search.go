// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortField is an attribute the upstream search can order by.
type SortField string

const (
	SortByBreed SortField = "breed"
	SortByAge   SortField = "age"
	SortByName  SortField = "name"
)

// SortDirection is the ordering direction of an attribute sort.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// DistanceMode is a client-side ordering by distance from a reference zip.
// The upstream API has no equivalent.
type DistanceMode string

const (
	NoDistance DistanceMode = ""
	Nearest    DistanceMode = "nearest"
	Furthest   DistanceMode = "furthest"
)

// SortOption is either an attribute sort (Field + Direction) or a distance
// mode. The zero value means "upstream default order".
type SortOption struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
	Distance  DistanceMode  `json:"distance,omitempty"`
}

// IsDistance reports whether the ordering is computed client-side.
func (s SortOption) IsDistance() bool {
	return s.Distance != NoDistance
}

// IsZero reports whether no ordering was requested.
func (s SortOption) IsZero() bool {
	return s.Field == "" && s.Direction == "" && s.Distance == NoDistance
}

// String renders the upstream "field:direction" form. Distance modes and the
// zero value render as an empty string since they are never sent upstream.
func (s SortOption) String() string {
	if s.IsDistance() || s.Field == "" {
		return ""
	}
	dir := s.Direction
	if dir == "" {
		dir = Asc
	}
	return string(s.Field) + ":" + string(dir)
}

// SearchFilter is the closed set of criteria the search pipeline accepts.
// Nil/empty fields are not sent upstream.
type SearchFilter struct {
	// Breeds are OR-matched upstream.
	Breeds []string `json:"breeds,omitempty"`

	// ZipCodes are OR-matched upstream.
	ZipCodes []string `json:"zip_codes,omitempty"`

	// AgeMin and AgeMax are inclusive bounds.
	AgeMin *int `json:"age_min,omitempty"`
	AgeMax *int `json:"age_max,omitempty"`

	// Name is a free-text token matched client-side against dog names on the
	// hydrated page. The upstream search has no name parameter.
	Name string `json:"name,omitempty"`

	Sort SortOption `json:"sort"`
}

// SearchResult is one window of the upstream search.
type SearchResult struct {
	// ResultIDs are the dog IDs of the window in upstream order.
	ResultIDs []string `json:"resultIds"`

	// Total is the number of matches across the whole result set.
	Total int `json:"total"`

	// Next and Prev are the upstream's ready-made cursors for adjacent
	// windows, when present.
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// Page is the materialised, hydrated view of one page of results.
type Page struct {
	// Number is 1-based.
	Number int `json:"number"`

	Size int `json:"size"`

	Dogs []Dog `json:"dogs"`

	// Total is the upstream total for attribute sorts, or the size of the
	// sorted candidate set for distance sorts.
	Total int `json:"total"`

	// HasNext reports whether a further page may exist.
	HasNext bool `json:"has_next"`
}

// CatalogProgress is reported by the incremental distance loader each time it
// completes a full re-sort of the candidates gathered so far.
type CatalogProgress struct {
	PageDogs  []Dog
	SortedIDs []string
	Total     int
	Complete  bool
}

// SearchWindow addresses a slice of the upstream result set.
type SearchWindow struct {
	From int `json:"from"`
	Size int `json:"size"`
}
