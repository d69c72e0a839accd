// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/store"
	"github.com/MKhiriev/go-paw-finder/models"
)

type locationResolver struct {
	adapter adapter.DogsAdapter
	geo     adapter.GeoLocator
	cache   store.LocationCache

	logger *logger.Logger
}

// NewLocationResolver builds a resolver. cache and geo may be nil, which
// disables the local cache and the geolocation fallback respectively.
func NewLocationResolver(dogs adapter.DogsAdapter, geo adapter.GeoLocator, cache store.LocationCache, log *logger.Logger) LocationResolver {
	return &locationResolver{
		adapter: dogs,
		geo:     geo,
		cache:   cache,
		logger:  log,
	}
}

func (r *locationResolver) Resolve(ctx context.Context, zips []string) map[string]models.Location {
	unique := uniqueZips(zips)
	result := make(map[string]models.Location, len(unique))
	if len(unique) == 0 {
		return result
	}

	misses := unique
	if r.cache != nil {
		cached, err := r.cache.Get(ctx, unique)
		if err != nil {
			r.logger.Warn().Err(err).Str("func", "locationResolver.Resolve").Msg("location cache lookup failed")
		}
		misses = misses[:0:0]
		for _, zip := range unique {
			if loc, ok := cached[zip]; ok {
				result[zip] = loc
				continue
			}
			misses = append(misses, zip)
		}
	}

	if len(misses) == 0 {
		return result
	}

	wanted := make(map[string]struct{}, len(misses))
	for _, zip := range misses {
		wanted[zip] = struct{}{}
	}

	locations, err := r.adapter.Locations(ctx, misses)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "locationResolver.Resolve").
			Int("zips", len(misses)).Msg("locations request failed, treating zips as unresolved")
		return result
	}

	fresh := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if _, ok := wanted[loc.ZipCode]; !ok {
			continue
		}
		result[loc.ZipCode] = loc
		fresh = append(fresh, loc)
	}

	if r.cache != nil && len(fresh) > 0 {
		if err := r.cache.Put(ctx, fresh); err != nil {
			r.logger.Warn().Err(err).Str("func", "locationResolver.Resolve").Msg("failed to cache locations")
		}
	}

	return result
}

func (r *locationResolver) ResolveReference(ctx context.Context, zip string) (models.Location, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return models.Location{}, ErrZipCodeRequired
	}

	if loc, ok := r.Resolve(ctx, []string{zip})[zip]; ok && hasCoordinates(loc) {
		return loc, nil
	}

	if r.geo == nil {
		return models.Location{}, fmt.Errorf("%w: zip %s", ErrLocationResolution, zip)
	}

	r.logger.Debug().Str("func", "locationResolver.ResolveReference").Str("zip", zip).
		Msg("zip not known to the locations endpoint, falling back to geolocation")

	coords, err := r.geo.Locate(ctx, zip)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: zip %s: %w", ErrLocationResolution, zip, err)
	}

	return models.Location{
		ZipCode:   zip,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}, nil
}

func hasCoordinates(loc models.Location) bool {
	return loc.Latitude != 0 && loc.Longitude != 0
}

// uniqueZips trims zips and drops blanks and duplicates, keeping first-seen
// order.
func uniqueZips(zips []string) []string {
	seen := make(map[string]struct{}, len(zips))
	out := make([]string, 0, len(zips))
	for _, z := range zips {
		z = strings.TrimSpace(z)
		if z == "" {
			continue
		}
		if _, ok := seen[z]; ok {
			continue
		}
		seen[z] = struct{}{}
		out = append(out, z)
	}
	return out
}
