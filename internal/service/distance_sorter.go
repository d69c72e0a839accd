// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/geo"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/validators"
	"github.com/MKhiriev/go-paw-finder/models"
)

const (
	// catalogResortEvery is how many catalog batches are gathered between
	// full re-sorts in SortCatalog.
	catalogResortEvery = 5

	maxWorkingSetCeiling = validators.MaxWindow
)

type distanceSorter struct {
	executor      SearchExecutor
	hydrator      DogHydrator
	resolver      LocationResolver
	maxWorkingSet int

	logger *logger.Logger
}

func NewDistanceSorter(executor SearchExecutor, hydrator DogHydrator, resolver LocationResolver,
	maxWorkingSet int, log *logger.Logger) DistanceSorter {
	return &distanceSorter{
		executor:      executor,
		hydrator:      hydrator,
		resolver:      resolver,
		maxWorkingSet: maxWorkingSet,
		logger:        log,
	}
}

func (s *distanceSorter) SortByDistance(ctx context.Context, ids []string, referenceZip string, mode models.DistanceMode) ([]string, error) {
	referenceZip = strings.TrimSpace(referenceZip)
	if referenceZip == "" {
		return nil, ErrZipCodeRequired
	}
	if mode != models.Nearest && mode != models.Furthest {
		return nil, fmt.Errorf("%w: distance mode %q", ErrInvalidFilter, mode)
	}
	if len(ids) == 0 {
		return []string{}, nil
	}

	reference, err := s.resolver.ResolveReference(ctx, referenceZip)
	if err != nil {
		return nil, err
	}

	candidates := ids
	var rest []string
	if s.maxWorkingSet > 0 && len(ids) > s.maxWorkingSet {
		candidates, rest = ids[:s.maxWorkingSet], ids[s.maxWorkingSet:]
	}

	dogs := s.hydrator.Hydrate(ctx, candidates)
	records := make(map[string]models.Dog, len(dogs))
	for _, d := range dogs {
		records[d.ID] = d
	}
	locations := s.resolver.Resolve(ctx, models.ZipCodes(dogs))

	ranked := rank(candidates, records, locations, reference, mode)

	s.logger.Debug().Str("func", "distanceSorter.SortByDistance").
		Int("candidates", len(candidates)).Int("hydrated", len(dogs)).Int("unranked_tail", len(rest)).
		Msg("sorted by distance")

	return append(ranked, rest...), nil
}

// rank orders ids by distance from reference. Ids whose record or zip is
// unknown rank equal to each other after every located id.
func rank(ids []string, records map[string]models.Dog, located map[string]models.Location,
	reference models.Location, mode models.DistanceMode) []string {
	distances := make(map[string]float64, len(ids))
	for _, id := range ids {
		d, ok := records[id]
		if !ok {
			continue
		}
		loc, ok := located[d.ZipCode]
		if !ok {
			continue
		}
		km, err := geo.CalculateDistance(reference.Coordinates(), loc.Coordinates())
		if err != nil {
			continue
		}
		distances[id] = km
	}

	ranked := rankByDistance(ids, distances)
	if mode == models.Furthest {
		slices.Reverse(ranked)
	}
	return ranked
}

// rankByDistance stable-sorts ids by ascending distance. Ids without a
// distance rank equal to each other after every located id.
func rankByDistance(ids []string, distances map[string]float64) []string {
	ranked := slices.Clone(ids)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return cmp.Compare(distanceOrInf(distances, a), distanceOrInf(distances, b))
	})
	return ranked
}

func distanceOrInf(distances map[string]float64, id string) float64 {
	if d, ok := distances[id]; ok {
		return d
	}
	return math.Inf(1)
}

func (s *distanceSorter) SortCatalog(ctx context.Context, filter models.SearchFilter, referenceZip string, pageSize int,
	onProgress func(models.CatalogProgress)) (models.CatalogProgress, error) {
	if strings.TrimSpace(referenceZip) == "" {
		return models.CatalogProgress{}, ErrZipCodeRequired
	}
	if pageSize <= 0 {
		return models.CatalogProgress{}, ErrInvalidPageSize
	}

	mode := filter.Sort.Distance
	if mode == models.NoDistance {
		mode = models.Nearest
	}
	filter.Sort = models.SortOption{Distance: mode}

	limit := s.maxWorkingSet
	if limit <= 0 || limit > maxWorkingSetCeiling {
		limit = maxWorkingSetCeiling
	}

	reference, err := s.resolver.ResolveReference(ctx, referenceZip)
	if err != nil {
		return models.CatalogProgress{}, err
	}

	var (
		all      []string
		records  = make(map[string]models.Dog)
		located  = make(map[string]models.Location)
		last     models.CatalogProgress
		reported = -1
	)

	report := func(ids []string, total int, complete bool) {
		s.gather(ctx, ids, records, located)
		sorted := rank(ids, records, located, reference, mode)

		first := sorted[:min(pageSize, len(sorted))]
		pageDogs := make([]models.Dog, 0, len(first))
		for _, id := range first {
			if d, ok := records[id]; ok {
				pageDogs = append(pageDogs, d)
			}
		}

		last = models.CatalogProgress{
			PageDogs:  pageDogs,
			SortedIDs: sorted,
			Total:     total,
			Complete:  complete,
		}
		reported = len(all)
		if onProgress != nil {
			onProgress(last)
		}
	}

	hasMore := true
	for batch := 0; hasMore; batch++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		from := batch * adapter.MaxBatchSize
		size := min(adapter.MaxBatchSize, limit-from)
		if size <= 0 {
			break
		}

		result, err := s.executor.Search(ctx, filter, from, size)
		if err != nil {
			return last, fmt.Errorf("catalog batch %d: %w", batch+1, err)
		}
		if len(result.ResultIDs) == 0 {
			break
		}

		all = append(all, result.ResultIDs...)
		hasMore = len(result.ResultIDs) == size && len(all) < result.Total && len(all) < limit

		switch {
		case !hasMore || (batch+1)%catalogResortEvery == 0:
			report(all, len(all), !hasMore)
		case batch == 0:
			report(result.ResultIDs, result.Total, false)
		}
	}

	switch {
	case reported != len(all):
		report(all, len(all), true)
	case !last.Complete:
		last.Complete = true
		if onProgress != nil {
			onProgress(last)
		}
	}

	return last, nil
}

// gather hydrates the ids without a record yet and resolves the zips of the
// new records that are not located yet.
func (s *distanceSorter) gather(ctx context.Context, ids []string, records map[string]models.Dog,
	located map[string]models.Location) {
	var missing []string
	for _, id := range ids {
		if _, ok := records[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return
	}

	var zips []string
	pending := make(map[string]struct{})
	for _, d := range s.hydrator.Hydrate(ctx, missing) {
		records[d.ID] = d
		if _, ok := located[d.ZipCode]; ok {
			continue
		}
		if _, ok := pending[d.ZipCode]; !ok {
			pending[d.ZipCode] = struct{}{}
			zips = append(zips, d.ZipCode)
		}
	}
	if len(zips) == 0 {
		return
	}
	for zip, loc := range s.resolver.Resolve(ctx, zips) {
		located[zip] = loc
	}
}
