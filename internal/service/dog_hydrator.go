// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
	"golang.org/x/sync/errgroup"
)

type dogHydrator struct {
	adapter     adapter.DogsAdapter
	concurrency int

	logger *logger.Logger
}

// NewDogHydrator builds a hydrator issuing at most concurrency batch requests
// at once. A non-positive concurrency removes the cap.
func NewDogHydrator(dogs adapter.DogsAdapter, concurrency int, log *logger.Logger) DogHydrator {
	return &dogHydrator{
		adapter:     dogs,
		concurrency: concurrency,
		logger:      log,
	}
}

func (h *dogHydrator) Hydrate(ctx context.Context, ids []string) []models.Dog {
	if len(ids) == 0 {
		return []models.Dog{}
	}

	batches := slices.Collect(slices.Chunk(ids, adapter.MaxBatchSize))
	results := make([][]models.Dog, len(batches))

	var g errgroup.Group
	if h.concurrency > 0 {
		g.SetLimit(h.concurrency)
	}

	for i, batch := range batches {
		g.Go(func() error {
			dogs, err := h.adapter.Dogs(ctx, batch)
			if err != nil {
				h.logger.Warn().Err(err).Str("func", "dogHydrator.Hydrate").
					Int("batch", i).Int("ids", len(batch)).Msg("dog batch failed, skipping")
				return nil
			}
			results[i] = dogs
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}

	merged := make([]models.Dog, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// orderByIDs returns the dogs whose id is in ids, in ids order. Ids without a
// record are skipped.
func orderByIDs(dogs []models.Dog, ids []string) []models.Dog {
	byID := make(map[string]models.Dog, len(dogs))
	for _, d := range dogs {
		byID[d.ID] = d
	}

	ordered := make([]models.Dog, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			ordered = append(ordered, d)
		}
	}
	return ordered
}

// annotateLocations fills City and State from locs.
func annotateLocations(dogs []models.Dog, locs map[string]models.Location) {
	for i := range dogs {
		if loc, ok := locs[dogs[i].ZipCode]; ok {
			dogs[i].City = loc.City
			dogs[i].State = loc.State
		}
	}
}
