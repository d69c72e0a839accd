// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/validators"
	"github.com/MKhiriev/go-paw-finder/models"
)

// Upstream query parameter names of GET /dogs/search.
const (
	paramBreeds   = "breeds"
	paramZipCodes = "zipCodes"
	paramAgeMin   = "ageMin"
	paramAgeMax   = "ageMax"
	paramSort     = "sort"
	paramFrom     = "from"
	paramSize     = "size"
)

type searchExecutor struct {
	adapter   adapter.DogsAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewSearchExecutor(dogs adapter.DogsAdapter, validator validators.Validator, log *logger.Logger) SearchExecutor {
	return &searchExecutor{
		adapter:   dogs,
		validator: validator,
		logger:    log,
	}
}

func (e *searchExecutor) Search(ctx context.Context, filter models.SearchFilter, from, size int) (models.SearchResult, error) {
	if err := e.validator.Validate(ctx, filter); err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	if err := e.validator.Validate(ctx, models.SearchWindow{From: from, Size: size}); err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}

	result, err := e.adapter.Search(ctx, buildSearchQuery(filter, from, size))
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search dogs: %w", err)
	}

	e.logger.Debug().Str("func", "searchExecutor.Search").
		Int("from", from).Int("size", size).Int("ids", len(result.ResultIDs)).Int("total", result.Total).
		Msg("search window fetched")

	return result, nil
}

func (e *searchExecutor) Breeds(ctx context.Context) ([]string, error) {
	breeds, err := e.adapter.Breeds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list breeds: %w", err)
	}
	return breeds, nil
}

// buildSearchQuery maps a validated filter and window onto upstream query
// parameters. Empty fields are omitted; distance modes send no sort.
func buildSearchQuery(filter models.SearchFilter, from, size int) url.Values {
	q := url.Values{}

	for _, b := range filter.Breeds {
		q.Add(paramBreeds, strings.TrimSpace(b))
	}
	for _, z := range filter.ZipCodes {
		q.Add(paramZipCodes, strings.TrimSpace(z))
	}
	if filter.AgeMin != nil {
		q.Set(paramAgeMin, strconv.Itoa(*filter.AgeMin))
	}
	if filter.AgeMax != nil {
		q.Set(paramAgeMax, strconv.Itoa(*filter.AgeMax))
	}
	if sort := filter.Sort.String(); sort != "" {
		q.Set(paramSort, sort)
	}

	q.Set(paramFrom, strconv.Itoa(from))
	q.Set(paramSize, strconv.Itoa(size))

	return q
}
