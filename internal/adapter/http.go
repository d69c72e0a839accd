// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"github.com/MKhiriev/go-paw-finder/models"
)

// MaxBatchSize is the upstream limit on ids or zips per POST body.
const MaxBatchSize = 100

type httpDogsAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDogsAdapter constructs the resty implementation of [DogsAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDogsAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (DogsAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &httpDogsAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [DogsAdapter]. The upstream answers 200 with an empty body
// and a Set-Cookie header, which the resty cookie jar stores.
func (h *httpDogsAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

// Logout implements [DogsAdapter]. The local cookie jar is reset even when
// the upstream call fails, so a stale session is never replayed.
func (h *httpDogsAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/auth/logout")

	if jar, jarErr := cookiejar.New(nil); jarErr == nil {
		h.client.SetCookieJar(jar)
	} else {
		h.logger.Err(jarErr).Str("func", "httpDogsAdapter.Logout").Msg("error resetting cookie jar")
	}

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Breeds implements [DogsAdapter] via GET /dogs/breeds.
func (h *httpDogsAdapter) Breeds(ctx context.Context) ([]string, error) {
	var breeds []string

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&breeds).
		Get("/dogs/breeds")
	if err != nil {
		return nil, fmt.Errorf("breeds request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return breeds, nil
}

// Search implements [DogsAdapter] via GET /dogs/search. Multi-valued keys in
// query (breeds, zipCodes) are sent as repeated parameters.
func (h *httpDogsAdapter) Search(ctx context.Context, query url.Values) (models.SearchResult, error) {
	var result models.SearchResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&result).
		Get("/dogs/search")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	if result.ResultIDs == nil {
		result.ResultIDs = []string{}
	}

	h.logger.Debug().
		Str("func", "httpDogsAdapter.Search").
		Str("query", query.Encode()).
		Int("total", result.Total).
		Int("window", len(result.ResultIDs)).
		Msg("search window fetched")

	return result, nil
}

// Dogs implements [DogsAdapter] via POST /dogs.
func (h *httpDogsAdapter) Dogs(ctx context.Context, ids []string) ([]models.Dog, error) {
	if len(ids) > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d ids exceeds batch limit %d", ErrBadRequest, len(ids), MaxBatchSize)
	}

	var dogs []models.Dog

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(ids).
		SetResult(&dogs).
		Post("/dogs")
	if err != nil {
		return nil, fmt.Errorf("dogs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return dogs, nil
}

// Locations implements [DogsAdapter] via POST /locations. The upstream
// answers with one entry per requested zip and null for unknown ones; the
// nulls are dropped.
func (h *httpDogsAdapter) Locations(ctx context.Context, zips []string) ([]models.Location, error) {
	var raw []*models.Location

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(zips).
		SetResult(&raw).
		Post("/locations")
	if err != nil {
		return nil, fmt.Errorf("locations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	locations := make([]models.Location, 0, len(raw))
	for _, loc := range raw {
		if loc != nil && loc.ZipCode != "" {
			locations = append(locations, *loc)
		}
	}

	return locations, nil
}

// Match implements [DogsAdapter] via POST /dogs/match.
func (h *httpDogsAdapter) Match(ctx context.Context, ids []string) (string, error) {
	var match models.Match

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(ids).
		SetResult(&match).
		Post("/dogs/match")
	if err != nil {
		return "", fmt.Errorf("match request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return match.DogID, nil
}
