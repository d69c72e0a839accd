// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
)

const (
	geoBreakerName         = "geolocation"
	geoBreakerMaxRequests  = 1
	geoBreakerOpenTimeout  = 30 * time.Second
	geoBreakerFailureTrips = 3
)

type httpGeoLocator struct {
	client *utils.HTTPClient
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	apiKey string
	logger *logger.Logger
}

// geoResponse is the subset of the timezone-by-location answer we read.
// Coordinates arrive either as numbers or as numeric strings.
type geoResponse struct {
	Latitude  flexFloat `json:"latitude"`
	Longitude flexFloat `json:"longitude"`
	Geo       struct {
		Latitude  flexFloat `json:"latitude"`
		Longitude flexFloat `json:"longitude"`
	} `json:"geo"`
}

func (g geoResponse) coordinates() models.Coordinates {
	c := models.Coordinates{Latitude: float64(g.Latitude), Longitude: float64(g.Longitude)}
	if c.Latitude == 0 && c.Longitude == 0 {
		c = models.Coordinates{Latitude: float64(g.Geo.Latitude), Longitude: float64(g.Geo.Longitude)}
	}
	return c
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", string(b), err)
	}
	*f = flexFloat(v)
	return nil
}

// NewHTTPGeoLocator returns a [GeoLocator] backed by the ipgeolocation-style
// GET /timezone?apiKey=..&location=<zip> endpoint. Calls are guarded by a
// circuit breaker that opens after consecutive failures; while it is open
// Locate fails fast with [ErrGeoUnavailable].
func NewHTTPGeoLocator(geoCfg config.ClientGeo, log *logger.Logger) (GeoLocator, error) {
	baseURL, err := normalizeBaseURL(geoCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid geo http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(geoCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	cb := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        geoBreakerName,
		MaxRequests: geoBreakerMaxRequests,
		Timeout:     geoBreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= geoBreakerFailureTrips
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("func", "httpGeoLocator.OnStateChange").
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return &httpGeoLocator{client: client, cb: cb, apiKey: geoCfg.APIKey, logger: log}, nil
}

// Locate implements [GeoLocator].
func (g *httpGeoLocator) Locate(ctx context.Context, zip string) (models.Coordinates, error) {
	resp, err := g.cb.Execute(func() (*resty.Response, error) {
		r, err := g.client.R().
			SetContext(ctx).
			SetQueryParam("apiKey", g.apiKey).
			SetQueryParam("location", zip).
			Get("/timezone")
		if err != nil {
			return nil, err
		}
		if err = mapHTTPError(r); err != nil {
			return nil, err
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.Coordinates{}, fmt.Errorf("%w: %w", ErrGeoUnavailable, err)
		}
		return models.Coordinates{}, fmt.Errorf("geolocation request: %w", err)
	}

	var body geoResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Coordinates{}, fmt.Errorf("decode geolocation response: %w", err)
	}

	coords := body.coordinates()
	if coords.Latitude == 0 || coords.Longitude == 0 {
		return models.Coordinates{}, fmt.Errorf("%w: %s", ErrNoCoordinates, zip)
	}

	return coords, nil
}

// nopGeoLocator is used when no geolocation service is configured.
type nopGeoLocator struct{}

// NewNopGeoLocator returns a [GeoLocator] that always fails with
// [ErrGeoUnavailable].
func NewNopGeoLocator() GeoLocator {
	return nopGeoLocator{}
}

func (nopGeoLocator) Locate(context.Context, string) (models.Coordinates, error) {
	return models.Coordinates{}, ErrGeoUnavailable
}
