// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
)

func newTestLocationCache(t *testing.T, dialect Dialect) (*locationCache, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, dialect)
	return &locationCache{db: db, logger: logger.Nop(), now: func() time.Time { return fixedNow }}, mock
}

func TestLocationCacheGet_Success(t *testing.T) {
	cache, mock := newTestLocationCache(t, DialectSQLite)

	rows := sqlmock.NewRows(locationColumns).
		AddRow("10001", "New York", "NY", "New York", 40.75, -73.99, fixedNow)
	mock.ExpectQuery(regexp.QuoteMeta("FROM location_cache WHERE zip_code IN (?,?)")).
		WithArgs("10001", "90001").
		WillReturnRows(rows)

	got, err := cache.Get(context.Background(), []string{"10001", "90001"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if loc := got["10001"]; loc.City != "New York" || loc.Latitude != 40.75 || !loc.CachedAt.Equal(fixedNow) {
		t.Errorf("unexpected location %+v", loc)
	}
}

func TestLocationCacheGet_EmptyInputSkipsQuery(t *testing.T) {
	cache, mock := newTestLocationCache(t, DialectSQLite)

	got, err := cache.Get(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty map, got %v, %v", got, err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected query: %v", err)
	}
}

func TestLocationCacheGet_QueryError(t *testing.T) {
	cache, mock := newTestLocationCache(t, DialectSQLite)

	mock.ExpectQuery("FROM location_cache").WillReturnError(errors.New("disk I/O error"))

	if _, err := cache.Get(context.Background(), []string{"10001"}); !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestLocationCachePut_MultiRowUpsert(t *testing.T) {
	cache, mock := newTestLocationCache(t, DialectPostgres)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location_cache (zip_code,city,state,county,latitude,longitude,cached_at) VALUES ($1,$2,$3,$4,$5,$6,$7),($8,$9,$10,$11,$12,$13,$14) ON CONFLICT (zip_code)")).
		WithArgs(
			"10001", "New York", "NY", "", 40.75, -73.99, fixedNow,
			"90001", "Los Angeles", "CA", "", 33.97, -118.24, fixedNow,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := cache.Put(context.Background(), []models.Location{
		{ZipCode: "10001", City: "New York", State: "NY", Latitude: 40.75, Longitude: -73.99},
		{ZipCode: "90001", City: "Los Angeles", State: "CA", Latitude: 33.97, Longitude: -118.24},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLocationCachePut_Empty(t *testing.T) {
	cache, mock := newTestLocationCache(t, DialectSQLite)

	if err := cache.Put(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected exec: %v", err)
	}
}

func TestLocationCachePrune(t *testing.T) {
	cache, mock := newTestLocationCache(t, DialectSQLite)
	cutoff := fixedNow.Add(-24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM location_cache WHERE cached_at < ?")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := cache.Prune(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7 pruned rows, got %d", n)
	}
}
