// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "fetch-access-token"

func newTestAdapter(t *testing.T, serverURL string) *httpDogsAdapter {
	t.Helper()
	a, err := NewHTTPDogsAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpDogsAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPDogsAdapter ──────────────────────────────────────────────────────

func TestNewHTTPDogsAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDogsAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{in: "https://dogs.example.com/", want: "https://dogs.example.com"},
		{in: "dogs.example.com", want: "https://dogs.example.com"},
		{in: "http://localhost:8080", want: "http://localhost:8080"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestLogin_SessionCookieReplayed(t *testing.T) {
	var searchCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body models.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Alex", body.Name)
			assert.Equal(t, "alex@example.com", body.Email)
			http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "tok", Path: "/", HttpOnly: true})
		case "/dogs/breeds":
			if c, err := r.Cookie(sessionCookie); err == nil {
				searchCookie = c.Value
			}
			writeJSON(t, w, []string{"Beagle"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Login(context.Background(), models.LoginRequest{Name: "Alex", Email: "alex@example.com"}))

	_, err := a.Breeds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", searchCookie)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Unauthorized"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Name: "a", Email: "b"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_ForgetsCookie(t *testing.T) {
	var afterLogout bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "tok", Path: "/"})
		case "/auth/logout":
			w.WriteHeader(http.StatusOK)
		case "/dogs/breeds":
			_, err := r.Cookie(sessionCookie)
			afterLogout = err == nil
			writeJSON(t, w, []string{})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, a.Login(ctx, models.LoginRequest{Name: "a", Email: "b"}))
	require.NoError(t, a.Logout(ctx))
	_, err := a.Breeds(ctx)
	require.NoError(t, err)

	assert.False(t, afterLogout, "session cookie must not be sent after logout")
}

// ── Search ──────────────────────────────────────────────────────────────────

func TestSearch_SendsRepeatedParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dogs/search", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, []string{"Beagle", "Pug"}, q["breeds"])
		assert.Equal(t, "breed:asc", q.Get("sort"))
		assert.Equal(t, "25", q.Get("size"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(t, w, map[string]any{"resultIds": []string{"d1", "d2"}, "total": 2, "next": "/dogs/search?from=25"})
	}))
	defer srv.Close()

	query := url.Values{"breeds": {"Beagle", "Pug"}, "sort": {"breed:asc"}, "size": {"25"}}
	got, err := newTestAdapter(t, srv.URL).Search(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d2"}, got.ResultIDs)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, "/dogs/search?from=25", got.Next)
}

func TestSearch_EmptyResultIsNonNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"total": 0})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Search(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got.ResultIDs)
	assert.Empty(t, got.ResultIDs)
}

func TestSearch_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTooManyRequests, ErrTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Search(context.Background(), nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSearch_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Search(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── Dogs ────────────────────────────────────────────────────────────────────

func TestDogs_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/dogs", r.URL.Path)
		var ids []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		assert.Equal(t, []string{"d1", "d2"}, ids)
		writeJSON(t, w, []models.Dog{{ID: "d1", Name: "Rex", Age: 3, Breed: "Beagle", ZipCode: "10001"}})
	}))
	defer srv.Close()

	dogs, err := newTestAdapter(t, srv.URL).Dogs(context.Background(), []string{"d1", "d2"})
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "Rex", dogs[0].Name)
	assert.Equal(t, "10001", dogs[0].ZipCode)
}

func TestDogs_RejectsOversizedBatch(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	_, err := a.Dogs(context.Background(), make([]string, MaxBatchSize+1))
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Locations ───────────────────────────────────────────────────────────────

func TestLocations_DropsNullEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/locations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"zip_code":"10001","latitude":40.75,"longitude":-73.99,"city":"New York","state":"NY","county":"New York"},null]`))
	}))
	defer srv.Close()

	locs, err := newTestAdapter(t, srv.URL).Locations(context.Background(), []string{"10001", "99999"})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.Equal(t, "10001", locs[0].ZipCode)
	assert.InDelta(t, 40.75, locs[0].Latitude, 1e-9)
	assert.Equal(t, "New York", locs[0].City)
}

func TestLocations_MoreThanBatchSizeInOneRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		var zips []string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&zips))
		assert.Len(t, zips, MaxBatchSize+50)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Locations(context.Background(), make([]string, MaxBatchSize+50))
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

// ── Match ───────────────────────────────────────────────────────────────────

func TestMatch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dogs/match", r.URL.Path)
		writeJSON(t, w, map[string]string{"match": "d2"})
	}))
	defer srv.Close()

	id, err := newTestAdapter(t, srv.URL).Match(context.Background(), []string{"d1", "d2"})
	require.NoError(t, err)
	assert.Equal(t, "d2", id)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.Breeds(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "breeds request")
}
