// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

// ── GET ──────────────────────────────────────────────────────────────────────

func TestProxy_GetForwardsPathQueryAndCookie(t *testing.T) {
	var got *http.Request
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"resultIds":["a"],"total":1}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/dogs/search?breeds=Labrador&breeds=Beagle&size=6", nil)
	req.Header.Set("Cookie", "fetch-access-token=abc")
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"resultIds":["a"],"total":1}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	require.NotNil(t, got)
	assert.Equal(t, "/dogs/search", got.URL.Path)
	assert.Equal(t, []string{"Labrador", "Beagle"}, got.URL.Query()["breeds"])
	assert.Equal(t, "6", got.URL.Query().Get("size"))
	assert.Equal(t, "fetch-access-token=abc", got.Header.Get("Cookie"))
}

func TestProxy_ForwardsTraceIDAsRequestID(t *testing.T) {
	var requestID string
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(utils.RequestIDHeader)
		_, _ = w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/proxy/dogs/breeds", nil)
	req.Header.Set(traceIDHeader, "trace-7")
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "trace-7", requestID)
	assert.Equal(t, "trace-7", rr.Header().Get(traceIDHeader))
}

// ── POST ─────────────────────────────────────────────────────────────────────

func TestProxy_PostForwardsBodyAndRelaysSetCookie(t *testing.T) {
	var body, contentType string
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		contentType = r.Header.Get("Content-Type")
		http.SetCookie(w, &http.Cookie{Name: "fetch-access-token", Value: "fresh", Path: "/", HttpOnly: true})
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/proxy/auth/login", strings.NewReader(`{"name":"Ann","email":"ann@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(router, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
	assert.JSONEq(t, `{"name":"Ann","email":"ann@example.com"}`, body)
	assert.Equal(t, "application/json", contentType)
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "fetch-access-token=fresh")
}

// ── Errors ───────────────────────────────────────────────────────────────────

func TestProxy_UpstreamErrorStatusIsKept(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "bad request", status: http.StatusBadRequest},
		{name: "upstream failure", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			})

			rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/proxy/dogs/search", nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "failed to fetch /dogs/search", decodeError(t, rr))
		})
	}
}

func TestProxy_OversizedBodyIsRejected(t *testing.T) {
	called := false
	router := newTestRouter(t, func(http.ResponseWriter, *http.Request) { called = true })

	body := strings.NewReader(`["` + strings.Repeat("a", maxProxyBodyBytes) + `"]`)
	req := httptest.NewRequest(http.MethodPost, "/api/proxy/dogs", body)
	req.Header.Set("Content-Type", "application/json")
	rr := serve(router, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, decodeError(t, rr), ErrRequestBodyTooLarge.Error())
	assert.False(t, called)
}

func TestProxy_MissingEndpoint(t *testing.T) {
	called := false
	router := newTestRouter(t, func(http.ResponseWriter, *http.Request) { called = true })

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/proxy/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrMissingEndpoint.Error(), decodeError(t, rr))
	assert.False(t, called)
}

func TestProxy_UpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	router := newTestRouterFor(t, url)
	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/proxy/dogs/breeds", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, ErrUpstreamUnreachable.Error(), decodeError(t, rr))
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrMissingEndpoint))
	assert.Equal(t, http.StatusBadGateway, statusFromError(ErrUpstreamUnreachable))
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFromError(ErrRequestBodyTooLarge))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(io.ErrUnexpectedEOF))
}
