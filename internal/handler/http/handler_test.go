// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/mock"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"go.uber.org/mock/gomock"
)

// newTestRouter starts upstream as a fake API and returns the proxy router
// pointing at it.
func newTestRouter(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	return newTestRouterFor(t, srv.URL)
}

func newTestRouterFor(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3").AnyTimes()

	h := NewHandler(appInfo, utils.NewPassThroughClient(upstreamURL, time.Second), logger.Nop())
	return h.Init()
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
