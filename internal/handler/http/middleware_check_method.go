// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/app"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A method the matched route does not serve gets a JSON 404 instead of
// chi's 405, so the proxy does not advertise which verbs exist.
//
// Patterns ending in "/*" match every path below their prefix, mounted
// sub-routers are searched relative to their mount point.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := findRoute(router.Routes(), r.URL.Path)
		if !ok || !routeServes(route, r.Method) {
			_, _ = utils.WriteJSONError(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func findRoute(routes []chi.Route, path string) (chi.Route, bool) {
	for _, route := range routes {
		if route.SubRoutes != nil {
			mount := strings.TrimSuffix(route.Pattern, "/*")
			if rest, ok := strings.CutPrefix(path, mount); ok {
				return findRoute(route.SubRoutes.Routes(), rest)
			}
			continue
		}
		if route.Pattern == path {
			return route, true
		}
		if prefix, ok := strings.CutSuffix(route.Pattern, "*"); ok && strings.HasPrefix(path, prefix) {
			return route, true
		}
	}
	return chi.Route{}, false
}

func routeServes(route chi.Route, method string) bool {
	_, ok := route.Handlers[method]
	return ok
}
