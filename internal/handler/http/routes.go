// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/proxy", func(r chi.Router) {
		r.Get("/*", h.proxy)
		r.Post("/*", h.proxy)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
