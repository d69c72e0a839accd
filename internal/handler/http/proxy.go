// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/app"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/utils"
	"github.com/go-chi/chi/v5"
)

// maxProxyBodyBytes caps a forwarded request body after decompression.
const maxProxyBodyBytes = 1 << 20

// forwardedRequestHeaders are copied from the caller to the upstream.
var forwardedRequestHeaders = []string{"Cookie", "Content-Type", "Accept"}

// proxy forwards GET and POST /api/proxy/<endpoint> to <upstream>/<endpoint>.
// Query and body pass through unchanged. Set-Cookie from the upstream is
// relayed so the caller keeps the upstream session.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	endpoint := strings.Trim(chi.URLParam(r, "*"), "/")
	if endpoint == "" {
		h.writeError(w, r, ErrMissingEndpoint)
		return
	}
	endpoint = "/" + endpoint

	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProxyBodyBytes))
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.writeError(w, r, fmt.Errorf("%w: limit %d bytes", ErrRequestBodyTooLarge, tooLarge.Limit))
			return
		case err != nil:
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrReadingRequestBody, err))
			return
		}
		body = b
	}

	req := h.upstream.R().
		SetContext(r.Context()).
		SetQueryParamsFromValues(r.URL.Query())
	for _, name := range forwardedRequestHeaders {
		if v := r.Header.Get(name); v != "" {
			req.SetHeader(name, v)
		}
	}
	if len(body) > 0 {
		req.SetBody(bytes.NewReader(body))
	}

	resp, err := req.Execute(r.Method, endpoint)
	if err != nil {
		log.Err(err).Str("func", "*Handler.proxy").Str("endpoint", endpoint).Msg("upstream request failed")
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrUpstreamUnreachable, err))
		return
	}

	for _, cookie := range resp.Header().Values("Set-Cookie") {
		w.Header().Add("Set-Cookie", cookie)
	}

	if resp.IsError() {
		log.Warn().Str("func", "*Handler.proxy").Str("endpoint", endpoint).
			Int("upstream_status", resp.StatusCode()).Msg("upstream returned an error")
		if _, err := utils.WriteJSONError(w, app.MsgFailedToFetch+endpoint, resp.StatusCode()); err != nil {
			log.Err(err).Str("func", "*Handler.proxy").Msg("failed to write error response")
		}
		return
	}

	if ct := resp.Header().Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode())
	if _, err := w.Write(resp.Body()); err != nil {
		log.Err(err).Str("func", "*Handler.proxy").Msg("failed to write upstream body")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	switch status {
	case http.StatusBadGateway:
		message = ErrUpstreamUnreachable.Error()
	case http.StatusInternalServerError:
		message = app.MsgInternalServerError
	}
	if _, writeErr := utils.WriteJSONError(w, message, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "*Handler.writeError").Msg("failed to write error response")
	}
}
