// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingEndpoint is returned for /api/proxy/ with nothing after the
	// prefix.
	ErrMissingEndpoint = errors.New("missing upstream endpoint")

	// ErrUpstreamUnreachable wraps transport failures talking to the
	// upstream: refused connections, timeouts, broken bodies.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")

	ErrReadingRequestBody = errors.New("error reading request body")

	ErrRequestBodyTooLarge = errors.New("request body too large")
)
