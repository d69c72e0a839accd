// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

var errorStatusMap = map[error]int{
	ErrMissingEndpoint:     http.StatusBadRequest,
	ErrReadingRequestBody:  http.StatusBadRequest,
	ErrRequestBodyTooLarge: http.StatusRequestEntityTooLarge,
	ErrUpstreamUnreachable: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
