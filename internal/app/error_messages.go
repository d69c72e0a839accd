// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the proxy writes into JSON error
// bodies, so that handlers and middleware use the same wording.
package app

const (
	// MsgNotFound is returned for unknown routes and for known routes that
	// do not serve the request method.
	MsgNotFound = "not found"

	// MsgInvalidGzipBody is returned when a request declares gzip content
	// encoding but the body is not valid gzip.
	MsgInvalidGzipBody = "invalid gzip body"

	// MsgFailedToFetch prefixes the endpoint name when the upstream answered
	// with an error status.
	MsgFailedToFetch = "failed to fetch "

	// MsgInternalServerError replaces the text of errors that have no
	// client-facing status.
	MsgInternalServerError = "internal server error"
)
