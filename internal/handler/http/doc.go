// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the pass-through proxy in front of the upstream
// dogs API.
//
// Requests under /api/proxy/ are forwarded upstream with their query, body
// and cookies. Tracing, access logging and response compression are
// handled by middleware before a request reaches the forwarder.
package http
