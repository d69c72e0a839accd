// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the proxy listener.
type Server interface {
	// RunServer serves requests and blocks until SIGINT, SIGTERM or SIGQUIT.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
