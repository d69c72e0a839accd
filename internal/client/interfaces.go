// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-paw-finder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive surface driven by [App]. *tui.TUI implements it.
type UI interface {
	LoginFlow(ctx context.Context) (models.User, error)
	MainLoop(ctx context.Context, user models.User) (logout bool, err error)
}
