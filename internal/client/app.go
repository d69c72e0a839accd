// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/internal/tui"
	"github.com/MKhiriev/go-paw-finder/models"
)

var errNoClientDependencies = errors.New("client: services and ui are required")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNoClientDependencies
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  cfg,
		logger:   log.WithComponent("client"),
	}, nil
}

// Run restores the stored session or asks the user to log in, then runs the
// main loop. A logout or an expired session starts over. Quitting from the
// login form ends Run without an error.
func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.services.PruneJob.Start(ctx, a.workers.CachePruneInterval)
	defer a.services.PruneJob.Stop()

	for {
		user, err := a.authenticate(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("func", "App.run").Msg("session ended, authenticating again")
	}
}

func (a *App) authenticate(ctx context.Context) (models.User, error) {
	user, err := a.services.Session.Restore(ctx)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, service.ErrNotLoggedIn) {
		a.logger.Warn().Err(err).Str("func", "App.authenticate").Msg("could not restore session")
	}
	return a.ui.LoginFlow(ctx)
}
