// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea terminal UI of the client: a login program
// and the main search and favourites program.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui: client services are nil")

type TUI struct {
	services *service.ClientServices
	build    models.AppBuildInfo
	logger   *logger.Logger
}

func New(services *service.ClientServices, build models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, build: build, logger: log.WithComponent("tui")}, nil
}

// LoginFlow runs the login form until the upstream accepts the user.
// Returns [ErrUserQuit] when the user leaves with ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"login": NewLoginModel(ctx, t.services.Session),
	}

	root := NewRootModel(pages, "login", t.build)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("email", result.result.Email).Msg("logged in")
	return result.result, nil
}

// MainLoop runs the search program. logout reports that the session ended,
// by the user or by the upstream, and a new login is needed.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
