// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-paw-finder/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches [RootModel] to another page. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form once the upstream answered.
type LoginResult struct {
	User models.User
	Err  error
}

type searchPageMsg struct {
	page models.Page
	err  error
}

type favoritesPageMsg struct {
	page models.Page
	err  error
}

type breedsLoadedMsg struct {
	breeds []string
	err    error
}

type favoriteToggledMsg struct {
	id  string
	on  bool
	err error
}

type matchDoneMsg struct {
	match models.Match
	err   error
}

type zipUpdatedMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
