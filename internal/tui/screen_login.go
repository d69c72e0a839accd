// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginName = iota
	loginEmail
	loginZip
)

// LoginModel is the login form: name, email and an optional zip code used
// for distance sorting. On submit it starts an upstream login and reports a
// [LoginResult], which [RootModel] uses to finish the flow.
type LoginModel struct {
	ctx     context.Context
	session service.Session

	inputs     []textinput.Model
	focus      int
	spinner    spinner.Model
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, session service.Session) *LoginModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.Width = 40
	name.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40

	zip := textinput.New()
	zip.Placeholder = "zip code (optional)"
	zip.CharLimit = 5
	zip.Width = 40

	return &LoginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{name, email, zip},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			name := strings.TrimSpace(m.inputs[loginName].Value())
			email := strings.TrimSpace(m.inputs[loginEmail].Value())
			if name == "" || email == "" {
				m.errMsg = "Name and email are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin(name, email, m.inputs[loginZip].Value()))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field │ Value\n")
	b.WriteString("──────┼────────────────────────────────────────────\n")
	b.WriteString("Name  │ [")
	b.WriteString(m.inputs[loginName].View())
	b.WriteString("]\n")
	b.WriteString("Email │ [")
	b.WriteString(m.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Zip   │ [")
	b.WriteString(m.inputs[loginZip].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Logging in...\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PAW FINDER · LOG IN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: log in │ ctrl+b: about")
}

func (m *LoginModel) cmdLogin(name, email, zip string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.Login(ctx, models.LoginRequest{Name: name, Email: email}, zip)
		return LoginResult{User: user, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
