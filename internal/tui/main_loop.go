// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/service"
	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mainTab int

const (
	tabSearch mainTab = iota
	tabFavorites
)

const statusTTL = 3 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	tab       mainTab
	search    searchScreen
	favorites favoritesScreen

	spinner spinner.Model
	loading bool
	status  string
	errMsg  string

	editingZip bool
	zipInput   textinput.Model

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	zip := textinput.New()
	zip.Placeholder = "5-digit zip, empty to clear"
	zip.CharLimit = 5
	zip.Width = 30

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		search:   newSearchScreen(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading:  true,
		zipInput: zip,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	filter, _ := m.search.filter()
	return tea.Batch(m.spinner.Tick, m.cmdLoadBreeds(), m.cmdApply(filter))
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case breedsLoadedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.search.setBreeds(msg.breeds)
		return m, nil
	case searchPageMsg:
		if errors.Is(msg.err, service.ErrStaleResult) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if msg.page.Number > 0 {
				m.search.setPage(msg.page)
			}
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.search.setPage(msg.page)
		return m, nil
	case favoritesPageMsg:
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrPageOutOfRange) && m.favorites.page.Number > 1 {
				m.loading = true
				return m, m.cmdBrowse(m.favorites.page.Number - 1)
			}
			return m.fail(msg.err)
		}
		m.errMsg = ""
		m.favorites.setPage(msg.page)
		return m, nil
	case favoriteToggledMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		if p, ok := m.services.Session.Profile(); ok {
			m.user = p
		}
		cmd := m.setStatus(favoriteStatus(msg.on))
		if m.tab == tabFavorites {
			m.loading = true
			return m, tea.Batch(cmd, m.cmdBrowse(max(m.favorites.page.Number, 1)))
		}
		return m, cmd
	case matchDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		match := msg.match
		m.favorites.match = &match
		return m, m.setStatus("Match found")
	case zipUpdatedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.user = msg.user
		m.editingZip = false
		m.zipInput.Blur()
		status := "Zip code cleared"
		if m.user.ZipCode != "" {
			status = "Zip code set to " + m.user.ZipCode
		}
		cmd := m.setStatus(status)
		if m.services.Paginator.Filter().Sort.IsDistance() {
			m.loading = true
			return m, tea.Batch(cmd, m.spinner.Tick, m.cmdReload())
		}
		return m, cmd
	case logoutDoneMsg:
		m.logout = true
		return m, tea.Quit
	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		return m, m.setStatus("Photo URL copied")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.editingZip {
		return m.updateZipPrompt(keyMsg)
	}
	if m.tab == tabSearch && m.search.editing {
		return m.updateSearchForm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.switchTab):
		return m.switchTab()
	case key.Matches(keyMsg, keys.zip):
		m.editingZip = true
		m.zipInput.SetValue(m.user.ZipCode)
		m.zipInput.Focus()
		return m, textinput.Blink
	}

	if m.tab == tabFavorites {
		return m.updateFavorites(keyMsg)
	}
	return m.updateSearch(keyMsg)
}

func (m mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.filter):
		m.search.startEditing()
		return m, textinput.Blink
	case key.Matches(msg, keys.sort):
		m.search.cycleSort()
		return m.applySearch()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdReload())
	case key.Matches(msg, keys.nextPage):
		if !m.search.page.HasNext {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdNext())
	case key.Matches(msg, keys.prevPage):
		if m.search.page.Number <= 1 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdPrev())
	case key.Matches(msg, keys.up):
		m.search.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.search.moveCursor(1)
	case key.Matches(msg, keys.favorite):
		if d, ok := m.search.selected(); ok {
			return m, m.cmdToggle(d.ID)
		}
	case key.Matches(msg, keys.copy):
		if d, ok := m.search.selected(); ok && d.Img != "" {
			return m, cmdCopy(d.Img)
		}
	}
	return m, nil
}

func (m mainLoopModel) updateSearchForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.stopEditing()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.search.stopEditing()
		return m.applySearch()
	case key.Matches(msg, keys.tab) && m.search.canComplete():
		return m.updateInputs(msg)
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		m.search.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		m.search.focusPrev()
		return m, nil
	}
	return m.updateInputs(msg)
}

func (m mainLoopModel) updateFavorites(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.sort):
		m.favorites.cycleSort()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdBrowse(1))
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdBrowse(max(m.favorites.page.Number, 1)))
	case key.Matches(msg, keys.nextPage):
		if !m.favorites.page.HasNext {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdBrowse(m.favorites.page.Number+1))
	case key.Matches(msg, keys.prevPage):
		if m.favorites.page.Number <= 1 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdBrowse(m.favorites.page.Number-1))
	case key.Matches(msg, keys.up):
		m.favorites.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.favorites.moveCursor(1)
	case key.Matches(msg, keys.favorite):
		if d, ok := m.favorites.selected(); ok {
			return m, m.cmdToggle(d.ID)
		}
	case key.Matches(msg, keys.copy):
		if d, ok := m.favorites.selected(); ok && d.Img != "" {
			return m, cmdCopy(d.Img)
		}
	case key.Matches(msg, keys.match):
		m.loading = true
		m.favorites.match = nil
		return m, tea.Batch(m.spinner.Tick, m.cmdMatch())
	}
	return m, nil
}

func (m mainLoopModel) updateZipPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editingZip = false
		m.zipInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m, m.cmdUpdateZip(strings.TrimSpace(m.zipInput.Value()))
	}

	var cmd tea.Cmd
	m.zipInput, cmd = m.zipInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.editingZip:
		m.zipInput, cmd = m.zipInput.Update(msg)
	case m.tab == tabSearch && m.search.editing:
		m.search.form[m.search.focus], cmd = m.search.form[m.search.focus].Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) applySearch() (tea.Model, tea.Cmd) {
	filter, err := m.search.filter()
	if err != nil {
		return m.fail(err)
	}
	m.search.cursor = 0
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdApply(filter))
}

func (m mainLoopModel) switchTab() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	if m.tab == tabSearch {
		m.tab = tabFavorites
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdBrowse(max(m.favorites.page.Number, 1)))
	}
	m.tab = tabSearch
	return m, nil
}

// fail shows err on the status line. An expired session ends the main loop
// so the caller can log in again.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	if errors.Is(err, service.ErrSessionExpired) {
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = humanizeError(err)
	return m, nil
}

func (m *mainLoopModel) setStatus(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderUser())
	b.WriteString("\n\n")

	if m.tab == tabFavorites {
		b.WriteString(m.favorites.view())
	} else {
		b.WriteString(m.search.view(m.services.Favorites.Contains))
	}
	b.WriteString("\n")

	if m.editingZip {
		b.WriteString("\nZip code │ ")
		b.WriteString(m.zipInput.View())
		b.WriteString("\n")
	}
	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PAW FINDER", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m mainLoopModel) renderTabs() string {
	search, favorites := "Search", fmt.Sprintf("Favourites (%d)", len(m.user.Favorites))
	if m.tab == tabSearch {
		search = selectedStyle.Render("[" + search + "]")
	} else {
		favorites = selectedStyle.Render("[" + favorites + "]")
	}
	return search + "  " + favorites
}

func (m mainLoopModel) renderUser() string {
	zip := m.user.ZipCode
	if zip == "" {
		zip = "not set"
	}
	return helpStyle.Render(fmt.Sprintf("%s <%s> · zip %s", m.user.Name, m.user.Email, zip))
}

func (m mainLoopModel) hotKeys() string {
	switch {
	case m.editingZip:
		return "enter: save zip │ esc: cancel"
	case m.tab == tabSearch && m.search.editing:
		return "tab: next field │ enter: search │ esc: cancel"
	case m.tab == tabFavorites:
		return "↑/↓: select │ ←/→: page │ s: sort │ f: remove │ m: match │ c: copy photo │ tab: search │ z: zip │ L: logout │ q: quit"
	default:
		return "/: filter │ ↑/↓: select │ ←/→: page │ s: sort │ f: favourite │ c: copy photo │ r: reload │ tab: favourites │ z: zip │ L: logout │ q: quit"
	}
}

func (m mainLoopModel) cmdLoadBreeds() tea.Cmd {
	ctx, executor := m.ctx, m.services.Executor
	return func() tea.Msg {
		breeds, err := executor.Breeds(ctx)
		return breedsLoadedMsg{breeds: breeds, err: err}
	}
}

func (m mainLoopModel) cmdApply(filter models.SearchFilter) tea.Cmd {
	ctx, paginator := m.ctx, m.services.Paginator
	return func() tea.Msg {
		page, err := paginator.Apply(ctx, filter)
		return searchPageMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdReload() tea.Cmd {
	ctx, paginator := m.ctx, m.services.Paginator
	return func() tea.Msg {
		page, err := paginator.Reload(ctx)
		return searchPageMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdNext() tea.Cmd {
	ctx, paginator := m.ctx, m.services.Paginator
	return func() tea.Msg {
		page, err := paginator.Next(ctx)
		return searchPageMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdPrev() tea.Cmd {
	ctx, paginator := m.ctx, m.services.Paginator
	return func() tea.Msg {
		page, err := paginator.Prev(ctx)
		return searchPageMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdBrowse(n int) tea.Cmd {
	ctx, browser, sortBy := m.ctx, m.services.Browser, m.favorites.sort()
	return func() tea.Msg {
		page, err := browser.Browse(ctx, sortBy, n)
		return favoritesPageMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdToggle(id string) tea.Cmd {
	ctx, favorites := m.ctx, m.services.Favorites
	return func() tea.Msg {
		on, err := favorites.Toggle(ctx, id)
		return favoriteToggledMsg{id: id, on: on, err: err}
	}
}

func (m mainLoopModel) cmdMatch() tea.Cmd {
	ctx, matcher := m.ctx, m.services.Matcher
	return func() tea.Msg {
		match, err := matcher.Match(ctx)
		return matchDoneMsg{match: match, err: err}
	}
}

func (m mainLoopModel) cmdUpdateZip(zip string) tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		user, err := session.UpdateZipCode(ctx, zip)
		return zipUpdatedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.services.Session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func favoriteStatus(on bool) string {
	if on {
		return "Added to favourites"
	}
	return "Removed from favourites"
}
