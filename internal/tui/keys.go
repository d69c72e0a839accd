// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevPage  key.Binding
	nextPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	filter    key.Binding
	sort      key.Binding
	favorite  key.Binding
	copy      key.Binding
	zip       key.Binding
	match     key.Binding
	reload    key.Binding
	switchTab key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	filter:    key.NewBinding(key.WithKeys("/")),
	sort:      key.NewBinding(key.WithKeys("s")),
	favorite:  key.NewBinding(key.WithKeys("f", " ")),
	copy:      key.NewBinding(key.WithKeys("c")),
	zip:       key.NewBinding(key.WithKeys("z")),
	match:     key.NewBinding(key.WithKeys("m")),
	reload:    key.NewBinding(key.WithKeys("r")),
	switchTab: key.NewBinding(key.WithKeys("tab")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
}
