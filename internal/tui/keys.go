// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	submit   key.Binding
	quit     key.Binding
	forceQ   key.Binding
	newNote  key.Binding
	like     key.Binding
	unlike   key.Binding
	delete   key.Binding
	copy     key.Binding
	refresh  key.Binding
	about    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	prevPage: key.NewBinding(key.WithKeys("left", "h", "pgup")),
	nextPage: key.NewBinding(key.WithKeys("right", "pgdown")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "shift+tab")),
	submit:   key.NewBinding(key.WithKeys("ctrl+s")),
	quit:     key.NewBinding(key.WithKeys("q")),
	forceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	newNote:  key.NewBinding(key.WithKeys("n")),
	like:     key.NewBinding(key.WithKeys("l")),
	unlike:   key.NewBinding(key.WithKeys("u")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	about:    key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
