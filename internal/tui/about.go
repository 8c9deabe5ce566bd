// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-board/models"
)

type aboutModel struct {
	server  models.VersionResponse
	loading bool
	err     string
}

func (m aboutModel) View(client models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Client\n")
	b.WriteString("  Version: " + client.BuildVersion() + "\n")
	b.WriteString("  Date:    " + client.BuildDate() + "\n")
	b.WriteString("  Commit:  " + client.BuildCommit() + "\n\n")

	b.WriteString("Server\n")
	switch {
	case m.loading:
		b.WriteString("  Loading...\n")
	case m.err != "":
		b.WriteString("  " + errorStyle.Render(m.err) + "\n")
	default:
		b.WriteString("  Version: " + valueOrNA(m.server.Version) + "\n")
		b.WriteString("  Date:    " + valueOrNA(m.server.Date) + "\n")
		b.WriteString("  Commit:  " + valueOrNA(m.server.Commit) + "\n")
	}

	return renderPage("ABOUT", b.String(), "esc back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
