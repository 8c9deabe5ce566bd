// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-board/models"
)

func renderNoteDetail(note models.Note) string {
	var b strings.Builder

	b.WriteString(note.Content)
	b.WriteString("\n\n")
	b.WriteString(authorStyle.Render("- " + note.Author))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Likes:   %d\n", note.Likes)
	fmt.Fprintf(&b, "Posted:  %s\n", formatTime(note.CreatedAt))
	fmt.Fprintf(&b, "Updated: %s\n", formatTime(note.UpdatedAt))
	fmt.Fprintf(&b, "ID:      %s\n", note.ID)

	return renderPage("NOTE", b.String(), "l like  u unlike  d delete  c copy  esc back")
}
