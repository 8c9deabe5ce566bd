// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Delete \"" + fitText(oneLine(m.message), 40) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
