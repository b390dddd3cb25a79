// SPDX-License-Identifier: MIT

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles shared by the picker and the plain-text session. None of them add
// padding or margins, so without a color profile they render as plain text.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	ItemStyle = lipgloss.NewStyle()

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	ResultStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
