// ============================================================================
// veeks - Veek-Date Toolkit
// ============================================================================
//
// Package:     render
// Description: Styles for the table output
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

// Table styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			PaddingRight(2)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)
)
