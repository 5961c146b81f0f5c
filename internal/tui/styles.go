package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Package-level styles instance (nil until initialized)
var appStyles *Styles

// Styles holds all application styles using terminal default colors
type Styles struct {
	Subtle color.Color

	BorderStyle        lipgloss.Style
	FocusedBorderStyle lipgloss.Style
	HeaderStyle        lipgloss.Style
	SelectedStyle      lipgloss.Style
	SearchInputStyle   lipgloss.Style
	ChipStyle          lipgloss.Style
	ActiveChipStyle    lipgloss.Style
	FooterStyle        lipgloss.Style
	SubtleStyle        lipgloss.Style
	EmptyStyle         lipgloss.Style
}

// newStyles uses NoColor{} everywhere so the terminal theme decides the
// actual colors.
func newStyles() *Styles {
	noColor := lipgloss.NoColor{}

	return &Styles{
		Subtle: noColor,

		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(noColor),

		FocusedBorderStyle: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(noColor),

		HeaderStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SelectedStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Bold(true),

		SearchInputStyle: lipgloss.NewStyle().
			Foreground(noColor),

		ChipStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Padding(0, 1),

		ActiveChipStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Reverse(true).
			Padding(0, 1),

		FooterStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),

		SubtleStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Faint(true),

		EmptyStyle: lipgloss.NewStyle().
			Foreground(noColor).
			Italic(true),
	}
}

// getStyles returns the current styles instance, with fallback for startup
func getStyles() *Styles {
	if appStyles == nil {
		return newStyles()
	}
	return appStyles
}
