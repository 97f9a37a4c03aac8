package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorLeaf    = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	leafStyle = lipgloss.NewStyle().
			Foreground(colorLeaf)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)
