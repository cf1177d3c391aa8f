package handlers

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors matching the init wizard's palette.
var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

// styled reports whether stdout is a terminal; piped output stays plain so
// the catalog listing remains grep-able.
func styled() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func titleStyle() lipgloss.Style {
	if !styled() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
}

func nameStyle() lipgloss.Style {
	if !styled() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
}

func dimStyle() lipgloss.Style {
	if !styled() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(colorDim)
}
