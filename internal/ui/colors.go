package ui

import "github.com/charmbracelet/lipgloss"

const (
	accentColor = "#FF0000"
	okColor     = "#04B575"
	dimColor    = "#626262"
)

// pickerStyles groups the lipgloss styles used by the track picker.
type pickerStyles struct {
	title  lipgloss.Style
	status lipgloss.Style
	help   lipgloss.Style
}

var styles = pickerStyles{
	title:  lipgloss.NewStyle().Foreground(lipgloss.Color(accentColor)).Bold(true).MarginBottom(1),
	status: lipgloss.NewStyle().Foreground(lipgloss.Color(okColor)),
	help:   lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor)).Italic(true),
}
