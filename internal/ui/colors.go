package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette(Theme{
	Title:  "#7D56F4",
	Active: "#04B575",
	Error:  "#FF0000",
	Badge:  "#FFA500",
	Muted:  "#626262",
})

// Theme names the colors a [Palette] is built from.
type Theme struct {
	Title  string
	Active string
	Error  string
	Badge  string
	Muted  string
}

// Palette holds the [lipgloss.Style] values used by the browser views.
type Palette struct {
	title  lipgloss.Style
	active lipgloss.Style
	err    lipgloss.Style
	badge  lipgloss.Style
	muted  lipgloss.Style
}

func NewPalette(t Theme) *Palette {
	return &Palette{
		title:  fg(t.Title).Bold(true).MarginBottom(1),
		active: fg(t.Active).Bold(true),
		err:    fg(t.Error).Bold(true),
		badge:  fg(t.Badge).Reverse(true).Padding(0, 1),
		muted:  fg(t.Muted).Italic(true),
	}
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// facet renders "name: value", with a muted "any" when nothing is selected.
func (p *Palette) facet(name, value string, selected bool) string {
	if !selected {
		return name + ": " + p.muted.Render("any")
	}
	return name + ": " + p.active.Render(value)
}
