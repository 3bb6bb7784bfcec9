package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// theme defines the colors of the demo screens.
type theme struct {
	Highlight   lipgloss.Color // Selected link background
	Accent      lipgloss.Color // Title pill background
	ButtonLabel lipgloss.Color // Text inside pills
	Text        lipgloss.Color // Body text
	Hint        lipgloss.Color // Footer help and status text
}

// Footer glyphs.
const (
	glyphBack    = "←"
	glyphForward = "→"
	glyphSwipe   = "⇠"
)

func hexColor(hex uint32) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", hex&0xFFFFFF))
}

func defaultTheme() theme {
	return theme{
		Highlight:   hexColor(0xFFFFFF),
		Accent:      hexColor(0x008080),
		ButtonLabel: hexColor(0x000000),
		Text:        hexColor(0xFFFFFF),
		Hint:        hexColor(0x808080),
	}
}

// withAccent overrides the accent color when hex is set.
func (t theme) withAccent(hex uint32) theme {
	if hex != 0 {
		t.Accent = hexColor(hex)
	}
	return t
}

type styles struct {
	title  lipgloss.Style
	body   lipgloss.Style
	link   lipgloss.Style
	args   lipgloss.Style
	footer lipgloss.Style
	status lipgloss.Style
	frame  lipgloss.Style
}

func newStyles(t theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.ButtonLabel).Background(t.Accent).Padding(0, 2),
		body:   lipgloss.NewStyle().Foreground(t.Text),
		link:   lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		args:   lipgloss.NewStyle().Foreground(t.Hint).Italic(true),
		footer: lipgloss.NewStyle().Foreground(t.Hint),
		status: lipgloss.NewStyle().Foreground(t.Accent),
		frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(0, 1),
	}
}
