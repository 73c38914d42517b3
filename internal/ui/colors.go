package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by [PaletteFor] and remembered by the store.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var themes = map[string]*Palette{
	ThemeDark:  NewPalette("#7D56F4", "#04B575", "#FF5F5F", "#FFA500", "#8A8A8A", "#E4E4E4", "#1C1B22"),
	ThemeLight: NewPalette("#5A3FC0", "#027A4B", "#C00000", "#A35F00", "#6C6C6C", "#1C1B22", "#F7F7F7"),
}

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	label    lipgloss.Style
	panel    lipgloss.Style
	frame    lipgloss.Style
	accent   lipgloss.Color
	fg       lipgloss.Color
	bg       lipgloss.Color
	selected lipgloss.Color
}

// NewPalette builds a palette from title, success, error, warning and help colors
// drawn on a fg/bg pair.
func NewPalette(t, s, e, w, h, fg, bg string) *Palette {
	return &Palette{
		title:    NewBold(t).MarginBottom(1),
		ok:       NewBold(s),
		err:      NewBold(e),
		warn:     NewStyle(w),
		help:     NewEm(h),
		label:    NewStyle(h),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(t)).Padding(0, 1),
		frame:    lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Background(lipgloss.Color(bg)).Padding(1, 2),
		accent:   lipgloss.Color(t),
		fg:       lipgloss.Color(fg),
		bg:       lipgloss.Color(bg),
		selected: lipgloss.Color(s),
	}
}

// PaletteFor returns the palette for theme, falling back to the dark one.
func PaletteFor(theme string) *Palette {
	if p, ok := themes[theme]; ok {
		return p
	}
	return themes[ThemeDark]
}

// TableStyles adapts the bubbles table defaults to the palette.
func (p *Palette) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.accent).
		BorderBottom(true).
		Bold(true).
		Foreground(p.accent)
	s.Selected = s.Selected.Foreground(p.bg).Background(p.selected).Bold(false)
	return s
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

func validTheme(theme string) bool {
	_, ok := themes[theme]
	return ok
}

func otherTheme(theme string) string {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
