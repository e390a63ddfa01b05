package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item           *lipgloss.Style
	FocusItem      *lipgloss.Style
	CheckedItem    *lipgloss.Style
	FocusIndicator *lipgloss.Style
	Checkbox       *lipgloss.Style
	CheckboxActive *lipgloss.Style
	Info           *lipgloss.Style
	Error          *lipgloss.Style
	Header         *lipgloss.Style
	Footer         *lipgloss.Style
	Status         *lipgloss.Style
}

// Glyphs are the characters drawn for checkbox indicators and the focus bar.
type Glyphs struct {
	Checkbox       string
	CheckboxActive string
	Focus          string
	Blur           string
}

// Default returns a fresh copy of the standard style set.
func Default() *Styles {
	return &Styles{
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		FocusItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
		),
		CheckedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		),
		FocusIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
		),
		Checkbox: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		CheckboxActive: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Status: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		),
	}
}

// DefaultGlyphs returns the standard indicator characters.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Checkbox:       "[ ]",
		CheckboxActive: "[✓]",
		Focus:          "▌",
		Blur:           " ",
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
