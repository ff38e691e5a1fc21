package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders text segments on one background color. Lipgloss resets
// attributes after every styled segment, so plain spaces between segments
// would show the terminal background; BgStyle styles those spaces too.
type BgStyle struct {
	bg    lipgloss.Color
	fill  lipgloss.Style
	space string
}

// NewBgStyle creates a background helper for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	fill := lipgloss.NewStyle().Background(bg)
	return BgStyle{bg: bg, fill: fill, space: fill.Render(" ")}
}

// Render applies style on the background to every word of text and joins
// the words with background-colored spaces. Runs of spaces are kept.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	style = style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return style.Render(text)
	}

	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = style.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns a single background-colored space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n background-colored spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Sep renders a separator on the background.
func (b BgStyle) Sep(sep string) string {
	return b.fill.Render(sep)
}

// Join joins rendered parts with a background-colored separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}

// FillLine pads rendered content with background up to width.
func (b BgStyle) FillLine(content string, width int) string {
	return b.fill.Width(width).Render(content)
}
