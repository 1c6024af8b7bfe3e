package vlist

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/kr/pretty"
)

// Component is anything that can render itself as text for a given width.
// A width of 0 or less means "natural width".
type Component interface {
	Render(width int) string
}

// TextComponent displays a styled line of text.
type TextComponent struct {
	text  string
	style lipgloss.Style
}

// Text creates a new text component with the given string.
func Text(s string) *TextComponent {
	return &TextComponent{text: s, style: lipgloss.NewStyle()}
}

// Textf creates a new text component with printf-style formatting.
func Textf(format string, args ...any) *TextComponent {
	return Text(fmt.Sprintf(format, args...))
}

// Content returns the raw text.
func (t *TextComponent) Content() string {
	return t.text
}

// Style replaces the component's style.
func (t *TextComponent) Style(s lipgloss.Style) *TextComponent {
	t.style = s
	return t
}

// Bold enables bold rendering.
func (t *TextComponent) Bold() *TextComponent {
	t.style = t.style.Bold(true)
	return t
}

// FG sets the foreground color.
func (t *TextComponent) FG(c lipgloss.TerminalColor) *TextComponent {
	t.style = t.style.Foreground(c)
	return t
}

// Render implements Component.
func (t *TextComponent) Render(width int) string {
	if width > 0 {
		return t.style.Width(width).MaxWidth(width).Render(t.text)
	}
	return t.style.Render(t.text)
}

// DumpComponent renders a structural dump of an arbitrary value. It is
// the diagnostic fallback used when no render function is configured,
// not meant for production rendering.
type DumpComponent struct {
	text string
}

// Dump creates a dump component for v. Output is deterministic for a
// fixed value.
func Dump(v any) *DumpComponent {
	return &DumpComponent{text: pretty.Sprint(v)}
}

// Render implements Component.
func (d *DumpComponent) Render(width int) string {
	return d.text
}
