// Package display shapes now-playing titles for narrow surfaces such as a
// menu bar title, a tooltip, or a tmux status line.
package display

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	// WrapWidth is the column after which Full breaks at the next whitespace
	WrapWidth = 40
	// ShortLength is the number of characters kept in Short
	ShortLength = 20
	// Ellipsis marks a truncated Short title
	Ellipsis = "…"
)

// Display is the pair of representations derived from one title
type Display struct {
	Full   string `json:"full" yaml:"full"`     // Wrapped for a tooltip or menu section
	Short  string `json:"short" yaml:"short"`   // Truncated for the menu bar title
	Source string `json:"source" yaml:"source"` // Title both fields were derived from
}

// Format derives the full and short representations of title.
// An empty title yields an empty Display; callers substitute a placeholder.
func Format(title string) Display {
	return Display{
		Full:   Wrap(title, WrapWidth),
		Short:  Truncate(title, ShortLength),
		Source: title,
	}
}

// Wrap replaces the first whitespace run at or after column width of each
// line with a line break. Lengths are counted in characters.
func Wrap(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) < width {
		return s
	}

	var b strings.Builder
	start := 0
	for len(runes)-start >= width {
		end := start + width
		for end < len(runes) && !unicode.IsSpace(runes[end]) {
			end++
		}
		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}
		if next == len(runes) {
			break
		}
		b.WriteString(string(runes[start:end]))
		b.WriteByte('\n')
		start = next
	}
	b.WriteString(string(runes[start:]))

	return b.String()
}

// Truncate keeps the first n characters of s and appends Ellipsis when s is longer
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + Ellipsis
}

// PadToWidth pads or truncates text to a fixed display width.
// Width is measured in terminal columns, so wide characters count double.
// If width <= 0, returns text unchanged.
func PadToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	current := runewidth.StringWidth(text)
	switch {
	case current > width:
		truncated := runewidth.Truncate(text, width, Ellipsis)
		return runewidth.FillRight(truncated, width)
	case current < width:
		return text + strings.Repeat(" ", width-current)
	default:
		return text
	}
}
