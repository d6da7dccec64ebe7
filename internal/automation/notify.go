package automation

import (
	"context"
	"fmt"
	"strings"
)

// Notify posts a macOS notification through runner
func Notify(ctx context.Context, runner Runner, title, text string) error {
	script := fmt.Sprintf(`display notification %s with title %s`, Quote(oneLine(text)), Quote(oneLine(title)))
	if _, err := runner.Run(ctx, script); err != nil {
		return fmt.Errorf("failed to post notification: %w", err)
	}
	return nil
}

// Quote returns s as an AppleScript string literal.
// AppleScript only understands \" and \\ escapes, so every other
// character, including zero-width joiners and bidi marks, is kept as is.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// oneLine replaces line breaks with spaces; notifications show a single line
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
