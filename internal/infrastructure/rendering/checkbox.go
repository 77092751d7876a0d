package rendering

import "strings"

// Marker is the single glyph prefixed to a template cell's literal text to
// render a checked state. The convention is dictated by the printed template
// format: a cell is "checked" when its text starts with exactly one marker.
const Marker = "✔"

// Full-width parenthesis pair used by the template's "other" cells.
const (
	parenOpen  = "（"
	parenClose = "）"
)

// Mark prefixes the marker glyph unless it is already present, so marking an
// already-marked cell twice yields the same text as marking once.
func Mark(text string) string {
	if strings.HasPrefix(text, Marker) {
		return text
	}
	return Marker + text
}

// Unmark strips exactly one leading marker glyph. Unmarking an unmarked cell
// is a no-op.
func Unmark(text string) string {
	return strings.TrimPrefix(text, Marker)
}

// InjectParenthetical substitutes the elaboration into the interior of the
// first full-width parenthesized span of text. When no such span exists, a
// new one is appended to the end instead.
func InjectParenthetical(text, elaboration string) string {
	open := strings.Index(text, parenOpen)
	if open < 0 {
		return text + parenOpen + elaboration + parenClose
	}
	rest := text[open+len(parenOpen):]
	end := strings.Index(rest, parenClose)
	if end < 0 {
		return text + parenOpen + elaboration + parenClose
	}
	return text[:open+len(parenOpen)] + elaboration + rest[end:]
}
