package urlhandler

import "strings"

// autoEscapeString escapes the bytes listed in autoEscape and copies every
// other byte unchanged. Existing percent escapes are left alone, so applying
// it twice gives the same result as applying it once.
func autoEscapeString(rest string) string {
	var b strings.Builder
	lastPos := 0
	for i := 0; i < len(rest); i++ {
		escaped := autoEscape[rest[i]]
		if escaped == "" {
			continue
		}
		if lastPos == 0 {
			b.Grow(len(rest) + 8)
		}
		b.WriteString(rest[lastPos:i])
		b.WriteString(escaped)
		lastPos = i + 1
	}
	if lastPos == 0 {
		return rest
	}
	b.WriteString(rest[lastPos:])
	return b.String()
}
