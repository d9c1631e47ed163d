package dom

import "strings"

// Escape replaces & < > " and ' with character references. Each input rune
// is considered once, so references produced here are never escaped again.
// Escaping already-escaped text escapes its ampersands a second time.
func Escape(s string) string {
	if !strings.ContainsAny(s, `&<>"'`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + len(s)/4)

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#039;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
