package token

import (
	"strings"
	"unicode/utf8"
)

// Quote renders s as a double-quoted literal using the escapes the
// tokenizer understands.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
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

// NeedsQuote reports whether s cannot stand bare as an object key.
// Bare keys are identifiers other than the keywords.
func NeedsQuote(s string) bool {
	switch s {
	case "", "true", "false", "null":
		return true
	}
	if !identStart(s[0]) {
		return true
	}
	d := []byte(s)
	for i := 0; i < len(d); {
		if !identPart(d[i:]) {
			return true
		}
		_, size := utf8.DecodeRune(d[i:])
		i += size
	}
	return false
}
