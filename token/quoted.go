package token

import (
	"fmt"
	"strings"
)

// IsWhiteSpace reports whether c is one of the four JSON whitespace
// characters. It accepts an int so the EOT sentinel can be passed
// directly.
func IsWhiteSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// NeedsQuotes reports whether a character forces a quoteless string to
// be quoted.
func NeedsQuotes(c rune) bool {
	switch c {
	case '\t', '\f', '\b', '\n', '\r':
		return true
	default:
		return false
	}
}

// NeedsEscape reports whether a character cannot appear in a quoted
// string without escaping.
func NeedsEscape(c rune) bool {
	switch c {
	case '"', '\\':
		return true
	default:
		return NeedsQuotes(c) || c < 0x20
	}
}

// NeedsEscapeML reports whether a character cannot appear in a
// triple-quoted multiline string. Carriage returns count: the reader
// drops them inside ''' blocks, so a string carrying one cannot round
// trip through the multiline form.
func NeedsEscapeML(c rune) bool {
	switch c {
	case '\n':
		return false
	default:
		return NeedsQuotes(c) || c < 0x20
	}
}

// Escape rewrites s with JSON escape sequences. It returns s unchanged
// when nothing needs escaping.
func Escape(s string) string {
	esc := func(c rune) string {
		switch c {
		case '"':
			return `\"`
		case '\\':
			return `\\`
		case '\t':
			return `\t`
		case '\n':
			return `\n`
		case '\r':
			return `\r`
		case '\f':
			return `\f`
		case '\b':
			return `\b`
		}
		if c < 0x20 {
			return fmt.Sprintf(`\u%04x`, c)
		}
		return ""
	}
	i := strings.IndexFunc(s, func(c rune) bool { return esc(c) != "" })
	if i < 0 {
		return s
	}
	b := &strings.Builder{}
	b.WriteString(s[:i])
	for _, c := range s[i:] {
		if e := esc(c); e != "" {
			b.WriteString(e)
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// StartsWithKeyword reports whether text would be read back as a bare
// true/false/null literal followed only by whitespace or a stop token.
func StartsWithKeyword(text string) bool {
	var p int
	switch {
	case strings.HasPrefix(text, "true"), strings.HasPrefix(text, "null"):
		p = 4
	case strings.HasPrefix(text, "false"):
		p = 5
	default:
		return false
	}
	for p < len(text) && IsWhiteSpace(int(text[p])) {
		p++
	}
	if p == len(text) {
		return true
	}
	switch c := text[p]; c {
	case ',', '}', ']', '#':
		return true
	case '/':
		return p+1 < len(text) && (text[p+1] == '/' || text[p+1] == '*')
	default:
		return false
	}
}
