package token

import "strings"

// CommentStyle selects the marker punctuation used when emitting
// comment text. Stored comment text never contains markers; they are
// added by FormatComment and removed by StripComment.
type CommentStyle int

const (
	HashStyle CommentStyle = iota // #
	LineStyle                     // //
	BlockStyle                    // /* */
)

// FormatComment renders raw comment text in the given style. Hash and
// line styles prefix every line with the marker; block style wraps the
// whole text between /* and */ on their own lines.
func FormatComment(style CommentStyle, text string) string {
	if style == BlockStyle {
		return "/*\n" + text + "\n*/"
	}
	marker := "#"
	if style == LineStyle {
		marker = "//"
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ln == "" {
			lines[i] = marker
		} else {
			lines[i] = marker + " " + ln
		}
	}
	return strings.Join(lines, "\n")
}

// StripComment removes comment markers from every line of text,
// detecting the style from the leading markers. A line starting with a
// block opener is treated as a fresh block.
func StripComment(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	inBlock := false
	for _, ln := range lines {
		t := strings.TrimLeft(ln, " \t")
		switch {
		case strings.HasPrefix(t, "/*"):
			inBlock = true
			t = t[2:]
			if rest := strings.TrimRight(t, " \t"); strings.HasSuffix(rest, "*/") {
				inBlock = false
				t = strings.TrimSuffix(rest, "*/")
			}
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		case inBlock && strings.TrimSpace(t) == "*/":
			inBlock = false
		case inBlock && strings.HasSuffix(strings.TrimRight(t, " \t"), "*/"):
			inBlock = false
			rest := strings.TrimSuffix(strings.TrimRight(t, " \t"), "*/")
			out = append(out, strings.TrimRight(rest, " \t"))
		case inBlock:
			out = append(out, ln)
		case strings.HasPrefix(t, "//"):
			out = append(out, strings.TrimPrefix(t[2:], " "))
		case strings.HasPrefix(t, "#"):
			out = append(out, strings.TrimPrefix(t[1:], " "))
		default:
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n")
}
