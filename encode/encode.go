package encode

import (
	"io"
	"strings"

	"github.com/rjson-format/go-rjson/format"
	"github.com/rjson-format/go-rjson/ir"
	"github.com/rjson-format/go-rjson/token"
)

type EncState struct {
	depth int

	format         format.Format
	indent         string
	commentIndent  string
	comments       bool
	bracesSameLine bool
	allowCondense  bool
	allowMultiVal  bool
	omitRootBraces bool
	eol            string
	style          token.CommentStyle
	providers      []ir.ExtProvider

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:        "  ",
		comments:      true,
		allowCondense: true,
		allowMultiVal: true,
		style:         token.HashStyle,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.eol == "" {
		es.eol = DefaultEol()
	}
	if es.eol != "\n" && es.eol != "\r\n" {
		return ErrBadEol
	}
	if es.format.IsJSON() {
		es.comments = false
	}
	if !es.allowMultiVal {
		es.allowCondense = false
	}

	if es.comments && node.Comments.Leading != "" {
		f := token.FormatComment(es.style, node.Comments.Leading)
		for _, ln := range strings.Split(f, "\n") {
			if err := writeString(w, es.color(CommentColor, ln)+es.eol); err != nil {
				return err
			}
		}
		// blank line between the header and the document
		if err := writeString(w, es.eol); err != nil {
			return err
		}
	}
	if err := es.encode(node, w, "", true, true, false); err != nil {
		return err
	}
	if es.comments && node.Comments.Trailing != "" {
		f := token.FormatComment(es.style, node.Comments.Trailing)
		for _, ln := range strings.Split(f, "\n") {
			if err := writeString(w, es.eol+es.color(CommentColor, ln)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(ir.NullType, attr, s)
}

func (es *EncState) colorType(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

// nl starts a fresh line at the current depth. It is a no-op for
// compact output.
func (es *EncState) nl(w io.Writer) error {
	if es.format == format.CompactFormat {
		return nil
	}
	return writeString(w, es.eol+strings.Repeat(es.indent, es.depth))
}

func (es *EncState) encode(node *ir.Node, w io.Writer, sep string, lineStart, root, force bool) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		return es.encodeContainer(node, w, sep, lineStart, root)
	case ir.StringType:
		return es.encodeString(node, w, sep, force)
	case ir.NumberType:
		return es.writeScalar(w, ir.NumberType, sep, ir.FormatNumber(node.Number))
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return es.writeScalar(w, ir.BoolType, sep, v)
	case ir.NullType:
		return es.writeScalar(w, ir.NullType, sep, "null")
	case ir.ExtensionType:
		return es.encodeExt(node, w, sep)
	default:
		return ErrEncoding
	}
}

func (es *EncState) writeScalar(w io.Writer, t ir.Type, sep, v string) error {
	return writeString(w, sep+es.colorType(t, ValueColor, v))
}

func (es *EncState) encodeExt(node *ir.Node, w io.Writer, sep string) error {
	if node.Provider == nil {
		return ErrEncoding
	}
	text, ok := node.Provider.Format(node.Ext)
	if !ok {
		return ErrEncoding
	}
	if es.format.IsJSON() {
		text = `"` + token.Escape(text) + `"`
	}
	return es.writeScalar(w, ir.ExtensionType, sep, text)
}

func (es *EncState) encodeContainer(node *ir.Node, w io.Writer, sep string, lineStart, root bool) error {
	obj := node.Type == ir.ObjectType
	open, close := "[", "]"
	if obj {
		open, close = "{", "}"
	}
	n := node.Len()
	condensed := n > 0 && node.Condensed && es.allowCondense &&
		es.format.IsRJSON() && !es.containerComments(node)
	lineLen := 1
	if es.allowMultiVal && es.format.IsRJSON() && !es.containerComments(node) &&
		node.LineLength > 1 {
		lineLen = node.LineLength
	}
	braces := !(root && obj && es.omitRootBraces && es.format.IsRJSON() && n > 0)

	if braces {
		if !lineStart && !condensed && n > 0 && !es.bracesSameLine && es.format.IsRJSON() {
			if err := es.nl(w); err != nil {
				return err
			}
		} else if err := writeString(w, sep); err != nil {
			return err
		}
		if err := writeString(w, es.color(SepColor, open)); err != nil {
			return err
		}
		es.depth++
	}

	if n == 0 {
		if es.comments && node.Comments.Interior != "" {
			if err := es.writeLeading(w, node.Comments.Interior); err != nil {
				return err
			}
			es.depth--
			if err := es.nl(w); err != nil {
				return err
			}
			return writeString(w, es.color(SepColor, close))
		}
		es.depth--
		return writeString(w, es.color(SepColor, close))
	}

	force := condensed || lineLen > 1

	for i := 0; i < n; i++ {
		child := node.Values[i]
		switch {
		case es.format == format.CompactFormat:
			if i > 0 {
				if err := writeString(w, ","); err != nil {
					return err
				}
			}
		case es.format == format.JSONFormat:
			if i > 0 {
				if err := writeString(w, es.color(SepColor, ",")); err != nil {
					return err
				}
			}
			if err := es.nl(w); err != nil {
				return err
			}
		case condensed:
			if i > 0 {
				if err := writeString(w, es.color(SepColor, ", ")); err != nil {
					return err
				}
			}
		case i%lineLen != 0:
			if err := writeString(w, es.color(SepColor, ", ")); err != nil {
				return err
			}
		default:
			lead := ""
			if es.comments {
				lead = child.Comments.Leading
			}
			if i == 0 && !braces {
				// first key of a brace-less root
				if lead != "" {
					f := token.FormatComment(es.style, lead)
					for _, ln := range strings.Split(f, "\n") {
						if err := writeString(w, es.commentIndent+es.color(CommentColor, ln)+es.eol); err != nil {
							return err
						}
					}
				}
			} else {
				if lead != "" {
					if err := es.writeLeading(w, lead); err != nil {
						return err
					}
				}
				if err := es.nl(w); err != nil {
					return err
				}
			}
		}
		// a quoteless string would swallow a same-line comment on reparse
		valForce := force
		if es.comments && child.Type == ir.StringType && child.Comments.Trailing != "" {
			valForce = true
		}
		var err error
		if obj {
			if err = es.writeKey(w, node.Names[i], force); err != nil {
				return err
			}
			valSep := " "
			if es.format == format.CompactFormat {
				valSep = ""
			}
			err = es.encode(child, w, valSep, false, false, valForce)
		} else {
			err = es.encode(child, w, "", !condensed && es.format.IsRJSON(), false, valForce)
		}
		if err != nil {
			return err
		}
		if es.comments && child.Comments.Trailing != "" {
			if err := es.writeTrailing(w, child.Comments.Trailing); err != nil {
				return err
			}
		}
	}

	if !braces {
		return nil
	}
	es.depth--
	if !condensed && es.format != format.CompactFormat {
		if err := es.nl(w); err != nil {
			return err
		}
	}
	return writeString(w, es.color(SepColor, close))
}

func (es *EncState) containerComments(node *ir.Node) bool {
	if !es.comments {
		return false
	}
	for _, c := range node.Values {
		if !c.Comments.Empty() {
			return true
		}
	}
	return false
}

// writeLeading emits comment text, each line on a fresh line at the
// current depth.
func (es *EncState) writeLeading(w io.Writer, text string) error {
	f := token.FormatComment(es.style, text)
	for _, ln := range strings.Split(f, "\n") {
		if err := es.nl(w); err != nil {
			return err
		}
		if err := writeString(w, es.commentIndent+es.color(CommentColor, ln)); err != nil {
			return err
		}
	}
	return nil
}

// writeTrailing emits comment text after a value on the same line;
// extra lines continue below.
func (es *EncState) writeTrailing(w io.Writer, text string) error {
	f := token.FormatComment(es.style, text)
	for i, ln := range strings.Split(f, "\n") {
		if i > 0 {
			if err := es.nl(w); err != nil {
				return err
			}
			if err := writeString(w, es.color(CommentColor, ln)); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, " "+es.color(CommentColor, ln)); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) writeKey(w io.Writer, name string, force bool) error {
	k := name
	if es.format.IsJSON() || force || keyNeedsQuotes(name) {
		k = `"` + token.Escape(name) + `"`
	}
	k = es.colorType(ir.ObjectType, FieldColor, k)
	return writeString(w, k+es.color(SepColor, ":"))
}

func keyNeedsQuotes(name string) bool {
	if name == "" {
		return true
	}
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case token.IsWhiteSpace(int(c)):
			return true
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ',' || c == ':' ||
			c == '"' || c == '\'' || c == '#':
			return true
		case c == '/' && i+1 < len(name) && (name[i+1] == '/' || name[i+1] == '*'):
			return true
		}
	}
	return false
}

func (es *EncState) encodeString(node *ir.Node, w io.Writer, sep string, force bool) error {
	v := node.String
	if es.format.IsJSON() {
		return es.writeScalar(w, ir.StringType, sep, `"`+token.Escape(v)+`"`)
	}
	if v == "" {
		return es.writeScalar(w, ir.StringType, sep, `""`)
	}
	if !es.needsQuotes(v, force) {
		return es.writeScalar(w, ir.StringType, sep, v)
	}
	if !strings.ContainsFunc(v, token.NeedsEscape) {
		return es.writeScalar(w, ir.StringType, sep, `"`+v+`"`)
	}
	if !force && !strings.ContainsFunc(v, token.NeedsEscapeML) &&
		!strings.Contains(v, "'''") && strings.TrimSpace(v) != "" {
		return es.writeMLString(w, v, sep)
	}
	return es.writeScalar(w, ir.StringType, sep, `"`+token.Escape(v)+`"`)
}

// needsQuotes reports whether a string cannot be written quoteless:
// it contains characters a quoteless scalar cannot carry, starts or
// ends ambiguously, or would read back as a number, keyword or
// extension value.
func (es *EncState) needsQuotes(v string, force bool) bool {
	if force {
		return true
	}
	for _, c := range v {
		if token.NeedsQuotes(c) {
			return true
		}
	}
	first, last := v[0], v[len(v)-1]
	var second byte
	if len(v) > 1 {
		second = v[1]
	}
	if token.IsWhiteSpace(int(first)) || token.IsWhiteSpace(int(last)) {
		return true
	}
	switch first {
	case '"', '\'', '#', '{', '}', '[', ']', ',', ':':
		return true
	case '/':
		if second == '/' || second == '*' {
			return true
		}
	}
	if _, ok := token.TryParseNumber(v, true); ok {
		return true
	}
	if token.StartsWithKeyword(v) {
		return true
	}
	for _, p := range es.providers {
		if _, ok := p.Parse(v); ok {
			return true
		}
	}
	return false
}

func (es *EncState) writeMLString(w io.Writer, v, sep string) error {
	lines := strings.Split(v, "\n")
	if len(lines) == 1 {
		return es.writeScalar(w, ir.StringType, sep, "'''"+lines[0]+"'''")
	}
	es.depth++
	if err := es.nl(w); err != nil {
		return err
	}
	if err := writeString(w, es.color(SepColor, "'''")); err != nil {
		return err
	}
	for _, ln := range lines {
		if ln == "" {
			// no trailing indent on blank lines
			if err := writeString(w, es.eol); err != nil {
				return err
			}
			continue
		}
		if err := es.nl(w); err != nil {
			return err
		}
		if err := writeString(w, es.colorType(ir.StringType, ValueColor, ln)); err != nil {
			return err
		}
	}
	if err := es.nl(w); err != nil {
		return err
	}
	es.depth--
	return writeString(w, es.color(SepColor, "'''"))
}
