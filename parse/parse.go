package parse

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/rjson-format/go-rjson/ir"
	"github.com/rjson-format/go-rjson/token"
)

// Parse reads a relaxed format document into a value tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{s: token.NewSource(d), opts: pOpts}
	return p.rootValue()
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader drains r and parses the result.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return Parse(d, opts...)
}

type parser struct {
	s    *token.Source
	opts *parseOpts
}

func (p *parser) errf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: p.s.Pos()}
}

func (p *parser) expected(what string) error {
	if p.s.Current() == token.EOT {
		return p.errf("Unexpected end of input")
	}
	return p.errf("Expected %s", what)
}

func (p *parser) rootValue() (*ir.Node, error) {
	same, later := p.between()
	header := joinComment(same, later)
	if p.s.Current() == token.EOT {
		return nil, p.expected("a value")
	}

	var res *ir.Node
	var err error
	switch p.s.Current() {
	case '{':
		res, err = p.readObject(false)
	case '[':
		res, err = p.readArray()
	default:
		if p.opts.braceLessRoot {
			// A root object may omit its braces. Try that reading
			// first; on failure rewind completely and retry as a
			// single value. When both fail the first error wins.
			cp := p.s.Checkpoint()
			res, err = p.readObject(true)
			if err == nil {
				p.attachHeader(res, header)
				return res, nil
			}
			p.s.Restore(cp)
			val, err2 := p.readValue()
			if err2 == nil {
				if err2 = p.checkTrailing(val); err2 == nil {
					p.attachHeader(val, header)
					return val, nil
				}
			}
			return nil, err
		}
		res, err = p.readValue()
	}
	if err != nil {
		return nil, err
	}
	if err := p.checkTrailing(res); err != nil {
		return nil, err
	}
	p.attachHeader(res, header)
	return res, nil
}

func (p *parser) attachHeader(root *ir.Node, header string) {
	if p.opts.comments && header != "" {
		appendComment(&root.Comments.Leading, header)
	}
}

// checkTrailing verifies nothing but whitespace and comments follows
// the root value; any comments found become the document footer.
func (p *parser) checkTrailing(root *ir.Node) error {
	same, later := p.between()
	if p.s.Current() != token.EOT {
		return p.errf("Extra characters in input")
	}
	if p.opts.comments {
		appendComment(&root.Comments.Trailing, joinComment(same, later))
	}
	return nil
}

func (p *parser) readValue() (*ir.Node, error) {
	switch c := p.s.Current(); c {
	case '{':
		return p.readObject(false)
	case '[':
		return p.readArray()
	case '"', '\'':
		if c == '\'' && p.s.Peek(1) == '\'' && p.s.Peek(2) == '\'' {
			return p.readMlString()
		}
		s, err := p.readQuotedString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	default:
		return p.readTfnns()
	}
}

// readTfnns reads a quoteless scalar: true, false, null, a number, an
// extension value, or a plain string. Characters accumulate until end
// of line or a stop token; stop tokens trigger a classification
// attempt and are swallowed into the text when it fails, so a
// quoteless string always runs to the end of its line.
func (p *parser) readTfnns() (*ir.Node, error) {
	first := p.s.Current()
	if first == token.EOT {
		return nil, p.expected("a value")
	}
	var b strings.Builder
	b.WriteByte(byte(first))
	for {
		if !p.s.Read() {
			n, _ := p.classify(first, b.String(), true)
			return n, nil
		}
		c := p.s.Current()
		isEol := c == '\r' || c == '\n'
		if isEol || c == ',' || c == '}' || c == ']' || c == '#' ||
			(c == '/' && (p.s.Peek(1) == '/' || p.s.Peek(1) == '*')) {
			if n, ok := p.classify(first, b.String(), isEol); ok {
				return n, nil
			}
		}
		b.WriteByte(byte(c))
	}
}

func (p *parser) classify(first int, raw string, atEol bool) (*ir.Node, bool) {
	switch first {
	case 'f', 'n', 't':
		switch strings.TrimSpace(raw) {
		case "false":
			return ir.FromBool(false), true
		case "true":
			return ir.FromBool(true), true
		case "null":
			return ir.Null(), true
		}
	default:
		if first == '-' || (first >= '0' && first <= '9') {
			if f, ok := token.TryParseNumber(raw, false); ok {
				if n, err := ir.FromFloat(f); err == nil {
					return n, true
				}
			}
		}
	}
	if !atEol {
		return nil, false
	}
	text := strings.TrimSpace(raw)
	for _, prov := range p.opts.providers {
		if v, ok := prov.Parse(text); ok {
			return ir.FromExt(prov, v), true
		}
	}
	return ir.FromString(text), true
}

func (p *parser) readQuotedString() (string, error) {
	quote := p.s.Current()
	p.s.Read()
	p.s.StartCapture()
	for p.s.Current() != quote {
		c := p.s.Current()
		if c == '\\' {
			p.s.PauseCapture()
			if err := p.readEscape(); err != nil {
				return "", err
			}
			p.s.StartCapture()
		} else if c < 0x20 {
			return "", p.expected("valid string character")
		} else {
			p.s.Read()
		}
	}
	res := p.s.EndCapture()
	p.s.Read()
	return res, nil
}

func (p *parser) readEscape() error {
	p.s.Read()
	switch c := p.s.Current(); c {
	case '"', '\'', '/', '\\':
		p.s.AppendCaptured(string(rune(c)))
	case 'b':
		p.s.AppendCaptured("\b")
	case 'f':
		p.s.AppendCaptured("\f")
	case 'n':
		p.s.AppendCaptured("\n")
	case 'r':
		p.s.AppendCaptured("\r")
	case 't':
		p.s.AppendCaptured("\t")
	case 'u':
		if !readUnicodeEscape(p.s) {
			return p.expected("hexadecimal digit")
		}
	default:
		return p.expected("valid escape sequence")
	}
	p.s.Read()
	return nil
}

// readUnicodeEscape decodes the XXXX of a \uXXXX escape, with the
// source positioned on the 'u'. A high surrogate followed by another
// \uXXXX escape is combined into one code point. Unpaired surrogate
// halves become U+FFFD.
func readUnicodeEscape(s *token.Source) bool {
	code, ok := readHex4(s)
	if !ok {
		return false
	}
	r := rune(code)
	if utf16.IsSurrogate(r) && s.Peek(1) == '\\' && s.Peek(2) == 'u' {
		s.Skip(2)
		code2, ok := readHex4(s)
		if !ok {
			return false
		}
		if cr := utf16.DecodeRune(r, rune(code2)); cr != unicode.ReplacementChar {
			s.AppendCaptured(string(cr))
			return true
		}
		s.AppendCaptured(string(r) + string(rune(code2)))
		return true
	}
	s.AppendCaptured(string(r))
	return true
}

func readHex4(s *token.Source) (int, bool) {
	var code int
	for i := 0; i < 4; i++ {
		s.Read()
		d := hexDigit(s.Current())
		if d < 0 {
			return 0, false
		}
		code = code<<4 | d
	}
	return code, true
}

func hexDigit(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return -1
}

// readMlString reads a triple quoted multiline string. The column of
// the opener sets the indent baseline stripped from every line.
func (p *parser) readMlString() (*ir.Node, error) {
	indent := p.s.Col()
	p.s.Skip(3)
	var sb strings.Builder
	triple := 0

	for token.IsWhiteSpace(p.s.Current()) && p.s.Current() != '\n' {
		p.s.Read()
	}
	if p.s.Current() == '\n' {
		p.s.Read()
		p.skipIndent(indent)
	}
	for {
		c := p.s.Current()
		if c == token.EOT {
			return nil, p.errf("Bad multiline string")
		}
		if c == '\'' {
			triple++
			p.s.Read()
			if triple == 3 {
				s := sb.String()
				if strings.HasSuffix(s, "\n") {
					s = s[:len(s)-1]
				}
				return ir.FromString(s), nil
			}
			continue
		}
		for ; triple > 0; triple-- {
			sb.WriteByte('\'')
		}
		if c == '\n' {
			sb.WriteByte('\n')
			p.s.Read()
			p.skipIndent(indent)
		} else {
			if c != '\r' {
				sb.WriteByte(byte(c))
			}
			p.s.Read()
		}
	}
}

func (p *parser) skipIndent(indent int) {
	for ; indent > 0; indent-- {
		if !token.IsWhiteSpace(p.s.Current()) || p.s.Current() == '\n' {
			return
		}
		p.s.Read()
	}
}

func (p *parser) readName() (string, error) {
	if c := p.s.Current(); c == '"' || c == '\'' {
		return p.readQuotedString()
	}
	var b strings.Builder
	for {
		c := p.s.Current()
		if c == ':' {
			if b.Len() == 0 {
				return "", p.errf("Empty key name requires quotes")
			}
			return b.String(), nil
		}
		if c <= ' ' || c == '{' || c == '}' || c == '[' || c == ']' || c == ',' {
			return "", p.errf("Key names that include {}[],: or whitespace require quotes")
		}
		b.WriteByte(byte(c))
		p.s.Read()
	}
}

func (p *parser) readArray() (*ir.Node, error) {
	arr := ir.NewArray()
	openLine := p.s.Line()
	p.s.Read()
	same, later := p.between()
	pending := joinComment(same, later)
	var last *ir.Node
	var lines []int
	for {
		c := p.s.Current()
		if c == ']' {
			closeLine := p.s.Line()
			p.s.Read()
			p.finishContainer(arr, last, pending, openLine, closeLine, lines)
			return arr, nil
		}
		if c == token.EOT {
			return nil, p.errf("End of input while parsing an array (did you forget a closing ']'?)")
		}
		lines = append(lines, p.s.Line())
		val, err := p.readValue()
		if err != nil {
			return nil, err
		}
		if p.opts.comments {
			val.Comments.Leading = pending
		}
		pending = ""
		arr.Append(val)
		last = val
		pending = p.afterValue(val)
	}
}

func (p *parser) readObject(withoutBraces bool) (*ir.Node, error) {
	obj := ir.NewObject()
	openLine := p.s.Line()
	if !withoutBraces {
		p.s.Read()
	}
	same, later := p.between()
	pending := joinComment(same, later)
	var last *ir.Node
	var lines []int
	for {
		c := p.s.Current()
		if !withoutBraces && c == '}' {
			closeLine := p.s.Line()
			p.s.Read()
			p.finishContainer(obj, last, pending, openLine, closeLine, lines)
			return obj, nil
		}
		if c == token.EOT {
			if withoutBraces {
				p.finishContainer(obj, last, pending, openLine, p.s.Line(), lines)
				return obj, nil
			}
			return nil, p.errf("End of input while parsing an object (did you forget a closing '}'?)")
		}
		lines = append(lines, p.s.Line())
		name, err := p.readName()
		if err != nil {
			return nil, err
		}
		same, later = p.between()
		appendComment(&pending, joinComment(same, later))
		if p.s.Current() != ':' {
			return nil, p.expected("':'")
		}
		p.s.Read()
		same, later = p.between()
		appendComment(&pending, joinComment(same, later))
		val, err := p.readValue()
		if err != nil {
			return nil, err
		}
		if p.opts.comments {
			val.Comments.Leading = pending
		}
		pending = ""
		obj.Add(name, val)
		last = val
		pending = p.afterValue(val)
	}
}

// afterValue consumes whitespace, comments and an optional comma after
// a container element. Comments on the element's own line attach as
// its trailing comment; comments on later lines are returned for the
// next element's leading slot.
func (p *parser) afterValue(val *ir.Node) (pending string) {
	same, later := p.between()
	appendComment(&val.Comments.Trailing, same)
	pending = later
	if p.s.Current() == ',' {
		p.s.Read()
		same, later = p.between()
		appendComment(&val.Comments.Trailing, same)
		appendComment(&pending, later)
	}
	return pending
}

func (p *parser) finishContainer(n, last *ir.Node, pending string, openLine, closeLine int, lines []int) {
	if pending != "" {
		if last != nil {
			appendComment(&last.Comments.Trailing, pending)
		} else {
			n.Comments.Interior = pending
		}
	}
	if n.Len() == 0 {
		return
	}
	n.Condensed = openLine == closeLine
	distinct := 1
	for i := 1; i < len(lines); i++ {
		if lines[i] != lines[i-1] {
			distinct++
		}
	}
	if ll := (len(lines) + distinct/2) / distinct; ll > 1 {
		n.LineLength = ll
	}
}

// between consumes whitespace and comments between syntactic tokens.
// Comment text starting on the same line as the scan began is
// returned separately from text on later lines, so callers can attach
// it to the value before it rather than the one after.
func (p *parser) between() (same, later string) {
	startLine := p.s.Line()
	var sameParts, laterParts []string
	for {
		c := p.s.Current()
		if token.IsWhiteSpace(c) {
			p.s.Read()
			continue
		}
		if c == '#' || (c == '/' && (p.s.Peek(1) == '/' || p.s.Peek(1) == '*')) {
			onStart := p.s.Line() == startLine
			txt := p.readComment()
			if !p.opts.comments {
				continue
			}
			if onStart {
				sameParts = append(sameParts, txt)
			} else {
				laterParts = append(laterParts, txt)
			}
			continue
		}
		break
	}
	return strings.Join(sameParts, "\n"), strings.Join(laterParts, "\n")
}

// readComment consumes one comment, returning its text with the
// markers stripped.
func (p *parser) readComment() string {
	p.s.StartCapture()
	if p.s.Current() == '/' && p.s.Peek(1) == '*' {
		p.s.Read()
		p.s.Read()
		for {
			c := p.s.Current()
			if c == token.EOT {
				break
			}
			if c == '*' && p.s.Peek(1) == '/' {
				p.s.Read()
				p.s.Read()
				break
			}
			p.s.Read()
		}
	} else {
		for {
			c := p.s.Current()
			if c == token.EOT || c == '\n' {
				break
			}
			p.s.Read()
		}
	}
	return token.StripComment(p.s.EndCapture())
}

func joinComment(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "\n" + b
}

func appendComment(dst *string, text string) {
	if text == "" {
		return
	}
	if *dst == "" {
		*dst = text
		return
	}
	*dst += "\n" + text
}
