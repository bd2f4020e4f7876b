package parse

import (
	"fmt"
	"io"

	"github.com/rjson-format/go-rjson/ir"
	"github.com/rjson-format/go-rjson/token"
)

// ParseJSON reads a strict JSON document into a value tree. Comments,
// quoteless scalars, optional commas and brace-less roots are all
// rejected.
func ParseJSON(d []byte) (*ir.Node, error) {
	p := &jsonParser{s: token.NewSource(d)}
	p.white()
	res, err := p.readValue()
	if err != nil {
		return nil, err
	}
	p.white()
	if p.s.Current() != token.EOT {
		return nil, p.errf("Extra characters in input")
	}
	return res, nil
}

// ParseJSONString is ParseJSON for string input.
func ParseJSONString(s string) (*ir.Node, error) {
	return ParseJSON([]byte(s))
}

// ParseJSONReader drains r and parses the result.
func ParseJSONReader(r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return ParseJSON(d)
}

type jsonParser struct {
	s *token.Source
}

func (p *jsonParser) errf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Pos: p.s.Pos()}
}

func (p *jsonParser) expected(what string) error {
	if p.s.Current() == token.EOT {
		return p.errf("Unexpected end of input")
	}
	return p.errf("Expected %s", what)
}

func (p *jsonParser) white() {
	for token.IsWhiteSpace(p.s.Current()) {
		p.s.Read()
	}
}

func (p *jsonParser) readChar(c int) bool {
	if p.s.Current() != c {
		return false
	}
	p.s.Read()
	return true
}

func (p *jsonParser) readValue() (*ir.Node, error) {
	switch p.s.Current() {
	case '{':
		return p.readObject()
	case '[':
		return p.readArray()
	case '"':
		s, err := p.readString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case 't':
		return p.readKeyword("true", ir.FromBool(true))
	case 'f':
		return p.readKeyword("false", ir.FromBool(false))
	case 'n':
		return p.readKeyword("null", ir.Null())
	default:
		return p.readNumber()
	}
}

func (p *jsonParser) readObject() (*ir.Node, error) {
	p.s.Read()
	obj := ir.NewObject()
	p.white()
	if p.readChar('}') {
		return obj, nil
	}
	for {
		p.white()
		if p.s.Current() != '"' {
			return nil, p.expected("name")
		}
		name, err := p.readString()
		if err != nil {
			return nil, err
		}
		p.white()
		if !p.readChar(':') {
			return nil, p.expected("':'")
		}
		p.white()
		val, err := p.readValue()
		if err != nil {
			return nil, err
		}
		obj.Add(name, val)
		p.white()
		if p.readChar(',') {
			continue
		}
		if p.readChar('}') {
			return obj, nil
		}
		return nil, p.expected("',' or '}'")
	}
}

func (p *jsonParser) readArray() (*ir.Node, error) {
	p.s.Read()
	arr := ir.NewArray()
	p.white()
	if p.readChar(']') {
		return arr, nil
	}
	for {
		p.white()
		val, err := p.readValue()
		if err != nil {
			return nil, err
		}
		arr.Append(val)
		p.white()
		if p.readChar(',') {
			continue
		}
		if p.readChar(']') {
			return arr, nil
		}
		return nil, p.expected("',' or ']'")
	}
}

func (p *jsonParser) readKeyword(kw string, val *ir.Node) (*ir.Node, error) {
	for i := 0; i < len(kw); i++ {
		if p.s.Current() != int(kw[i]) {
			return nil, p.expected("a value")
		}
		p.s.Read()
	}
	return val, nil
}

func (p *jsonParser) readString() (string, error) {
	p.s.Read()
	p.s.StartCapture()
	for p.s.Current() != '"' {
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

func (p *jsonParser) readEscape() error {
	p.s.Read()
	switch c := p.s.Current(); c {
	case '"', '/', '\\':
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

func (p *jsonParser) readNumber() (*ir.Node, error) {
	if c := p.s.Current(); c != '-' && (c < '0' || c > '9') {
		return nil, p.expected("a value")
	}
	p.s.StartCapture()
	for {
		c := p.s.Current()
		if c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' ||
			(c >= '0' && c <= '9') {
			p.s.Read()
			continue
		}
		break
	}
	text := p.s.EndCapture()
	f, ok := token.TryParseNumber(text, false)
	if !ok {
		return nil, p.errf("Invalid number %q", text)
	}
	n, err := ir.FromFloat(f)
	if err != nil {
		return nil, p.errf("Invalid number %q", text)
	}
	return n, nil
}
