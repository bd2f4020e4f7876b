package parse

import (
	"strings"
	"testing"

	"github.com/rjson-format/go-rjson/dsf"
	"github.com/rjson-format/go-rjson/ir"
)

func mustParse(t *testing.T, in string, opts ...ParseOption) *ir.Node {
	t.Helper()
	n, err := ParseString(in, opts...)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return n
}

func TestParseScalars(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{`true`, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`22`, ir.FromInt(22)},
		{`-3.25`, &ir.Node{Type: ir.NumberType, Number: -3.25}},
		{`1e14`, &ir.Node{Type: ir.NumberType, Number: 1e14}},
		{`"hello"`, ir.FromString("hello")},
		{`'hello'`, ir.FromString("hello")},
		{`hello`, ir.FromString("hello")},
		{`hello world`, ir.FromString("hello world")},
		// not a valid number, so a string
		{`01`, ir.FromString("01")},
		{`1.`, ir.FromString("1.")},
		{`.5`, ir.FromString(".5")},
		{`1e`, ir.FromString("1e")},
		{`1 2 3`, ir.FromString("1 2 3")},
		{`1e999`, ir.FromString("1e999")},
		{`truely yours`, ir.FromString("truely yours")},
		{`"aéb"`, ir.FromString("aéb")},
		{`"tab\there"`, ir.FromString("tab\there")},
		{`'it\'s'`, ir.FromString("it's")},
		// surrogate pairs combine into one code point
		{`"😀"`, ir.FromString("\U0001f600")},
		{`'😀!'`, ir.FromString("\U0001f600!")},
		{`"\ud800"`, ir.FromString("�")},
	} {
		got := mustParse(t, tc.in)
		if !ir.Equal(got, tc.want) {
			t.Errorf("%q: got %v %v", tc.in, got.Type, got)
		}
	}
}

func TestParseContainers(t *testing.T) {
	n := mustParse(t, `{a: 1, b: [2, 3], c: {d: true}}`)
	if v, _ := n.Get("a").AsInt(); v != 1 {
		t.Errorf("a: %d", v)
	}
	arr := n.Get("b")
	if arr.Len() != 2 {
		t.Fatalf("b len: %d", arr.Len())
	}
	el, _ := arr.At(1)
	if v, _ := el.AsInt(); v != 3 {
		t.Errorf("b[1]: %d", v)
	}
	if v, _ := n.Get("c").Get("d").AsBool(); !v {
		t.Errorf("c.d: %v", v)
	}
	if !n.Condensed {
		t.Errorf("single line object must be condensed")
	}
}

func TestParseQuotelessEatsLine(t *testing.T) {
	n := mustParse(t, "{a: hello, world\n}")
	if got, _ := n.Get("a").AsString(); got != "hello, world" {
		t.Errorf("got %q", got)
	}
	n = mustParse(t, "{a: 3,}")
	if got, _ := n.Get("a").AsInt(); got != 3 {
		t.Errorf("got %d", got)
	}
}

func TestParseOptionalCommas(t *testing.T) {
	a := mustParse(t, "[\n1\n2\n3\n]")
	b := mustParse(t, "[1, 2, 3]")
	if !ir.Equal(a, b) {
		t.Errorf("comma and newline separation must agree")
	}
}

func TestParseBraceLessRoot(t *testing.T) {
	n := mustParse(t, "a: 1\nb: two\n")
	if n.Type != ir.ObjectType || n.Len() != 2 {
		t.Fatalf("got %v len %d", n.Type, n.Len())
	}
	if got, _ := n.Get("b").AsString(); got != "two" {
		t.Errorf("b: %q", got)
	}

	// not an object, falls back to a single value
	n = mustParse(t, `"hello"`)
	if got, _ := n.AsString(); got != "hello" {
		t.Errorf("got %q", got)
	}

	// disabled: the line reads as one quoteless string
	n = mustParse(t, "a: 1", BraceLessRoot(false))
	if got, _ := n.AsString(); got != "a: 1" {
		t.Errorf("got %q %v", got, n.Type)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"[1, 2",
		"{a: 1",
		`{: 1}`,
		"{a b: 1}",
		`"unterminated`,
		`"bad \x escape"`,
		`"x" junk`,
		"[1] junk",
		"{'a', 'b'}",
		"[\n[\n=\n[[''''''",
	} {
		if _, err := ParseString(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := ParseString("{\n  a b: 1\n}")
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error, got %T", err)
	}
	if pe.Pos.Line != 2 {
		t.Errorf("line: %d", pe.Pos.Line)
	}
}

func TestParseDeepNesting(t *testing.T) {
	depth := 9999
	n, err := ParseString(strings.Repeat("[", depth) + "1" + strings.Repeat("]", depth))
	if err != nil {
		t.Fatalf("balanced nesting: %v", err)
	}
	for i := 0; i < depth; i++ {
		n, err = n.At(0)
		if err != nil {
			t.Fatalf("depth %d: %v", i, err)
		}
	}
	if got, _ := n.AsInt(); got != 1 {
		t.Errorf("innermost: %d", got)
	}

	if _, err := ParseString(strings.Repeat("[", depth)); err == nil {
		t.Errorf("unterminated nesting should fail")
	}
}

func TestParseMultiline(t *testing.T) {
	in := "{\n  ml:\n    '''\n    line1\n      line2\n    '''\n}"
	n := mustParse(t, in)
	if got, _ := n.Get("ml").AsString(); got != "line1\n  line2" {
		t.Errorf("got %q", got)
	}

	// content on the opening line is skipped to the first newline
	n = mustParse(t, "{a: ''' \n  x\n  '''}")
	if got, _ := n.Get("a").AsString(); got != "x" {
		t.Errorf("got %q", got)
	}

	// quotes inside
	n = mustParse(t, "{a: '''\n  it's ''fine''\n  '''}")
	if got, _ := n.Get("a").AsString(); got != "it's ''fine''" {
		t.Errorf("got %q", got)
	}
}

func TestParseComments(t *testing.T) {
	in := `# header
{
  # lead a
  a: 1  # trail a
  b: 2
}
# footer
`
	n := mustParse(t, in)
	if n.Comments.Leading != "header" {
		t.Errorf("header: %q", n.Comments.Leading)
	}
	if n.Comments.Trailing != "footer" {
		t.Errorf("footer: %q", n.Comments.Trailing)
	}
	a := n.Get("a")
	if a.Comments.Leading != "lead a" {
		t.Errorf("a leading: %q", a.Comments.Leading)
	}
	if a.Comments.Trailing != "trail a" {
		t.Errorf("a trailing: %q", a.Comments.Trailing)
	}
	if !n.Get("b").Comments.Empty() {
		t.Errorf("b: %+v", n.Get("b").Comments)
	}
}

func TestParseCommentStyles(t *testing.T) {
	n := mustParse(t, "{\n// lead\na: 1\n/* block\ntext */\nb: 2\n}")
	if got := n.Get("a").Comments.Leading; got != "lead" {
		t.Errorf("a: %q", got)
	}
	if got := n.Get("b").Comments.Leading; got != "block\ntext" {
		t.Errorf("b: %q", got)
	}
}

func TestParseInteriorComment(t *testing.T) {
	n := mustParse(t, "{\n  # nothing here yet\n}")
	if n.Len() != 0 || n.Comments.Interior != "nothing here yet" {
		t.Errorf("got len %d interior %q", n.Len(), n.Comments.Interior)
	}
}

func TestParseCommentsDisabled(t *testing.T) {
	n := mustParse(t, "# header\n{a: 1 # trail\n}", Comments(false))
	if !n.Comments.Empty() || !n.Get("a").Comments.Empty() {
		t.Errorf("comments kept: %+v %+v", n.Comments, n.Get("a").Comments)
	}
}

func TestParseProviders(t *testing.T) {
	n := mustParse(t, "{x: NaN\ny: 0x1f}", Providers(dsf.Math(), dsf.Hex(true)))
	x := n.Get("x")
	if x.Type != ir.ExtensionType || x.Provider.Name() != "math" {
		t.Fatalf("x: %v", x.Type)
	}
	y := n.Get("y")
	if y.Type != ir.ExtensionType || y.Ext.(int64) != 0x1f {
		t.Fatalf("y: %v %v", y.Type, y.Ext)
	}

	// without providers these are plain strings
	n = mustParse(t, "{x: NaN}")
	if n.Get("x").Type != ir.StringType {
		t.Errorf("x: %v", n.Get("x").Type)
	}
}

func TestParseLayoutHints(t *testing.T) {
	n := mustParse(t, "[1, 2,\n3, 4]")
	if n.Condensed {
		t.Errorf("two lines is not condensed")
	}
	if n.LineLength != 2 {
		t.Errorf("line length: %d", n.LineLength)
	}
	n = mustParse(t, "[1, 2, 3]")
	if !n.Condensed {
		t.Errorf("single line array must be condensed")
	}
}

func TestParseWhitespaceInvariance(t *testing.T) {
	a := mustParse(t, "{a: 1, b: [true, null]}")
	for _, in := range []string{
		"{\r\n  a: 1\r\n  b: [true, null]\r\n}",
		"\t{ a: 1 , b: [ true , null ] }\t",
		"{\n\n\na: 1\n\n b: [true,\n null]\n}",
	} {
		b := mustParse(t, in)
		if !ir.Equal(a, b) {
			t.Errorf("%q: trees differ", in)
		}
	}
}

func TestParseReaderIO(t *testing.T) {
	n, err := ParseReader(strings.NewReader("{a: 1}"))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := n.Get("a").AsInt(); got != 1 {
		t.Errorf("a: %d", got)
	}
}
