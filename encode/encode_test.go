package encode

import (
	"math"
	"testing"

	"github.com/rjson-format/go-rjson/dsf"
	"github.com/rjson-format/go-rjson/format"
	"github.com/rjson-format/go-rjson/ir"
)

func sample() *ir.Node {
	obj := ir.NewObject()
	obj.Add("a", ir.FromInt(1))
	arr := ir.NewArray()
	arr.Append(ir.FromBool(true))
	arr.Append(ir.Null())
	obj.Add("b", arr)
	return obj
}

func TestEncodeRelaxed(t *testing.T) {
	got := MustString(sample(), Eol("\n"))
	want := "{\n  a: 1\n  b:\n  [\n    true\n    null\n  ]\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeBracesSameLine(t *testing.T) {
	got := MustString(sample(), Eol("\n"), BracesSameLine(true))
	want := "{\n  a: 1\n  b: [\n    true\n    null\n  ]\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	got := MustString(sample(), Eol("\n"), EncodeFormat(format.JSONFormat))
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeCompact(t *testing.T) {
	got := MustString(sample(), EncodeFormat(format.CompactFormat))
	want := `{"a":1,"b":[true,null]}`
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeCondensed(t *testing.T) {
	obj := ir.NewObject()
	obj.Condensed = true
	obj.Add("a", ir.FromInt(1))
	obj.Add("b", ir.FromString("x"))
	got := MustString(obj, Eol("\n"))
	want := `{"a": 1, "b": "x"}`
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}

	// condensing can be vetoed
	got = MustString(obj, Eol("\n"), AllowCondense(false))
	want = "{\n  a: 1\n  b: x\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeLineLength(t *testing.T) {
	arr := ir.NewArray()
	for i := int64(1); i <= 4; i++ {
		arr.Append(ir.FromInt(i))
	}
	arr.LineLength = 2
	got := MustString(arr, Eol("\n"))
	want := "[\n  1, 2\n  3, 4\n]"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}

	got = MustString(arr, Eol("\n"), AllowMultiVal(false))
	want = "[\n  1\n  2\n  3\n  4\n]"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeStrings(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"hello world", "hello world"},
		{"", `""`},
		{"5", `"5"`},
		{"3.14 etc", "3.14 etc"},
		{"true", `"true"`},
		{"true or false", "true or false"},
		{" padded", `" padded"`},
		{"#tag", `"#tag"`},
		{"a\tb", `"a\tb"`},
		{`say "hi"`, `say "hi"`},
		{`"hi" there`, `'''"hi" there'''`},
		// a leading delimiter would be read as structure
		{"]x", `"]x"`},
		{"}x", `"}x"`},
		{",x", `",x"`},
		{":x", `":x"`},
		{"[x", `"[x"`},
		{"{x", `"{x"`},
		// bare carriage returns never take the multiline form
		{"a\rb", `"a\rb"`},
		{"a\r\nb", `"a\r\nb"`},
	} {
		got := MustString(ir.FromString(tc.in), Eol("\n"))
		if got != tc.want {
			t.Errorf("%q: got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestEncodeMultilineString(t *testing.T) {
	obj := ir.NewObject()
	obj.Add("ml", ir.FromString("line1\nline2"))
	got := MustString(obj, Eol("\n"))
	want := "{\n  ml:\n    '''\n    line1\n    line2\n    '''\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// a triple quote inside falls back to escapes
	got = MustString(ir.FromString("a'''b\nc"), Eol("\n"))
	if got != `"a'''b\nc"` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeComments(t *testing.T) {
	obj := ir.NewObject()
	obj.Comments.Leading = "header"
	obj.Comments.Trailing = "footer"
	a := ir.FromInt(1)
	a.Comments.Leading = "lead"
	a.Comments.Trailing = "trail"
	obj.Add("a", a)
	got := MustString(obj, Eol("\n"))
	want := "# header\n\n{\n  # lead\n  a: 1 # trail\n}\n# footer"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	got = MustString(obj, Eol("\n"), EncodeComments(false))
	want = "{\n  a: 1\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// JSON drops comments regardless
	got = MustString(obj, Eol("\n"), EncodeFormat(format.CompactFormat))
	if got != `{"a":1}` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeTrailingCommentQuotesString(t *testing.T) {
	obj := ir.NewObject()
	v := ir.FromString("foo")
	v.Comments.Trailing = "trail"
	obj.Add("a", v)
	got := MustString(obj, Eol("\n"))
	want := "{\n  a: \"foo\" # trail\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// quoteless again once the comment is not written
	got = MustString(obj, Eol("\n"), EncodeComments(false))
	want = "{\n  a: foo\n}"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeInteriorComment(t *testing.T) {
	obj := ir.NewObject()
	obj.Comments.Interior = "nothing here yet"
	got := MustString(obj, Eol("\n"))
	want := "{\n  # nothing here yet\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeOmitRootBraces(t *testing.T) {
	obj := ir.NewObject()
	obj.Add("a", ir.FromInt(1))
	obj.Add("b", ir.FromInt(2))
	got := MustString(obj, Eol("\n"), OmitRootBraces(true))
	want := "a: 1\nb: 2"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeEol(t *testing.T) {
	obj := ir.NewObject()
	obj.Add("a", ir.FromInt(1))
	got := MustString(obj, Eol("\r\n"))
	want := "{\r\n  a: 1\r\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if err := Encode(obj, nil, Eol("\r")); err != ErrBadEol {
		t.Errorf("want ErrBadEol, got %v", err)
	}
	if err := SetDefaultEol("\r"); err != ErrBadEol {
		t.Errorf("want ErrBadEol, got %v", err)
	}
	if err := SetDefaultEol("\r\n"); err != nil {
		t.Fatal(err)
	}
	defer SetDefaultEol("\n")
	got = MustString(obj)
	if got != want {
		t.Errorf("default eol: got %q want %q", got, want)
	}
}

func TestEncodeExtension(t *testing.T) {
	math1 := dsf.Math()
	n := ir.FromExt(math1, math.Inf(1))
	if got := MustString(n, Eol("\n")); got != "Inf" {
		t.Errorf("got %q", got)
	}
	if got := MustString(n, EncodeFormat(format.CompactFormat)); got != `"Inf"` {
		t.Errorf("json: got %q", got)
	}

	// strings a provider would capture must be quoted
	s := ir.FromString("NaN")
	if got := MustString(s, Eol("\n"), Providers(math1)); got != `"NaN"` {
		t.Errorf("got %q", got)
	}
	if got := MustString(s, Eol("\n")); got != "NaN" {
		t.Errorf("got %q", got)
	}
}
