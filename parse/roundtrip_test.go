package parse

import (
	"testing"

	"github.com/rjson-format/go-rjson/encode"
	"github.com/rjson-format/go-rjson/format"
	"github.com/rjson-format/go-rjson/ir"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func textDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(a, b, false))
}

// Reformatting is stable: once a document has been parsed and
// written, parsing and writing it again changes nothing.
func TestRoundTripIdempotent(t *testing.T) {
	for _, in := range []string{
		"{\n  a: 1\n  b: hello world\n}",
		"{a: 1, b: 2}",
		"[\n  1, 2\n  3, 4\n]",
		"# header\n\n{\n  # lead\n  a: 1 # trail\n  b: 2\n}\n# footer",
		"{\n  ml:\n    '''\n    line1\n    line2\n    '''\n}",
		"{\n  nested:\n  {\n    x: true\n    y: null\n  }\n  arr:\n  [\n    a b c\n    \"5\"\n  ]\n}",
		"{\n  # only a comment\n}",
		"[]",
		"null",
		"some text",
	} {
		n1, err := ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		out1 := encode.MustString(n1, encode.Eol("\n"))
		n2, err := ParseString(out1)
		if err != nil {
			t.Fatalf("reparse %q: %v", out1, err)
		}
		out2 := encode.MustString(n2, encode.Eol("\n"))
		if out1 != out2 {
			t.Errorf("%q: unstable output\n%s", in, textDiff(out1, out2))
		}
		if !ir.EqualWithComments(n1, n2) {
			t.Errorf("%q: trees differ after rewrite", in)
		}
	}
}

// The canonical relaxed form of these documents is the document
// itself.
func TestRoundTripExact(t *testing.T) {
	for _, in := range []string{
		"{\n  a: 1\n  b: hello world\n}",
		"# header\n\n{\n  # lead\n  a: 1 # trail\n  b: 2\n}\n# footer",
		"{\n  ml:\n    '''\n    line1\n    line2\n    '''\n}",
		"{\n  # only a comment\n}",
	} {
		n, err := ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		out := encode.MustString(n, encode.Eol("\n"))
		if out != in {
			t.Errorf("not canonical:\n%s", textDiff(in, out))
		}
	}
}

func TestRoundTripJSON(t *testing.T) {
	in := `{"a": [1, 2.5, -3e2], "b": {"c": "x y", "d": [true, false, null]}}`
	n1, err := ParseJSONString(in)
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(n1, encode.EncodeFormat(format.CompactFormat))
	n2, err := ParseJSONString(out)
	if err != nil {
		t.Fatalf("reparse %q: %v", out, err)
	}
	if !ir.Equal(n1, n2) {
		t.Errorf("JSON round trip changed the tree:\n%s", textDiff(in, out))
	}

	// pretty JSON parses to the same tree too
	pretty := encode.MustString(n1, encode.Eol("\n"), encode.EncodeFormat(format.JSONFormat))
	n3, err := ParseJSONString(pretty)
	if err != nil {
		t.Fatalf("reparse pretty: %v", err)
	}
	if !ir.Equal(n1, n3) {
		t.Errorf("pretty JSON round trip changed the tree")
	}
}

// Astral code points written as surrogate pairs survive a parse,
// encode, reparse cycle in both formats.
func TestRoundTripSurrogatePairs(t *testing.T) {
	n1, err := ParseJSONString(`["😀", "a😀b"]`)
	if err != nil {
		t.Fatal(err)
	}
	el, _ := n1.At(0)
	if got, _ := el.AsString(); got != "\U0001f600" {
		t.Fatalf("decoded to %q", got)
	}
	out := encode.MustString(n1, encode.EncodeFormat(format.CompactFormat))
	n2, err := ParseJSONString(out)
	if err != nil {
		t.Fatalf("reparse %q: %v", out, err)
	}
	if !ir.Equal(n1, n2) {
		t.Errorf("JSON round trip changed the tree")
	}
	relaxed := encode.MustString(n1, encode.Eol("\n"))
	n3, err := ParseString(relaxed)
	if err != nil {
		t.Fatalf("reparse %q: %v", relaxed, err)
	}
	if !ir.Equal(n1, n3) {
		t.Errorf("relaxed round trip changed the tree")
	}
}

// Strings opening with structural punctuation must come back quoted,
// or the reader sees a delimiter instead of a value.
func TestRoundTripLeadingPunctuation(t *testing.T) {
	arr := ir.NewArray()
	for _, v := range []string{"]x", "}x", ",x", ":x", "{x", "[x"} {
		arr.Append(ir.FromString(v))
	}
	out := encode.MustString(arr, encode.Eol("\n"))
	n, err := ParseString(out)
	if err != nil {
		t.Fatalf("reparse %q: %v", out, err)
	}
	if !ir.Equal(arr, n) {
		t.Errorf("round trip changed the tree:\n%s", out)
	}
}

// A string value with a same-line trailing comment is quoted so the
// comment is not swallowed into the value on reparse.
func TestRoundTripTrailingCommentOnString(t *testing.T) {
	in := "{\n  a: \"foo\" # trail\n  b: 2 # keep\n}"
	n1, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	out := encode.MustString(n1, encode.Eol("\n"))
	n2, err := ParseString(out)
	if err != nil {
		t.Fatalf("reparse %q: %v", out, err)
	}
	if !ir.EqualWithComments(n1, n2) {
		t.Errorf("round trip lost a comment:\n%s", textDiff(in, out))
	}
	if got, _ := n2.Get("a").AsString(); got != "foo" {
		t.Errorf("a: %q", got)
	}
	if got := n2.Get("a").Comments.Trailing; got != "trail" {
		t.Errorf("a trailing: %q", got)
	}
}

// Relaxed output of a JSON document parses back to the same tree.
func TestRoundTripCrossFormat(t *testing.T) {
	in := `{"a": [1, 2], "b": "5", "c": "true", "d": "plain"}`
	n1, err := ParseJSONString(in)
	if err != nil {
		t.Fatal(err)
	}
	relaxed := encode.MustString(n1, encode.Eol("\n"))
	n2, err := ParseString(relaxed)
	if err != nil {
		t.Fatalf("reparse %q: %v", relaxed, err)
	}
	if !ir.Equal(n1, n2) {
		t.Errorf("cross format round trip changed the tree:\n%s", textDiff(in, relaxed))
	}
}
