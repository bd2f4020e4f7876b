package encode

import (
	"github.com/rjson-format/go-rjson/format"
	"github.com/rjson-format/go-rjson/ir"
	"github.com/rjson-format/go-rjson/token"
)

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the indentation unit for relaxed and pretty JSON
// output. The default is two spaces.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// CommentIndent sets extra indentation placed before leading comment
// lines. The default is none.
func CommentIndent(s string) EncodeOption {
	return func(es *EncState) { es.commentIndent = s }
}

// EncodeComments controls comment emission for relaxed output. It is
// on by default; JSON output never carries comments.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

// BracesSameLine opens container brackets on the introducing line
// instead of a fresh one.
func BracesSameLine(v bool) EncodeOption {
	return func(es *EncState) { es.bracesSameLine = v }
}

// AllowCondense controls whether containers read from a single source
// line may be packed back onto one line. On by default.
func AllowCondense(v bool) EncodeOption {
	return func(es *EncState) { es.allowCondense = v }
}

// AllowMultiVal controls whether several values may ever share an
// output line. On by default; turning it off also disables condensing.
func AllowMultiVal(v bool) EncodeOption {
	return func(es *EncState) { es.allowMultiVal = v }
}

// OmitRootBraces drops the braces around a root object in relaxed
// output.
func OmitRootBraces(v bool) EncodeOption {
	return func(es *EncState) { es.omitRootBraces = v }
}

// Eol overrides the process-wide line ending for this write. Only
// "\n" and "\r\n" are accepted; Encode fails on anything else.
func Eol(eol string) EncodeOption {
	return func(es *EncState) { es.eol = eol }
}

// Style selects the comment marker style used when re-emitting
// comment text. The default is hash style.
func Style(s token.CommentStyle) EncodeOption {
	return func(es *EncState) { es.style = s }
}

// Providers sets the extension value providers used to format
// extension scalars written by other provider instances of the same
// name, and to detect strings that must be quoted to avoid being read
// back as extension values.
func Providers(ps ...ir.ExtProvider) EncodeOption {
	return func(es *EncState) { es.providers = ps }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
