package parse

import (
	"github.com/rjson-format/go-rjson/ir"
)

type parseOpts struct {
	comments      bool
	braceLessRoot bool
	providers     []ir.ExtProvider
}

func defaultOpts() *parseOpts {
	return &parseOpts{comments: true, braceLessRoot: true}
}

type ParseOption func(*parseOpts)

// Comments controls whether comment text is kept on the resulting
// nodes. It is on by default; comments are always accepted in the
// input either way.
func Comments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// BraceLessRoot controls whether a document may be a root object
// without enclosing braces. It is on by default.
func BraceLessRoot(v bool) ParseOption {
	return func(o *parseOpts) { o.braceLessRoot = v }
}

// Providers sets the extension value providers consulted, in order,
// when classifying quoteless scalars.
func Providers(ps ...ir.ExtProvider) ParseOption {
	return func(o *parseOpts) { o.providers = ps }
}
