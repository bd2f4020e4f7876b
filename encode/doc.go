// Package encode renders value trees as relaxed format or JSON text.
//
// # Usage
//
//	// Encode to relaxed format
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to pretty-printed JSON
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
//	// Encode to a string
//	s, err := encode.EncodeToString(node)
//
// # Related Packages
//
//   - github.com/rjson-format/go-rjson/ir - value tree representation
//   - github.com/rjson-format/go-rjson/parse - parse text to value trees
package encode
