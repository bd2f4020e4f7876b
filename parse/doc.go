// Package parse reads relaxed format and JSON text into value trees.
//
// # Usage
//
//	// Parse relaxed text
//	node, err := parse.Parse([]byte(`{name: alice, age: 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse strict JSON
//	node, err := parse.ParseJSON(data)
//
// # Related Packages
//
//   - github.com/rjson-format/go-rjson/ir - value tree representation
//   - github.com/rjson-format/go-rjson/encode - encode value trees to text
//   - github.com/rjson-format/go-rjson/token - scanning support
package parse
