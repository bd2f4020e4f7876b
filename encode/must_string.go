package encode

import (
	"bytes"

	"github.com/rjson-format/go-rjson/ir"
)

// EncodeToString renders node to a string.
func EncodeToString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is EncodeToString for callers that know the tree is
// encodable, typically in tests.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := EncodeToString(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
