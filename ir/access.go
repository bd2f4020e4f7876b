package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// AsString returns the string payload, marking the node accessed.
func (n *Node) AsString() (string, error) {
	if n.Type != StringType {
		return "", fmt.Errorf("%w: %s", ErrNotAString, n.Type)
	}
	n.Accessed = true
	return n.String, nil
}

// AsFloat returns the numeric payload, marking the node accessed.
func (n *Node) AsFloat() (float64, error) {
	if n.Type != NumberType {
		return 0, fmt.Errorf("%w: %s", ErrNotANumber, n.Type)
	}
	n.Accessed = true
	return n.Number, nil
}

// AsInt returns the number as an int. The serialized form of the
// number must have no fractional or exponent part and must fit the
// platform int width.
func (n *Node) AsInt() (int, error) {
	v, err := n.asInteger(strconv.IntSize)
	return int(v), err
}

// AsInt64 is AsInt for the full 64-bit width.
func (n *Node) AsInt64() (int64, error) {
	return n.asInteger(64)
}

func (n *Node) asInteger(bits int) (int64, error) {
	if n.Type != NumberType {
		return 0, fmt.Errorf("%w: %s", ErrNotANumber, n.Type)
	}
	n.Accessed = true
	s := FormatNumber(n.Number)
	if strings.ContainsAny(s, ".eE") {
		return 0, fmt.Errorf("%w: %s", ErrRange, s)
	}
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrRange, s)
	}
	return v, nil
}

// AsBool returns the boolean payload, marking the node accessed.
func (n *Node) AsBool() (bool, error) {
	if n.Type != BoolType {
		return false, fmt.Errorf("%w: %s", ErrNotABool, n.Type)
	}
	n.Accessed = true
	return n.Bool, nil
}

func (n *Node) IsNull() bool {
	n.Accessed = true
	return n.Type == NullType
}

// Object validates that n is an object and marks it accessed.
func (n *Node) Object() (*Node, error) {
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: %s", ErrNotAnObject, n.Type)
	}
	n.Accessed = true
	return n, nil
}

// Array validates that n is an array and marks it accessed.
func (n *Node) Array() (*Node, error) {
	if n.Type != ArrayType {
		return nil, fmt.Errorf("%w: %s", ErrNotAnArray, n.Type)
	}
	n.Accessed = true
	return n, nil
}

// UnusedPaths returns the paths of all values below root that were
// never read through an accessor, in document order. The root itself
// is not reported.
func UnusedPaths(root *Node) []string {
	var res []string
	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		switch n.Type {
		case ObjectType:
			for i, name := range n.Names {
				child := n.Values[i]
				cp := name
				if path != "" {
					cp = path + "." + name
				}
				if !child.Accessed {
					res = append(res, cp)
				}
				walk(child, cp)
			}
		case ArrayType:
			for i, child := range n.Values {
				cp := fmt.Sprintf("%s[%d]", path, i)
				if !child.Accessed {
					res = append(res, cp)
				}
				walk(child, cp)
			}
		}
	}
	walk(root, "")
	return res
}
