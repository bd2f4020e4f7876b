package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// Comments are the three optional comment slots of a value. The text
// never includes the comment marker punctuation; markers are added and
// stripped at format time.
type Comments struct {
	// Leading is text appearing before the value on its own lines. At
	// the document root it doubles as the file header.
	Leading string
	// Trailing is text on the same line after the value. At the
	// document root it doubles as the file footer.
	Trailing string
	// Interior is text inside an otherwise empty container.
	Interior string
}

func (c Comments) Empty() bool {
	return c.Leading == "" && c.Trailing == "" && c.Interior == ""
}

type Node struct {
	Type Type

	String string
	Number float64
	Bool   bool

	// Ext and Provider are set on ExtensionType nodes only.
	Ext      any
	Provider ExtProvider

	// Names and Values hold object members as parallel slices; arrays
	// use Values alone. Member order is insertion order and duplicate
	// names are preserved.
	Names  []string
	Values []*Node

	Comments Comments

	// Condensed marks a container whose entire content was read from
	// (or should be written to) a single line. LineLength is the
	// number of values to emit per line; it is always >= 1.
	Condensed  bool
	LineLength int

	// Accessed is set whenever a caller reads this value through an
	// accessor; see UnusedPaths.
	Accessed bool

	nameIdx map[string]int
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Number: float64(v)}
}

// FromFloat rejects NaN and infinities; every NumberType node holds a
// finite value.
func FromFloat(v float64) (*Node, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNotFinite
	}
	return &Node{Type: NumberType, Number: v}, nil
}

func FromExt(p ExtProvider, v any) *Node {
	return &Node{Type: ExtensionType, Provider: p, Ext: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType, LineLength: 1}
}

func NewArray() *Node {
	return &Node{Type: ArrayType, LineLength: 1}
}

// FormatNumber is the canonical double-to-string conversion used by
// the writer and by the integer accessors. Integral values within the
// exact double range render without fraction or exponent.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Len returns the number of children of a container, 0 otherwise.
func (n *Node) Len() int { return len(n.Values) }

// Get returns the value of the named member, or nil. With duplicate
// names the last member wins. The returned value is marked accessed.
func (n *Node) Get(name string) *Node {
	if n.Type != ObjectType {
		return nil
	}
	i, ok := n.index()[name]
	if !ok {
		return nil
	}
	v := n.Values[i]
	v.Accessed = true
	return v
}

// Has reports whether the object has a member with the given name,
// without marking anything accessed.
func (n *Node) Has(name string) bool {
	if n.Type != ObjectType {
		return false
	}
	_, ok := n.index()[name]
	return ok
}

// At returns the i'th child of a container and marks it accessed.
func (n *Node) At(i int) (*Node, error) {
	if n.Type != ArrayType && n.Type != ObjectType {
		return nil, ErrNotAnArray
	}
	if i < 0 || i >= len(n.Values) {
		return nil, ErrIndex
	}
	v := n.Values[i]
	v.Accessed = true
	return v, nil
}

// Add appends a member, preserving any existing member with the same
// name.
func (n *Node) Add(name string, v *Node) {
	n.Names = append(n.Names, name)
	n.Values = append(n.Values, v)
	n.nameIdx = nil
}

// Set replaces the last member with the given name, or appends one.
func (n *Node) Set(name string, v *Node) {
	if i, ok := n.index()[name]; ok {
		n.Values[i] = v
		return
	}
	n.Add(name, v)
}

// Remove deletes the last member with the given name and reports
// whether one was found.
func (n *Node) Remove(name string) bool {
	i, ok := n.index()[name]
	if !ok {
		return false
	}
	n.Names = slices.Delete(n.Names, i, i+1)
	n.Values = slices.Delete(n.Values, i, i+1)
	n.nameIdx = nil
	return true
}

// Append adds an element to an array.
func (n *Node) Append(v *Node) {
	n.Values = append(n.Values, v)
}

func (n *Node) SetAt(i int, v *Node) error {
	if i < 0 || i >= len(n.Values) {
		return ErrIndex
	}
	n.Values[i] = v
	return nil
}

func (n *Node) RemoveAt(i int) error {
	if i < 0 || i >= len(n.Values) {
		return ErrIndex
	}
	n.Values = slices.Delete(n.Values, i, i+1)
	if n.Type == ObjectType {
		n.Names = slices.Delete(n.Names, i, i+1)
		n.nameIdx = nil
	}
	return nil
}

// index returns the name accelerator, rebuilding it after structural
// mutation. Later members shadow earlier ones.
func (n *Node) index() map[string]int {
	if n.nameIdx == nil {
		n.nameIdx = make(map[string]int, len(n.Names))
		for i, name := range n.Names {
			n.nameIdx[name] = i
		}
	}
	return n.nameIdx
}

func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Add(key, m[key])
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := NewArray()
	res.Values = append(res.Values, vs...)
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{
		Type:       n.Type,
		String:     n.String,
		Number:     n.Number,
		Bool:       n.Bool,
		Ext:        n.Ext,
		Provider:   n.Provider,
		Comments:   n.Comments,
		Condensed:  n.Condensed,
		LineLength: n.LineLength,
		Accessed:   n.Accessed,
	}
	if n.Names != nil {
		res.Names = slices.Clone(n.Names)
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree in depth-first order, calling f before and
// after each node's children. Returning false from the pre-order call
// skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}
