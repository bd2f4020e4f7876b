package ir

// Equal reports structural equality of two trees: same types, scalar
// payloads, member names, and child order. Comments and layout hints
// are ignored.
func Equal(a, b *Node) bool {
	return equal(a, b, false)
}

// EqualWithComments is Equal with the three comment slots of every
// node included in the comparison.
func EqualWithComments(a, b *Node) bool {
	return equal(a, b, true)
}

func equal(a, b *Node, comments bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	if comments && a.Comments != b.Comments {
		return false
	}
	switch a.Type {
	case NullType:
	case BoolType:
		if a.Bool != b.Bool {
			return false
		}
	case NumberType:
		if a.Number != b.Number {
			return false
		}
	case StringType:
		if a.String != b.String {
			return false
		}
	case ExtensionType:
		// equality is delegated to the provider's text form
		if a.Provider == nil || b.Provider == nil {
			return a.Provider == b.Provider && a.Ext == b.Ext
		}
		if a.Provider.Name() != b.Provider.Name() {
			return false
		}
		af, aok := a.Provider.Format(a.Ext)
		bf, bok := b.Provider.Format(b.Ext)
		if aok != bok || af != bf {
			return false
		}
	case ObjectType:
		if len(a.Names) != len(b.Names) || len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Names {
			if a.Names[i] != b.Names[i] {
				return false
			}
			if !equal(a.Values[i], b.Values[i], comments) {
				return false
			}
		}
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !equal(a.Values[i], b.Values[i], comments) {
				return false
			}
		}
	}
	return true
}
