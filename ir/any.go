package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// ToAny converts the tree to plain Go values: map[string]any for
// objects (order lost, duplicates collapse last-write-wins), []any for
// arrays, float64 for numbers, and the raw payload for extension
// values. Comments and layout hints do not survive the conversion.
func (n *Node) ToAny() any {
	switch n.Type {
	case NullType:
		return nil
	case BoolType:
		return n.Bool
	case NumberType:
		return n.Number
	case StringType:
		return n.String
	case ExtensionType:
		return n.Ext
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.Names))
		for i, name := range n.Names {
			res[name] = n.Values[i].ToAny()
		}
		return res
	default:
		panic("type")
	}
}

// FromAny builds a tree from plain Go values. Map keys are emitted in
// sorted order; non-finite floats are rejected.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return t, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case float64:
		return FromFloat(t)
	case float32:
		return FromFloat(float64(t))
	case int:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f)
	case []any:
		res := NewArray()
		for _, el := range t {
			cv, err := FromAny(el)
			if err != nil {
				return nil, err
			}
			res.Append(cv)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			cv, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			res.Add(key, cv)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot build a value from %T", v)
	}
}
