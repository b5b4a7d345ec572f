package gomap

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/yesagainivan/cosy/ir"
)

var ErrUnsupported = errors.New("unsupported go value")

// ToAny lowers a value tree to plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Comments are dropped.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return node.Bool
	case ir.IntegerType:
		return node.Int64
	case ir.FloatType:
		return node.Float64
	case ir.StringType:
		return node.String
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, v := range node.Values {
			res = append(res, ToAny(v))
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, key := range node.Fields {
			res[key] = ToAny(node.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

// FromAny lifts plain Go values into a value tree. Map keys come out
// sorted so the result is deterministic. A json.Number becomes an
// integer when it parses as one, a float otherwise.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d overflows", ErrUnsupported, x)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q", ErrUnsupported, x)
		}
		return ir.FromFloat(f), nil
	case []any:
		vals := make([]*ir.Node, 0, len(x))
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals = append(vals, n)
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		obj := ir.NewObject()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			obj.Set(key, n)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}
