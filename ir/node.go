// Package ir defines the cosy value tree.
//
// A Node pairs a value of one of the seven cosy kinds with the comments
// that preceded it in source. Objects keep their keys in insertion order
// as parallel Fields/Values slices.
package ir

import "slices"

type Node struct {
	Type     Type
	Comments []string

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	// Fields and Values hold object entries in insertion order.
	// For arrays only Values is used.
	Fields []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(elts []*Node) *Node {
	return &Node{Type: ArrayType, Values: elts}
}

func (y *Node) WithComments(comments []string) *Node {
	y.Comments = comments
	return y
}

// index returns the position of field in y, or -1.
func (y *Node) index(field string) int {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return i
		}
	}
	return -1
}

// Get returns the value of field, or nil if y is not an object or
// has no such field.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	if i := y.index(field); i != -1 {
		return y.Values[i]
	}
	return nil
}

// Set overwrites the value of field if present, keeping the key's
// position in insertion order, and appends a new entry otherwise.
func (y *Node) Set(field string, v *Node) {
	if i := y.index(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Delete removes field and returns its value, preserving the order of
// the remaining entries. It returns nil if the field is absent.
func (y *Node) Delete(field string) *Node {
	i := y.index(field)
	if i == -1 {
		return nil
	}
	v := y.Values[i]
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return v
}

func (y *Node) Has(field string) bool {
	return y.Type == ObjectType && y.index(field) != -1
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Float64: y.Float64,
		String:  y.String,
	}
	if y.Comments != nil {
		res.Comments = slices.Clone(y.Comments)
	}
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
