package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "null",
		BoolType:    "boolean",
		IntegerType: "integer",
		FloatType:   "float",
		StringType:  "string",
		ArrayType:   "array",
		ObjectType:  "object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"null":    NullType,
		"boolean": BoolType,
		"integer": IntegerType,
		"float":   FloatType,
		"string":  StringType,
		"array":   ArrayType,
		"object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
