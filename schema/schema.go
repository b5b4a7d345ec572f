// Package schema validates a value tree against a schema that is
// itself a value tree.
//
// A schema node is one of:
//   - a type-name string: any, string, integer, float, boolean, bool,
//     null, number (number accepts integer or float)
//   - a structural object: each key's schema applies to the same key
//     in the instance
//   - a one-element array: the element schema applies to every
//     instance element
//   - a descriptor object with a "type" key (itself a schema node)
//     plus optional "deprecated" (string) and "optional" (bool)
package schema

import (
	"fmt"

	"github.com/yesagainivan/cosy/ir"
)

const suggestMaxDist = 2

// Validate checks instance against schema. Findings accumulate into
// the returned report; the error is non-nil only for a malformed
// schema (wrapping ErrSchema), which aborts validation.
func Validate(instance, schema *ir.Node) (Report, error) {
	var report Report
	if err := validate(instance, schema, "$", &report); err != nil {
		return nil, err
	}
	return report, nil
}

func validate(instance, schema *ir.Node, path string, report *Report) error {
	typeSchema, deprecated, _ := descriptor(schema)

	if deprecated != "" {
		*report = append(*report, Item{
			Level:   LevelWarning,
			Path:    path,
			Message: fmt.Sprintf("Deprecated usage: %s", deprecated),
		})
	}

	switch typeSchema.Type {
	case ir.StringType:
		return validateType(instance, typeSchema.String, path, report)
	case ir.ObjectType:
		return validateObject(instance, typeSchema, path, report)
	case ir.ArrayType:
		return validateArray(instance, typeSchema, path, report)
	default:
		return fmt.Errorf("%w: unsupported schema value of type %s at %s",
			ErrSchema, typeSchema.Type, path)
	}
}

// descriptor unwraps the extended schema form, returning the
// effective type schema with the deprecated/optional annotations.
// Plain schema nodes come back unchanged.
func descriptor(schema *ir.Node) (typeSchema *ir.Node, deprecated string, optional bool) {
	if schema.Type != ir.ObjectType {
		return schema, "", false
	}
	typ := schema.Get("type")
	if typ == nil {
		return schema, "", false
	}
	if dep := schema.Get("deprecated"); dep != nil && dep.Type == ir.StringType {
		deprecated = dep.String
	}
	if opt := schema.Get("optional"); opt != nil && opt.Type == ir.BoolType {
		optional = opt.Bool
	}
	return typ, deprecated, optional
}

func validateType(instance *ir.Node, typeName, path string, report *Report) error {
	var ok bool
	switch typeName {
	case "any":
		ok = true
	case "string":
		ok = instance.Type == ir.StringType
	case "integer":
		ok = instance.Type == ir.IntegerType
	case "float":
		ok = instance.Type == ir.FloatType
	case "boolean", "bool":
		ok = instance.Type == ir.BoolType
	case "null":
		ok = instance.Type == ir.NullType
	case "number":
		ok = instance.Type == ir.IntegerType || instance.Type == ir.FloatType
	default:
		return fmt.Errorf("%w: unknown type %q at %s", ErrSchema, typeName, path)
	}
	if !ok {
		*report = append(*report, Item{
			Level:   LevelError,
			Path:    path,
			Message: fmt.Sprintf("Type mismatch: expected %s, found %s", typeName, instance.Type),
		})
	}
	return nil
}

func validateObject(instance, schema *ir.Node, path string, report *Report) error {
	if instance.Type != ir.ObjectType {
		*report = append(*report, Item{
			Level:   LevelError,
			Path:    path,
			Message: fmt.Sprintf("Expected object, found %s", instance.Type),
		})
		return nil
	}

	for i, key := range schema.Fields {
		subSchema := schema.Values[i]
		val := instance.Get(key)
		if val == nil {
			if _, _, optional := descriptor(subSchema); optional {
				continue
			}
			*report = append(*report, Item{
				Level:   LevelError,
				Path:    path,
				Message: fmt.Sprintf("Missing required field '%s'", key),
			})
			continue
		}
		if err := validate(val, subSchema, path+"."+key, report); err != nil {
			return err
		}
	}

	for _, key := range instance.Fields {
		if schema.Has(key) {
			continue
		}
		msg := fmt.Sprintf("Unknown field '%s'", key)
		if best, ok := FindBestMatch(key, schema.Fields, suggestMaxDist); ok {
			msg += fmt.Sprintf("; did you mean '%s'?", best)
		}
		*report = append(*report, Item{
			Level:   LevelError,
			Path:    path,
			Message: msg,
		})
	}
	return nil
}

func validateArray(instance, schema *ir.Node, path string, report *Report) error {
	if len(schema.Values) != 1 {
		return fmt.Errorf("%w: array schema at %s must contain exactly one element specifier",
			ErrSchema, path)
	}
	if instance.Type != ir.ArrayType {
		*report = append(*report, Item{
			Level:   LevelError,
			Path:    path,
			Message: fmt.Sprintf("Expected array, found %s", instance.Type),
		})
		return nil
	}
	eltSchema := schema.Values[0]
	for i, elt := range instance.Values {
		if err := validate(elt, eltSchema, fmt.Sprintf("%s[%d]", path, i), report); err != nil {
			return err
		}
	}
	return nil
}
