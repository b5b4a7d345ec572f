package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/yesagainivan/cosy/ir"
	"github.com/yesagainivan/cosy/token"
)

type EncState struct {
	depth, indent  int
	newlines       bool
	trailingCommas bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. Defaults are four-space indentation, one
// entry per line, no trailing commas. With Newlines(false) the whole
// value goes on a single line and comments are dropped, since a line
// comment runs to end of line.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   4,
		newlines: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := writeComments(node, w, es); err != nil {
		return err
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	if !es.newlines {
		return nil
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(node.Type, "null", w, es)
	case ir.BoolType:
		return writeValue(node.Type, strconv.FormatBool(node.Bool), w, es)
	case ir.IntegerType:
		return writeValue(node.Type, strconv.FormatInt(node.Int64, 10), w, es)
	case ir.FloatType:
		return writeValue(node.Type, formatFloat(node.Float64), w, es)
	case ir.StringType:
		return writeValue(node.Type, token.Quote(node.String), w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeSep(ir.ObjectType, "{}", w, es)
	}
	if err := writeSep(ir.ObjectType, "{", w, es); err != nil {
		return err
	}
	if !es.newlines {
		return encodeObjectCompact(node, w, es)
	}
	es.depth++
	for i, key := range node.Fields {
		val := node.Values[i]
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeComments(val, w, es); err != nil {
			return err
		}
		if err := writeField(key, w, es); err != nil {
			return err
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
		if i < n-1 || es.trailingCommas {
			if err := writeSep(ir.ObjectType, ",", w, es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(ir.ObjectType, "}", w, es)
}

func encodeObjectCompact(node *ir.Node, w io.Writer, es *EncState) error {
	for i, key := range node.Fields {
		if err := writeField(key, w, es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeSep(ir.ObjectType, ", ", w, es); err != nil {
				return err
			}
		}
	}
	return writeSep(ir.ObjectType, "}", w, es)
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeSep(ir.ArrayType, "[]", w, es)
	}
	if err := writeSep(ir.ArrayType, "[", w, es); err != nil {
		return err
	}
	if !es.newlines {
		return encodeArrayCompact(node, w, es)
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeComments(v, w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 || es.trailingCommas {
			if err := writeSep(ir.ArrayType, ",", w, es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(ir.ArrayType, "]", w, es)
}

func encodeArrayCompact(node *ir.Node, w io.Writer, es *EncState) error {
	for i, v := range node.Values {
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeSep(ir.ArrayType, ", ", w, es); err != nil {
				return err
			}
		}
	}
	return writeSep(ir.ArrayType, "]", w, es)
}

// writeComments emits the node's leading comments, one "// text" line
// each, at the current indentation. Comments are parsed back onto the
// value that follows them, so this is the round-trip position.
func writeComments(node *ir.Node, w io.Writer, es *EncState) error {
	if !es.newlines {
		return nil
	}
	for _, c := range node.Comments {
		ln := "// " + c
		if es.Color != nil {
			ln = es.Color(node.Type, CommentColor, ln)
		}
		if err := writeString(w, ln); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return nil
}

func writeField(key string, w io.Writer, es *EncState) error {
	if token.NeedsQuote(key) {
		key = token.Quote(key)
	}
	sep := ":"
	if es.Color != nil {
		key = es.Color(ir.ObjectType, FieldColor, key)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, key+sep+" ")
}

func writeValue(t ir.Type, v string, w io.Writer, es *EncState) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}

func writeSep(t ir.Type, sep string, w io.Writer, es *EncState) error {
	if es.Color != nil {
		sep = es.Color(t, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.depth*es.indent))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// formatFloat keeps floats floats: a value like 5.0 formats as "5",
// which would lex as an integer, so a point is restored when the
// rendering carries neither point nor exponent.
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}
