package encode

import (
	"bytes"
	"strings"

	"github.com/yesagainivan/cosy/ir"
)

// String encodes node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is String with surrounding whitespace trimmed; it panics
// on write errors, which a bytes.Buffer does not produce.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}
