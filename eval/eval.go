// Package eval expands ${EXPR} placeholders in raw configuration
// text before it reaches the tokenizer.
//
// EXPR is an expression evaluated against an environment of named
// values. A plain name is a lookup, so ${PORT} substitutes the PORT
// variable, and richer forms like ${PORT + 1} or
// ${DEBUG == "1" ? "verbose" : "quiet"} work the same way. The
// substituted text is lexed as whatever it reads as: port: ${PORT}
// yields an integer field when PORT holds digits.
package eval

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/yesagainivan/cosy/debug"
)

var ErrExpand = errors.New("expand error")

// Env holds the named values placeholders evaluate against.
type Env map[string]any

// OSEnv snapshots the process environment. All values are strings.
func OSEnv() Env {
	env := Env{}
	for _, kv := range os.Environ() {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

// ExpandEnv replaces every ${EXPR} in src. A nil env means the
// process environment. A nil evaluation result substitutes as the
// empty string; anything else formats with %v.
func ExpandEnv(src string, env Env) (string, error) {
	if env == nil {
		env = OSEnv()
	}
	var sb strings.Builder
	for i := 0; i < len(src); {
		j := strings.Index(src[i:], "${")
		if j < 0 {
			sb.WriteString(src[i:])
			break
		}
		sb.WriteString(src[i : i+j])
		start := i + j + 2
		end := strings.IndexByte(src[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated ${ at offset %d", ErrExpand, i+j)
		}
		code := src[start : start+end]
		out, err := expr.Eval(code, map[string]any(env))
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrExpand, code, err)
		}
		res := render(out)
		if debug.Expand() {
			debug.Logf("expand %q -> %q\n", code, res)
		}
		sb.WriteString(res)
		i = start + end + 1
	}
	return sb.String(), nil
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
