package include

import "errors"

var (
	ErrRecursionLimit = errors.New("include recursion limit exceeded")
	ErrBadTarget      = errors.New("invalid include target")
)
