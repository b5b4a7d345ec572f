package schema

import "errors"

// ErrSchema marks a malformed schema document. Unlike findings, it
// aborts validation.
var ErrSchema = errors.New("invalid schema")
