package parse

import (
	"errors"
	"fmt"

	"github.com/yesagainivan/cosy/token"
)

var ErrParse = errors.New("parse error")

// ParseError points at the token that could not be parsed.
type ParseError struct {
	Msg string
	Pos token.Pos
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}
