package cosy

import (
	"errors"

	"github.com/yesagainivan/cosy/parse"
	"github.com/yesagainivan/cosy/token"
)

// Error is the unified error surface of the loading entry points. It
// wraps the underlying lex, parse, expansion, include or IO error, so
// errors.Is and errors.As keep working through it.
type Error struct {
	err error
}

func NewError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{err: err}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Message returns the failure description without position prefixes.
func (e *Error) Message() string {
	var lexErr *token.LexError
	if errors.As(e.err, &lexErr) {
		return lexErr.Message()
	}
	var parseErr *parse.ParseError
	if errors.As(e.err, &parseErr) {
		return parseErr.Msg
	}
	return e.err.Error()
}

// Line returns the 1-based source line of the failure, 0 when the
// error carries no position.
func (e *Error) Line() int {
	return e.pos().Line
}

// Column returns the 1-based source column of the failure, 0 when the
// error carries no position.
func (e *Error) Column() int {
	return e.pos().Col
}

func (e *Error) pos() token.Pos {
	var lexErr *token.LexError
	if errors.As(e.err, &lexErr) {
		return lexErr.Pos
	}
	var parseErr *parse.ParseError
	if errors.As(e.err, &parseErr) {
		return parseErr.Pos
	}
	return token.Pos{}
}
