package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadChar            = errors.New("unexpected character")
	ErrBadEscape          = errors.New("invalid escape sequence")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrExponent           = errors.New("invalid exponent in number")
)

// LexError is a tokenization failure at a source position.
type LexError struct {
	Err error
	Pos Pos
}

func NewLexError(e error, p Pos) *LexError {
	return &LexError{Err: e, Pos: p}
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", e.Pos, e.Err)
}

func (e *LexError) Message() string {
	return e.Err.Error()
}
