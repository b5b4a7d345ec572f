// Package token turns cosy source text into a position-tagged token
// stream. Newlines and comments are tokens in their own right: the
// parser needs them for separator inference and comment attachment.
package token

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Tokenizer struct {
	d    []byte
	i    int
	line int
	col  int
}

func NewTokenizer(src []byte) *Tokenizer {
	return &Tokenizer{d: src, line: 1, col: 1}
}

// Tokenize converts src into tokens, ending with a TEOF token. It
// stops at the first invalid input and returns a *LexError.
func Tokenize(src []byte) ([]Token, error) {
	tk := NewTokenizer(src)
	var toks []Token
	for {
		tk.skipSpaceAndInlineJunk()
		if tk.atEnd() {
			toks = append(toks, Token{Type: TEOF, Pos: tk.pos()})
			return toks, nil
		}
		// the token's position is the position before lexing begins
		pos := tk.pos()
		tok, err := tk.next()
		if err != nil {
			return nil, err
		}
		tok.Pos = pos
		toks = append(toks, tok)
	}
}

func (tk *Tokenizer) next() (Token, error) {
	c := tk.cur()
	switch c {
	case '\n':
		tk.advance()
		return Token{Type: TNewline}, nil
	case '{':
		tk.advance()
		return Token{Type: TLCurl, Bytes: tk.d[tk.i-1 : tk.i]}, nil
	case '}':
		tk.advance()
		return Token{Type: TRCurl, Bytes: tk.d[tk.i-1 : tk.i]}, nil
	case '[':
		tk.advance()
		return Token{Type: TLSquare, Bytes: tk.d[tk.i-1 : tk.i]}, nil
	case ']':
		tk.advance()
		return Token{Type: TRSquare, Bytes: tk.d[tk.i-1 : tk.i]}, nil
	case ':':
		tk.advance()
		return Token{Type: TColon, Bytes: tk.d[tk.i-1 : tk.i]}, nil
	case ',':
		tk.advance()
		return Token{Type: TComma, Bytes: tk.d[tk.i-1 : tk.i]}, nil
	case '"':
		return tk.lexString()
	case '/':
		return tk.lexComment()
	}
	if c == '-' || asciiDigit(c) {
		return tk.lexNumber()
	}
	if identStart(c) {
		return tk.lexIdent(), nil
	}
	r, _ := utf8.DecodeRune(tk.d[tk.i:])
	return Token{}, NewLexError(fmt.Errorf("%w %q", ErrBadChar, r), tk.pos())
}

func (tk *Tokenizer) lexString() (Token, error) {
	tk.advance() // opening quote
	var sb strings.Builder
	for !tk.atEnd() && tk.cur() != '"' {
		if tk.cur() != '\\' {
			r := tk.advanceRune()
			sb.WriteRune(r)
			continue
		}
		tk.advance()
		if tk.atEnd() {
			break
		}
		var esc byte
		switch tk.cur() {
		case 'n':
			esc = '\n'
		case 't':
			esc = '\t'
		case 'r':
			esc = '\r'
		case '\\':
			esc = '\\'
		case '"':
			esc = '"'
		default:
			return Token{}, NewLexError(
				fmt.Errorf("%w \\%c", ErrBadEscape, tk.cur()), tk.pos())
		}
		sb.WriteByte(esc)
		tk.advance()
	}
	if tk.atEnd() {
		return Token{}, NewLexError(ErrUnterminatedString, tk.pos())
	}
	tk.advance() // closing quote
	return Token{Type: TString, Bytes: []byte(sb.String())}, nil
}

func (tk *Tokenizer) lexComment() (Token, error) {
	if tk.peek() != '/' {
		return Token{}, NewLexError(fmt.Errorf("%w '/'", ErrBadChar), tk.pos())
	}
	tk.advance()
	tk.advance()
	start := tk.i
	for !tk.atEnd() && tk.cur() != '\n' {
		tk.advanceRune()
	}
	// the newline after the comment is left for the next token
	text := bytes.TrimSpace(tk.d[start:tk.i])
	return Token{Type: TComment, Bytes: text}, nil
}

func (tk *Tokenizer) lexNumber() (Token, error) {
	start := tk.i
	if tk.cur() == '-' {
		tk.advance()
	}
	for !tk.atEnd() && asciiDigit(tk.cur()) {
		tk.advance()
	}
	isFloat := false
	// a '.' only belongs to the number when a digit follows it
	if !tk.atEnd() && tk.cur() == '.' && asciiDigit(tk.peek()) {
		isFloat = true
		tk.advance()
		for !tk.atEnd() && asciiDigit(tk.cur()) {
			tk.advance()
		}
	}
	if !tk.atEnd() && (tk.cur() == 'e' || tk.cur() == 'E') {
		isFloat = true
		tk.advance()
		if !tk.atEnd() && (tk.cur() == '+' || tk.cur() == '-') {
			tk.advance()
		}
		if tk.atEnd() || !asciiDigit(tk.cur()) {
			return Token{}, NewLexError(ErrExponent, tk.pos())
		}
		for !tk.atEnd() && asciiDigit(tk.cur()) {
			tk.advance()
		}
	}
	tt := TInteger
	if isFloat {
		tt = TFloat
	}
	return Token{Type: tt, Bytes: tk.d[start:tk.i]}, nil
}

func (tk *Tokenizer) lexIdent() Token {
	start := tk.i
	for !tk.atEnd() && identPart(tk.d[tk.i:]) {
		tk.advanceRune()
	}
	ident := tk.d[start:tk.i]
	switch string(ident) {
	case "true":
		return Token{Type: TTrue, Bytes: ident}
	case "false":
		return Token{Type: TFalse, Bytes: ident}
	case "null":
		return Token{Type: TNull, Bytes: ident}
	}
	return Token{Type: TLiteral, Bytes: ident}
}

// skipSpaceAndInlineJunk consumes spaces, tabs and carriage returns.
// Newlines and comments are significant and left alone.
func (tk *Tokenizer) skipSpaceAndInlineJunk() {
	for !tk.atEnd() {
		switch tk.cur() {
		case ' ', '\t', '\r':
			tk.advance()
		default:
			return
		}
	}
}

func (tk *Tokenizer) cur() byte {
	return tk.d[tk.i]
}

func (tk *Tokenizer) peek() byte {
	if tk.i+1 < len(tk.d) {
		return tk.d[tk.i+1]
	}
	return 0
}

func (tk *Tokenizer) atEnd() bool {
	return tk.i >= len(tk.d)
}

func (tk *Tokenizer) pos() Pos {
	return Pos{Line: tk.line, Col: tk.col}
}

// advance moves past one byte, tracking line and column.
func (tk *Tokenizer) advance() {
	if tk.atEnd() {
		return
	}
	if tk.d[tk.i] == '\n' {
		tk.line++
		tk.col = 1
	} else {
		tk.col++
	}
	tk.i++
}

// advanceRune moves past one rune; a multi-byte rune counts as one
// column.
func (tk *Tokenizer) advanceRune() rune {
	r, n := utf8.DecodeRune(tk.d[tk.i:])
	if r == '\n' {
		tk.line++
		tk.col = 1
	} else {
		tk.col++
	}
	tk.i += n
	return r
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func identStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func identPart(d []byte) bool {
	c := d[0]
	if c == '_' || asciiDigit(c) || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	if c < utf8.RuneSelf {
		return false
	}
	r, _ := utf8.DecodeRune(d)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
