package token

import "fmt"

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TLiteral
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TNewline
	TComment
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "null",
		TTrue:    "true",
		TFalse:   "false",
		TInteger: "integer",
		TFloat:   "float",
		TString:  "string",
		TLiteral: "identifier",
		TLCurl:   "'{'",
		TRCurl:   "'}'",
		TLSquare: "'['",
		TRSquare: "']'",
		TColon:   "':'",
		TComma:   "','",
		TNewline: "newline",
		TComment: "comment",
		TEOF:     "EOF",
	}[t]
}

// Token is one lexical element. Bytes holds the token's text: for
// TString it is the unescaped string content, for TComment the trimmed
// comment text, and for everything else the raw source bytes.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	switch t.Type {
	case TString:
		return fmt.Sprintf("string %q", string(t.Bytes))
	case TLiteral:
		return fmt.Sprintf("identifier '%s'", string(t.Bytes))
	case TInteger, TFloat:
		return fmt.Sprintf("%s %s", t.Type, string(t.Bytes))
	default:
		return t.Type.String()
	}
}
