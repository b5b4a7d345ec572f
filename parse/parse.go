// Package parse provides cosy parsing support.
package parse

import (
	"fmt"
	"strconv"

	"github.com/yesagainivan/cosy/ir"
	"github.com/yesagainivan/cosy/token"
)

// Parse tokenizes and parses d into a value tree. Comments directly
// preceding a value (or an object entry's key) are attached to that
// value as its leading comment list.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}

	lead, _ := p.seps()
	root, err := p.value(lead)
	if err != nil {
		return nil, err
	}
	p.seps() // trailing blank lines and comments after the root
	if p.cur().Type != token.TEOF {
		return nil, p.errAtCur("unexpected tokens after value")
	}
	return root, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) cur() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) advance() {
	if p.cur().Type != token.TEOF {
		p.i++
	}
}

func (p *parser) errAtCur(msg string) error {
	return &ParseError{Msg: msg, Pos: p.cur().Pos}
}

// seps consumes a run of newline and comment tokens, returning the
// comment texts and whether at least one newline was seen.
func (p *parser) seps() ([]string, bool) {
	var comments []string
	sawNewline := false
	for {
		switch p.cur().Type {
		case token.TNewline:
			sawNewline = true
			p.advance()
		case token.TComment:
			if p.opts.comments {
				comments = append(comments, string(p.cur().Bytes))
			}
			p.advance()
		default:
			return comments, sawNewline
		}
	}
}

func (p *parser) value(lead []string) (*ir.Node, error) {
	more, _ := p.seps()
	lead = append(lead, more...)

	t := p.cur()
	var node *ir.Node
	switch t.Type {
	case token.TNull:
		p.advance()
		node = ir.Null()
	case token.TTrue:
		p.advance()
		node = ir.FromBool(true)
	case token.TFalse:
		p.advance()
		node = ir.FromBool(false)
	case token.TInteger:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			return nil, &ParseError{
				Msg: fmt.Sprintf("invalid integer %q", string(t.Bytes)),
				Pos: t.Pos,
			}
		}
		p.advance()
		node = ir.FromInt(i)
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, &ParseError{
				Msg: fmt.Sprintf("invalid float %q", string(t.Bytes)),
				Pos: t.Pos,
			}
		}
		p.advance()
		node = ir.FromFloat(f)
	case token.TString:
		p.advance()
		node = ir.FromString(string(t.Bytes))
	case token.TLCurl:
		return p.object(lead)
	case token.TLSquare:
		return p.array(lead)
	default:
		return nil, p.errAtCur(fmt.Sprintf("expected value, found %s", t.Info()))
	}
	return node.WithComments(lead), nil
}

func (p *parser) object(lead []string) (*ir.Node, error) {
	p.advance() // '{'
	obj := ir.NewObject()
	var pending []string

	for {
		more, _ := p.seps()
		pending = append(pending, more...)

		if p.cur().Type == token.TRCurl {
			p.advance()
			return obj.WithComments(lead), nil
		}

		var key string
		switch p.cur().Type {
		case token.TLiteral, token.TString:
			key = string(p.cur().Bytes)
			p.advance()
		default:
			return nil, p.errAtCur(fmt.Sprintf(
				"expected object key (identifier or string), found %s",
				p.cur().Info()))
		}
		if p.cur().Type != token.TColon {
			return nil, p.errAtCur("expected ':' after object key")
		}
		p.advance()

		// comments before the key belong to the value
		val, err := p.value(pending)
		if err != nil {
			return nil, err
		}
		// duplicate keys: the later value wins, the key keeps its place
		obj.Set(key, val)

		var hasSep bool
		pending, hasSep = p.seps()
		if p.cur().Type == token.TComma {
			p.advance()
			hasSep = true
			more, _ := p.seps()
			pending = append(pending, more...)
		}
		if p.cur().Type == token.TRCurl {
			p.advance()
			return obj.WithComments(lead), nil
		}
		if !hasSep {
			return nil, p.errAtCur(fmt.Sprintf(
				"expected ',' or '}' in object, found %s", p.cur().Info()))
		}
	}
}

func (p *parser) array(lead []string) (*ir.Node, error) {
	p.advance() // '['
	arr := ir.FromSlice(nil)
	var pending []string

	for {
		more, _ := p.seps()
		pending = append(pending, more...)

		if p.cur().Type == token.TRSquare {
			p.advance()
			return arr.WithComments(lead), nil
		}

		elt, err := p.value(pending)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, elt)

		var hasSep bool
		pending, hasSep = p.seps()
		if p.cur().Type == token.TComma {
			p.advance()
			hasSep = true
			more, _ := p.seps()
			pending = append(pending, more...)
		}
		if p.cur().Type == token.TRSquare {
			p.advance()
			return arr.WithComments(lead), nil
		}
		if !hasSep {
			return nil, p.errAtCur(fmt.Sprintf(
				"expected ',' or ']' in array, found %s", p.cur().Info()))
		}
	}
}
