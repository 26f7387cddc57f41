package ecl

import (
	"fmt"
	"strings"

	"github.com/eldrix/snomed-terminology/snomed"
)

// parser implements the grammar of §4.5:
//
//	expr  ::= term ( ( 'AND' | 'OR' | 'MINUS' ) term )*
//	term  ::= focus | '(' expr ')'
//	focus ::= op? identifier
//	op    ::= '<<' | '<' | '>>' | '>' | '^'
//
// Set operators are left-associative at equal precedence; parentheses
// override.
type parser struct {
	lex  *lexer
	tok  token
	src  string
}

// parse compiles an ECL string into an expression tree. Ill-formed input
// produces a *ParseError carrying the character (rune) offset of the failure.
func parse(expr string) (node, error) {
	p := &parser{lex: newLexer(expr), src: expr}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("unexpected trailing input %q", p.tok.text)}
	}
	return n, nil
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op setOp
		switch p.tok.kind {
		case tokenAnd:
			op = setAnd
		case tokenOr:
			op = setOr
		case tokenMinus:
			op = setMinus
		default:
			return left, nil
		}
		start := left.source()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		combined := strings.TrimSpace(start + " " + op.String() + " " + right.source())
		left = &binaryNode{op: op, left: left, right: right, src: combined}
	}
}

func (p *parser) parseTerm() (node, error) {
	if p.tok.kind == tokenLParen {
		openPos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenRParen {
			return nil, &ParseError{Pos: openPos, Message: "unbalanced parentheses"}
		}
		src := "(" + inner.source() + ")"
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &parenNode{inner: inner, src: src}, nil
	}
	return p.parseFocus()
}

func (p *parser) parseFocus() (node, error) {
	var op focusOp
	switch p.tok.kind {
	case tokenDescendantOf:
		op = opDescendant
	case tokenDescendantOrSelf:
		op = opDescendantOrSelf
	case tokenAncestorOf:
		op = opAncestor
	case tokenAncestorOrSelf:
		op = opAncestorOrSelf
	case tokenMemberOf:
		op = opMemberOf
	case tokenIdentifier:
		op = opSelf
	default:
		return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("expected focus concept, got %q", p.tok.text)}
	}
	opText := ""
	if op != opSelf {
		opText = p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.tok.kind != tokenIdentifier {
		return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("expected identifier, got %q", p.tok.text)}
	}
	idText := p.tok.text
	id, err := snomed.ParseIdentifier(idText)
	if err != nil {
		return nil, &ParseError{Pos: p.tok.pos, Message: fmt.Sprintf("invalid identifier %q: %v", idText, err)}
	}
	src := strings.TrimSpace(opText + " " + idText)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &focusNode{op: op, id: id, src: src}, nil
}
