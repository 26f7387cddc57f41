package ecl

import "github.com/eldrix/snomed-terminology/snomed"

// focusOp names the focus-concept operator prefixing an identifier (§4.5).
type focusOp int

const (
	opSelf focusOp = iota
	opDescendant
	opDescendantOrSelf
	opAncestor
	opAncestorOrSelf
	opMemberOf
)

func (o focusOp) String() string {
	switch o {
	case opDescendant:
		return "<"
	case opDescendantOrSelf:
		return "<<"
	case opAncestor:
		return ">"
	case opAncestorOrSelf:
		return ">>"
	case opMemberOf:
		return "^"
	default:
		return ""
	}
}

// setOp names a binary set-algebra combinator.
type setOp int

const (
	setAnd setOp = iota
	setOr
	setMinus
)

func (o setOp) String() string {
	switch o {
	case setAnd:
		return "AND"
	case setOr:
		return "OR"
	default:
		return "MINUS"
	}
}

// node is an ECL expression-tree node. Every node knows the source substring
// it was parsed from, for use by Explain.
type node interface {
	source() string
}

// focusNode is a leaf: an optional operator applied to a single identifier.
type focusNode struct {
	op  focusOp
	id  snomed.Identifier
	src string
}

func (n *focusNode) source() string { return n.src }

// binaryNode combines two subexpressions with AND/OR/MINUS, left-associative.
type binaryNode struct {
	op          setOp
	left, right node
	src         string
}

func (n *binaryNode) source() string { return n.src }

// parenNode wraps a parenthesized subexpression purely to preserve the
// original source text (including the parentheses) for Explain; evaluation
// simply delegates to inner.
type parenNode struct {
	inner node
	src   string
}

func (n *parenNode) source() string { return n.src }
