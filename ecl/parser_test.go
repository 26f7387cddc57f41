package ecl

import "testing"

func TestParseSimpleFocus(t *testing.T) {
	n, err := parse("73211009")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	f, ok := n.(*focusNode)
	if !ok {
		t.Fatalf("expected *focusNode, got %T", n)
	}
	if f.op != opSelf || f.id != 73211009 {
		t.Fatalf("unexpected focus node: %+v", f)
	}
}

func TestParseOperators(t *testing.T) {
	cases := []struct {
		expr string
		op   focusOp
	}{
		{"< 1", opDescendant},
		{"<< 1", opDescendantOrSelf},
		{"> 1", opAncestor},
		{">> 1", opAncestorOrSelf},
		{"^ 1", opMemberOf},
	}
	for _, c := range cases {
		n, err := parse(c.expr)
		if err != nil {
			t.Fatalf("parse(%q): %v", c.expr, err)
		}
		f, ok := n.(*focusNode)
		if !ok || f.op != c.op {
			t.Fatalf("parse(%q): expected op %v, got %+v", c.expr, c.op, n)
		}
	}
}

func TestParseLeftAssociative(t *testing.T) {
	n, err := parse("1 AND 2 OR 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	top, ok := n.(*binaryNode)
	if !ok || top.op != setOr {
		t.Fatalf("expected top-level OR, got %+v", n)
	}
	left, ok := top.left.(*binaryNode)
	if !ok || left.op != setAnd {
		t.Fatalf("expected left child to be AND, got %+v", top.left)
	}
}

func TestParseParentheses(t *testing.T) {
	n, err := parse("1 AND (2 OR 3)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	top, ok := n.(*binaryNode)
	if !ok || top.op != setAnd {
		t.Fatalf("expected top-level AND, got %+v", n)
	}
	if _, ok := top.right.(*parenNode); !ok {
		t.Fatalf("expected right side to be parenthesized, got %T", top.right)
	}
}

func TestParseMissingIdentifier(t *testing.T) {
	if _, err := parse("<"); err == nil {
		t.Fatal("expected parse error for missing identifier")
	}
}

func TestParseTrailingGarbage(t *testing.T) {
	if _, err := parse("1 2"); err == nil {
		t.Fatal("expected parse error for trailing garbage")
	}
}
