package ecl

import (
	"testing"

	"github.com/eldrix/snomed-terminology/snomed"
)

// fakeStore is a minimal in-package Queryable used to exercise the executor
// without depending on the terminology package, mirroring the small
// hierarchy used throughout the corpus's own ECL tests:
//
//	138875005 (root)
//	  └── 404684003 (clinical finding)
//	        ├── 73211009 (diabetes mellitus)
//	        │     ├── 46635009 (type 1 diabetes)
//	        │     └── 44054006 (type 2 diabetes)
//	        └── 22298006 (myocardial infarction)
type fakeStore struct {
	children map[snomed.Identifier][]snomed.Identifier
	parents  map[snomed.Identifier][]snomed.Identifier
	refsets  map[snomed.Identifier][]snomed.Identifier
	known    map[snomed.Identifier]bool
}

func newFakeStore() *fakeStore {
	s := &fakeStore{
		children: make(map[snomed.Identifier][]snomed.Identifier),
		parents:  make(map[snomed.Identifier][]snomed.Identifier),
		refsets:  make(map[snomed.Identifier][]snomed.Identifier),
		known:    make(map[snomed.Identifier]bool),
	}
	edges := []struct{ child, parent snomed.Identifier }{
		{404684003, 138875005},
		{73211009, 404684003},
		{46635009, 73211009},
		{44054006, 73211009},
		{22298006, 404684003},
	}
	for _, id := range []snomed.Identifier{138875005, 404684003, 73211009, 46635009, 44054006, 22298006} {
		s.known[id] = true
	}
	for _, e := range edges {
		s.children[e.parent] = append(s.children[e.parent], e.child)
		s.parents[e.child] = append(s.parents[e.child], e.parent)
	}
	return s
}

func (s *fakeStore) DirectChildren(id snomed.Identifier) []snomed.Identifier { return s.children[id] }
func (s *fakeStore) DirectParents(id snomed.Identifier) []snomed.Identifier  { return s.parents[id] }
func (s *fakeStore) HasConcept(id snomed.Identifier) bool                   { return s.known[id] }
func (s *fakeStore) AllConceptIDs() []snomed.Identifier {
	var ids []snomed.Identifier
	for id := range s.known {
		ids = append(ids, id)
	}
	return ids
}
func (s *fakeStore) RefsetMembers(id snomed.Identifier) []snomed.Identifier { return s.refsets[id] }
func (s *fakeStore) Attributes(id snomed.Identifier) []Attribute           { return nil }
func (s *fakeStore) InboundAttributeRelationships(id snomed.Identifier) []Attribute { return nil }
func (s *fakeStore) Descriptions(id snomed.Identifier) []*snomed.Description { return nil }
func (s *fakeStore) ConcreteValues(id snomed.Identifier) []*snomed.ConcreteRelationship {
	return nil
}
func (s *fakeStore) SemanticTag(id snomed.Identifier) (string, bool)        { return "", false }
func (s *fakeStore) PreferredTerm(id snomed.Identifier) (string, bool)      { return "", false }
func (s *fakeStore) ConceptModule(id snomed.Identifier) (snomed.Identifier, bool) {
	return 0, false
}
func (s *fakeStore) ConceptEffectiveTime(id snomed.Identifier) (uint32, bool) { return 0, false }
func (s *fakeStore) IsPrimitive(id snomed.Identifier) (bool, bool)            { return false, false }

const (
	root      = snomed.Identifier(138875005)
	clinFind  = snomed.Identifier(404684003)
	diabetes  = snomed.Identifier(73211009)
	type1     = snomed.Identifier(46635009)
	type2     = snomed.Identifier(44054006)
	mi        = snomed.Identifier(22298006)
)

func TestExecuteDescendants(t *testing.T) {
	e := NewExecutor(newFakeStore())
	result, err := e.Execute("< 73211009")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Count() != 2 || !result.Contains(type1) || !result.Contains(type2) {
		t.Fatalf("unexpected result: %v", result.Slice())
	}
}

func TestExecuteDescendantsOrSelf(t *testing.T) {
	e := NewExecutor(newFakeStore())
	result, err := e.Execute("<< 73211009")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Count() != 3 || !result.Contains(diabetes) || !result.Contains(type1) || !result.Contains(type2) {
		t.Fatalf("unexpected result: %v", result.Slice())
	}
}

func TestExecuteAncestorsOrSelf(t *testing.T) {
	e := NewExecutor(newFakeStore())
	result, err := e.Execute(">> 46635009")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []snomed.Identifier{type1, diabetes, clinFind, root} {
		if !result.Contains(want) {
			t.Fatalf("expected %d in result %v", want, result.Slice())
		}
	}
}

func TestExecuteAnd(t *testing.T) {
	e := NewExecutor(newFakeStore())
	result, err := e.Execute("<< 404684003 AND << 73211009")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []snomed.Identifier{diabetes, type1, type2} {
		if !result.Contains(want) {
			t.Fatalf("expected %d in result %v", want, result.Slice())
		}
	}
	if result.Contains(mi) {
		t.Fatalf("did not expect MI in intersection: %v", result.Slice())
	}
}

func TestExecuteMinus(t *testing.T) {
	e := NewExecutor(newFakeStore())
	result, err := e.Execute("<< 404684003 MINUS << 73211009")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !result.Contains(clinFind) || !result.Contains(mi) {
		t.Fatalf("expected clinical finding and MI in %v", result.Slice())
	}
	if result.Contains(diabetes) || result.Contains(type1) {
		t.Fatalf("did not expect diabetes subtree in %v", result.Slice())
	}
}

func TestExecuteSelf(t *testing.T) {
	e := NewExecutor(newFakeStore())
	result, err := e.Execute("73211009")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Count() != 1 || !result.Contains(diabetes) {
		t.Fatalf("unexpected result: %v", result.Slice())
	}
}

func TestMatches(t *testing.T) {
	e := NewExecutor(newFakeStore())
	ok, err := e.Matches(type1, "<< 73211009")
	if err != nil || !ok {
		t.Fatalf("expected type1 to match << diabetes, got %v, %v", ok, err)
	}
	ok, err = e.Matches(mi, "<< 73211009")
	if err != nil || ok {
		t.Fatalf("expected MI not to match << diabetes, got %v, %v", ok, err)
	}
}

// TestInvariantMatchesAgreesWithExecute checks I10: matches(c, e) iff
// c is a member of execute(e), across every concept in the fake store.
func TestInvariantMatchesAgreesWithExecute(t *testing.T) {
	store := newFakeStore()
	e := NewExecutor(store)
	exprs := []string{"73211009", "< 73211009", "<< 73211009", "> 46635009", ">> 46635009", "<< 404684003 MINUS << 73211009", "<< 404684003 AND << 73211009", "<< 404684003 OR << 73211009"}
	for _, expr := range exprs {
		result, err := e.Execute(expr)
		if err != nil {
			t.Fatalf("execute(%q): %v", expr, err)
		}
		for id := range store.known {
			matched, err := e.Matches(id, expr)
			if err != nil {
				t.Fatalf("matches(%d, %q): %v", id, expr, err)
			}
			if matched != result.Contains(id) {
				t.Errorf("%q: matches(%d)=%v but execute contains=%v", expr, id, matched, result.Contains(id))
			}
		}
	}
}

func TestParseErrorUnbalancedParens(t *testing.T) {
	_, err := parse("(<< 73211009")
	if err == nil {
		t.Fatal("expected parse error for unbalanced parentheses")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseErrorUnknownOperator(t *testing.T) {
	_, err := parse("~~ 73211009")
	if err == nil {
		t.Fatal("expected parse error for unknown operator")
	}
}

func TestExplain(t *testing.T) {
	e := NewExecutor(newFakeStore())
	step, err := e.Explain("<< 404684003 MINUS << 73211009")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if step.Operator != "MINUS" {
		t.Fatalf("expected top-level MINUS, got %s", step.Operator)
	}
	if len(step.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(step.Children))
	}
}
