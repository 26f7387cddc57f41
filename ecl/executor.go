package ecl

import (
	"github.com/eldrix/snomed-terminology/snomed"
)

// Attribute describes a non-IS-A relationship from the query façade's
// attributes/inbound-attribute-relationships accessors.
type Attribute struct {
	TypeID, OtherID snomed.Identifier
	Group           uint16
}

// Queryable is the capability interface the executor depends on (§6.5). It
// never touches a store's internal collections directly — only this
// interface. terminology.EclView adapts a terminology.Store to it.
type Queryable interface {
	DirectChildren(id snomed.Identifier) []snomed.Identifier
	DirectParents(id snomed.Identifier) []snomed.Identifier
	HasConcept(id snomed.Identifier) bool
	AllConceptIDs() []snomed.Identifier
	RefsetMembers(id snomed.Identifier) []snomed.Identifier
	Attributes(id snomed.Identifier) []Attribute
	InboundAttributeRelationships(id snomed.Identifier) []Attribute
	Descriptions(id snomed.Identifier) []*snomed.Description
	ConcreteValues(id snomed.Identifier) []*snomed.ConcreteRelationship
	SemanticTag(id snomed.Identifier) (string, bool)
	PreferredTerm(id snomed.Identifier) (string, bool)
	ConceptModule(id snomed.Identifier) (snomed.Identifier, bool)
	ConceptEffectiveTime(id snomed.Identifier) (uint32, bool)
	IsPrimitive(id snomed.Identifier) (bool, bool)
}

// DefaultCap bounds the number of identifiers any single set-producing
// operator will accumulate before short-circuiting, per §4.5.
const DefaultCap = 500_000

// Result is the identifier set produced by Execute, plus whether the
// configured cap forced a truncation.
type Result struct {
	ids       map[snomed.Identifier]struct{}
	Truncated bool
}

// Contains reports whether id is a member of the result.
func (r Result) Contains(id snomed.Identifier) bool {
	_, ok := r.ids[id]
	return ok
}

// Count returns the number of identifiers in the result.
func (r Result) Count() int { return len(r.ids) }

// Slice returns the result's identifiers in unspecified order.
func (r Result) Slice() []snomed.Identifier {
	out := make([]snomed.Identifier, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	return out
}

func newResultFromSlice(ids []snomed.Identifier) *Result {
	r := &Result{ids: make(map[snomed.Identifier]struct{}, len(ids))}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

// Executor evaluates parsed ECL expressions against a Queryable store.
type Executor struct {
	store Queryable
	cap   int
}

// NewExecutor returns an Executor with the default per-query identifier cap.
func NewExecutor(store Queryable) *Executor {
	return &Executor{store: store, cap: DefaultCap}
}

// WithCap returns a copy of e using the given per-query identifier cap
// instead of DefaultCap.
func (e *Executor) WithCap(cap int) *Executor {
	return &Executor{store: e.store, cap: cap}
}

// Execute parses and evaluates expr, returning the resulting identifier set.
// Ill-formed ECL produces a *ParseError; evaluation never errors on its own —
// references to non-existent identifiers simply contribute nothing.
func (e *Executor) Execute(expr string) (*Result, error) {
	tree, err := parse(expr)
	if err != nil {
		return nil, err
	}
	return e.eval(tree), nil
}

// Matches reports whether id is a member of expr's result set. For a bare
// focus expression it is computed without materializing the whole set.
func (e *Executor) Matches(id snomed.Identifier, expr string) (bool, error) {
	tree, err := parse(expr)
	if err != nil {
		return false, err
	}
	if f, ok := tree.(*focusNode); ok {
		return e.matchesFocus(id, f), nil
	}
	result := e.eval(tree)
	return result.Contains(id), nil
}

func (e *Executor) matchesFocus(id snomed.Identifier, f *focusNode) bool {
	switch f.op {
	case opSelf:
		return id == f.id
	case opDescendant:
		return id != f.id && e.isDescendant(id, f.id)
	case opDescendantOrSelf:
		return id == f.id || e.isDescendant(id, f.id)
	case opAncestor:
		return id != f.id && e.isDescendant(f.id, id)
	case opAncestorOrSelf:
		return id == f.id || e.isDescendant(f.id, id)
	case opMemberOf:
		for _, m := range e.store.RefsetMembers(f.id) {
			if m == id {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// isDescendant reports whether a is a (strict) descendant of b by walking
// DirectChildren from b; used for focus-node evaluation where no closure
// reference is available through the narrow Queryable interface.
func (e *Executor) isDescendant(a, b snomed.Identifier) bool {
	visited := map[snomed.Identifier]bool{b: true}
	queue := []snomed.Identifier{b}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range e.store.DirectChildren(cur) {
			if child == a {
				return true
			}
			if !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}
	return false
}

func (e *Executor) eval(n node) *Result {
	switch t := n.(type) {
	case *parenNode:
		return e.eval(t.inner)
	case *focusNode:
		return e.evalFocus(t)
	case *binaryNode:
		return e.evalBinary(t)
	default:
		return newResultFromSlice(nil)
	}
}

func (e *Executor) evalFocus(f *focusNode) *Result {
	switch f.op {
	case opSelf:
		if e.store.HasConcept(f.id) {
			return newResultFromSlice([]snomed.Identifier{f.id})
		}
		return newResultFromSlice(nil)
	case opDescendant:
		return e.bfsDescendants(f.id, false)
	case opDescendantOrSelf:
		return e.bfsDescendants(f.id, true)
	case opAncestor:
		return e.bfsAncestors(f.id, false)
	case opAncestorOrSelf:
		return e.bfsAncestors(f.id, true)
	case opMemberOf:
		return e.capped(e.store.RefsetMembers(f.id))
	default:
		return newResultFromSlice(nil)
	}
}

func (e *Executor) bfsDescendants(start snomed.Identifier, includeSelf bool) *Result {
	r := &Result{ids: make(map[snomed.Identifier]struct{})}
	if includeSelf && e.store.HasConcept(start) {
		r.ids[start] = struct{}{}
	}
	queue := []snomed.Identifier{start}
	seen := map[snomed.Identifier]bool{start: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range e.store.DirectChildren(cur) {
			if seen[child] {
				continue
			}
			seen[child] = true
			if len(r.ids) >= e.cap {
				r.Truncated = true
				return r
			}
			r.ids[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return r
}

func (e *Executor) bfsAncestors(start snomed.Identifier, includeSelf bool) *Result {
	r := &Result{ids: make(map[snomed.Identifier]struct{})}
	if includeSelf && e.store.HasConcept(start) {
		r.ids[start] = struct{}{}
	}
	queue := []snomed.Identifier{start}
	seen := map[snomed.Identifier]bool{start: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, parent := range e.store.DirectParents(cur) {
			if seen[parent] {
				continue
			}
			seen[parent] = true
			if len(r.ids) >= e.cap {
				r.Truncated = true
				return r
			}
			r.ids[parent] = struct{}{}
			queue = append(queue, parent)
		}
	}
	return r
}

func (e *Executor) capped(ids []snomed.Identifier) *Result {
	r := &Result{ids: make(map[snomed.Identifier]struct{})}
	for _, id := range ids {
		if len(r.ids) >= e.cap {
			r.Truncated = true
			break
		}
		r.ids[id] = struct{}{}
	}
	return r
}

func (e *Executor) evalBinary(b *binaryNode) *Result {
	left := e.eval(b.left)
	right := e.eval(b.right)
	switch b.op {
	case setAnd:
		return intersect(left, right)
	case setOr:
		return union(left, right)
	default:
		return minus(left, right)
	}
}

// intersect processes the smaller side first, per §4.5's planning guidance.
func intersect(a, b *Result) *Result {
	if len(a.ids) > len(b.ids) {
		a, b = b, a
	}
	r := &Result{ids: make(map[snomed.Identifier]struct{}), Truncated: a.Truncated || b.Truncated}
	for id := range a.ids {
		if _, ok := b.ids[id]; ok {
			r.ids[id] = struct{}{}
		}
	}
	return r
}

// union accumulates into whichever side is larger, per §4.5's planning guidance.
func union(a, b *Result) *Result {
	if len(a.ids) < len(b.ids) {
		a, b = b, a
	}
	r := &Result{ids: make(map[snomed.Identifier]struct{}, len(a.ids)), Truncated: a.Truncated || b.Truncated}
	for id := range a.ids {
		r.ids[id] = struct{}{}
	}
	for id := range b.ids {
		r.ids[id] = struct{}{}
	}
	return r
}

func minus(a, b *Result) *Result {
	r := &Result{ids: make(map[snomed.Identifier]struct{}), Truncated: a.Truncated || b.Truncated}
	for id := range a.ids {
		if _, ok := b.ids[id]; !ok {
			r.ids[id] = struct{}{}
		}
	}
	return r
}

// Step is one node of an Explain plan.
type Step struct {
	Operator          string
	Source            string
	EstimatedCardinality int
	Children          []Step
}

// Explain parses expr and returns a description of its evaluation steps
// (operator kind, source ECL substring, estimated cardinality) without
// requiring the caller to execute the query separately.
func (e *Executor) Explain(expr string) (Step, error) {
	tree, err := parse(expr)
	if err != nil {
		return Step{}, err
	}
	return e.explainNode(tree), nil
}

func (e *Executor) explainNode(n node) Step {
	switch t := n.(type) {
	case *parenNode:
		inner := e.explainNode(t.inner)
		return Step{Operator: "group", Source: t.src, EstimatedCardinality: inner.EstimatedCardinality, Children: []Step{inner}}
	case *focusNode:
		result := e.evalFocus(t)
		op := t.op.String()
		if op == "" {
			op = "self"
		}
		return Step{Operator: op, Source: t.src, EstimatedCardinality: result.Count()}
	case *binaryNode:
		left := e.explainNode(t.left)
		right := e.explainNode(t.right)
		combined := e.evalBinary(t)
		return Step{
			Operator:             t.op.String(),
			Source:               t.src,
			EstimatedCardinality: combined.Count(),
			Children:             []Step{left, right},
		}
	default:
		return Step{Operator: "unknown", Source: n.source()}
	}
}
