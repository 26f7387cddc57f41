package terminology

import "github.com/eldrix/snomed-terminology/snomed"

// Closure is the materialized transitive closure of the IS-A DAG (§4.4): for
// every concept, the set of all strict ancestors and the set of all strict
// descendants. It borrows no data from the Store after Build; it owns its
// sets outright, decoupling closure rebuild from store mutation.
//
// Query operations are read-only and safe for concurrent use by any number of
// goroutines without external locking.
type Closure struct {
	ancestors   map[snomed.Identifier]map[snomed.Identifier]struct{}
	descendants map[snomed.Identifier]map[snomed.Identifier]struct{}
}

// parentsView is the minimal capability BuildClosure needs from a store:
// active, IS-A-filtered parents of a concept, and the full concept set.
type parentsView interface {
	GetParents(id snomed.Identifier) []snomed.Identifier
	AllConceptIDs() []snomed.Identifier
}

// BuildClosure computes the transitive closure of store's current IS-A edges.
// It uses DFS with memoization from every concept: a concept's ancestor set
// is the union of its immediate parents' ancestor sets plus those parents
// themselves, computed once per concept and cached. A concept mid-computation
// on the current DFS path is treated as having no further ancestors to
// contribute, which prevents infinite recursion if malformed data contains an
// IS-A cycle (the DAG invariant makes this impossible under correct data;
// §4.4 asks only that an implementation not recurse forever).
func BuildClosure(store parentsView) *Closure {
	c := &Closure{
		ancestors:   make(map[snomed.Identifier]map[snomed.Identifier]struct{}),
		descendants: make(map[snomed.Identifier]map[snomed.Identifier]struct{}),
	}
	visiting := make(map[snomed.Identifier]bool)
	var ancestorsOf func(id snomed.Identifier) map[snomed.Identifier]struct{}
	ancestorsOf = func(id snomed.Identifier) map[snomed.Identifier]struct{} {
		if set, ok := c.ancestors[id]; ok {
			return set
		}
		if visiting[id] {
			return map[snomed.Identifier]struct{}{}
		}
		visiting[id] = true
		set := make(map[snomed.Identifier]struct{})
		for _, p := range store.GetParents(id) {
			set[p] = struct{}{}
			for a := range ancestorsOf(p) {
				set[a] = struct{}{}
			}
		}
		visiting[id] = false
		c.ancestors[id] = set
		return set
	}
	for _, id := range store.AllConceptIDs() {
		for a := range ancestorsOf(id) {
			if c.descendants[a] == nil {
				c.descendants[a] = make(map[snomed.Identifier]struct{})
			}
			c.descendants[a][id] = struct{}{}
		}
	}
	return c
}

// Ancestors returns every strict ancestor of id, excluding id, as a fresh
// slice the caller owns.
func (c *Closure) Ancestors(id snomed.Identifier) []snomed.Identifier {
	return setToSlice(c.ancestors[id])
}

// Descendants returns every strict descendant of id, excluding id.
func (c *Closure) Descendants(id snomed.Identifier) []snomed.Identifier {
	return setToSlice(c.descendants[id])
}

// AncestorsOrSelf returns Ancestors plus id itself.
func (c *Closure) AncestorsOrSelf(id snomed.Identifier) []snomed.Identifier {
	return append(c.Ancestors(id), id)
}

// DescendantsOrSelf returns Descendants plus id itself.
func (c *Closure) DescendantsOrSelf(id snomed.Identifier) []snomed.Identifier {
	return append(c.Descendants(id), id)
}

// IsDescendantOf reports constant-time membership: whether a is a strict
// descendant of b. Identity always returns false (§9 open question,
// resolved in favour of the strict reading).
func (c *Closure) IsDescendantOf(a, b snomed.Identifier) bool {
	if a == b {
		return false
	}
	_, ok := c.ancestors[a][b]
	return ok
}

// IsAncestorOf reports whether a is a strict ancestor of b.
func (c *Closure) IsAncestorOf(a, b snomed.Identifier) bool {
	return c.IsDescendantOf(b, a)
}

func setToSlice(set map[snomed.Identifier]struct{}) []snomed.Identifier {
	if len(set) == 0 {
		return nil
	}
	out := make([]snomed.Identifier, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
