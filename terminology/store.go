// Package terminology owns the in-memory SNOMED CT knowledge store: the
// multi-index aggregate built from RF2 records, its derived transitive
// closure, the MRCM sub-store, RF2 file discovery, and a free-text search
// index built from loaded descriptions.
package terminology

import (
	"github.com/eldrix/snomed-terminology/snomed"
)

// Store owns every loaded record and exposes the query surface described by
// §4.3: a primary concept map plus every secondary index the query layer
// needs. A Store is populated by a sequence of append-only Insert* calls
// during the load phase, then treated as read-only for the remainder of the
// process lifetime — query methods take no lock.
type Store struct {
	concepts                    map[snomed.Identifier]*snomed.Concept
	descriptionsByConcept       map[snomed.Identifier][]*snomed.Description
	relationshipsBySource       map[snomed.Identifier][]*snomed.Relationship
	relationshipsByDestination  map[snomed.Identifier][]*snomed.Relationship
	refsetsByID                 map[snomed.Identifier][]snomed.Identifier
	refsetsContainingComponent  map[snomed.Identifier][]snomed.Identifier
	owlByConcept                map[snomed.Identifier][]*snomed.OWLExpression
	concreteRelsBySource        map[snomed.Identifier][]*snomed.ConcreteRelationship
	languageMembersByDescription map[snomed.Identifier][]*snomed.LanguageRefsetMember
	associationsBySource        map[snomed.Identifier][]*snomed.AssociationRefsetMember

	mrcm    *MRCMStore
	closure *Closure
}

// NewStore returns an empty store, ready to be populated.
func NewStore() *Store {
	return &Store{
		concepts:                     make(map[snomed.Identifier]*snomed.Concept),
		descriptionsByConcept:        make(map[snomed.Identifier][]*snomed.Description),
		relationshipsBySource:        make(map[snomed.Identifier][]*snomed.Relationship),
		relationshipsByDestination:   make(map[snomed.Identifier][]*snomed.Relationship),
		refsetsByID:                  make(map[snomed.Identifier][]snomed.Identifier),
		refsetsContainingComponent:   make(map[snomed.Identifier][]snomed.Identifier),
		owlByConcept:                 make(map[snomed.Identifier][]*snomed.OWLExpression),
		concreteRelsBySource:         make(map[snomed.Identifier][]*snomed.ConcreteRelationship),
		languageMembersByDescription: make(map[snomed.Identifier][]*snomed.LanguageRefsetMember),
		associationsBySource:         make(map[snomed.Identifier][]*snomed.AssociationRefsetMember),
		mrcm:                         newMRCMStore(),
	}
}

// InsertConcept adds or replaces a concept record.
func (s *Store) InsertConcept(c *snomed.Concept) {
	s.concepts[c.ID] = c
}

// InsertDescription attaches a description to its owning concept's index.
func (s *Store) InsertDescription(d *snomed.Description) {
	s.descriptionsByConcept[d.ConceptID] = append(s.descriptionsByConcept[d.ConceptID], d)
}

// InsertRelationship indexes a relationship at both its source and its
// destination in one call, so every inserted relationship appears in both
// indexes.
func (s *Store) InsertRelationship(r *snomed.Relationship) {
	s.relationshipsBySource[r.SourceID] = append(s.relationshipsBySource[r.SourceID], r)
	s.relationshipsByDestination[r.DestinationID] = append(s.relationshipsByDestination[r.DestinationID], r)
}

// InsertConcreteRelationship indexes a concrete relationship at its source.
func (s *Store) InsertConcreteRelationship(r *snomed.ConcreteRelationship) {
	s.concreteRelsBySource[r.SourceID] = append(s.concreteRelsBySource[r.SourceID], r)
}

// InsertOWLExpression indexes an OWL expression row at its referenced concept.
func (s *Store) InsertOWLExpression(o *snomed.OWLExpression) {
	s.owlByConcept[o.ReferencedComponentID] = append(s.owlByConcept[o.ReferencedComponentID], o)
}

// InsertSimpleRefsetMember indexes a bare membership row both by refset and by
// component, satisfying I8.
func (s *Store) InsertSimpleRefsetMember(m *snomed.SimpleRefsetMember) {
	s.indexMembership(m.RefsetID, m.ReferencedComponentID)
}

// InsertLanguageRefsetMember indexes a language acceptability row both by
// refset/component and by description identifier.
func (s *Store) InsertLanguageRefsetMember(m *snomed.LanguageRefsetMember) {
	s.indexMembership(m.RefsetID, m.ReferencedComponentID)
	s.languageMembersByDescription[m.ReferencedComponentID] = append(s.languageMembersByDescription[m.ReferencedComponentID], m)
}

// InsertAssociationRefsetMember indexes an association row both by
// refset/component and by source component.
func (s *Store) InsertAssociationRefsetMember(m *snomed.AssociationRefsetMember) {
	s.indexMembership(m.RefsetID, m.ReferencedComponentID)
	s.associationsBySource[m.ReferencedComponentID] = append(s.associationsBySource[m.ReferencedComponentID], m)
}

func (s *Store) indexMembership(refsetID, componentID snomed.Identifier) {
	s.refsetsByID[refsetID] = append(s.refsetsByID[refsetID], componentID)
	s.refsetsContainingComponent[componentID] = append(s.refsetsContainingComponent[componentID], refsetID)
}

// InsertMRCMDomain, InsertMRCMAttributeDomain and InsertMRCMAttributeRange
// delegate to the MRCM sub-store (§4.6).
func (s *Store) InsertMRCMDomain(d *snomed.MRCMDomain)                     { s.mrcm.insertDomain(d) }
func (s *Store) InsertMRCMAttributeDomain(d *snomed.MRCMAttributeDomain)   { s.mrcm.insertAttributeDomain(d) }
func (s *Store) InsertMRCMAttributeRange(r *snomed.MRCMAttributeRange)     { s.mrcm.insertAttributeRange(r) }

// MRCM returns the MRCM sub-store (§4.6).
func (s *Store) MRCM() *MRCMStore { return s.mrcm }

// SetClosure attaches a previously-built transitive closure. Passing nil
// reverts ancestor/descendant queries to the BFS fallback.
func (s *Store) SetClosure(c *Closure) { s.closure = c }

// BuildClosure computes and attaches the transitive closure over this store's
// current IS-A edges (§4.4). Call after all relationship files are loaded.
func (s *Store) BuildClosure() {
	s.closure = BuildClosure(s)
}

// GetConcept returns the concept if present.
func (s *Store) GetConcept(id snomed.Identifier) (*snomed.Concept, bool) {
	c, ok := s.concepts[id]
	return c, ok
}

// HasConcept reports whether id names a loaded concept.
func (s *Store) HasConcept(id snomed.Identifier) bool {
	_, ok := s.concepts[id]
	return ok
}

// AllConceptIDs returns every loaded concept identifier. Order is unspecified.
func (s *Store) AllConceptIDs() []snomed.Identifier {
	ids := make([]snomed.Identifier, 0, len(s.concepts))
	for id := range s.concepts {
		ids = append(ids, id)
	}
	return ids
}

// GetDescriptions returns every description attached to conceptID, in file order.
func (s *Store) GetDescriptions(conceptID snomed.Identifier) []*snomed.Description {
	return s.descriptionsByConcept[conceptID]
}

// GetFullySpecifiedName returns the first FSN-typed description for conceptID.
func (s *Store) GetFullySpecifiedName(conceptID snomed.Identifier) (*snomed.Description, bool) {
	for _, d := range s.descriptionsByConcept[conceptID] {
		if d.IsFullySpecifiedName() {
			return d, true
		}
	}
	return nil, false
}

// GetPreferredTerm returns the first synonym for conceptID if one exists,
// otherwise its FSN, otherwise absent. This is a deliberate heuristic used
// when no language refset is being consulted (§4.3); see
// GetPreferredTermForLanguage for the language-aware accessor.
func (s *Store) GetPreferredTerm(conceptID snomed.Identifier) (string, bool) {
	var fsn string
	haveFSN := false
	for _, d := range s.descriptionsByConcept[conceptID] {
		if d.IsSynonym() {
			return d.Term, true
		}
		if d.IsFullySpecifiedName() && !haveFSN {
			fsn, haveFSN = d.Term, true
		}
	}
	return fsn, haveFSN
}

// GetPreferredTermForLanguage returns the term of the first description of
// conceptID marked preferred in languageRefsetID, or absent if none is.
func (s *Store) GetPreferredTermForLanguage(conceptID, languageRefsetID snomed.Identifier) (string, bool) {
	for _, d := range s.descriptionsByConcept[conceptID] {
		for _, m := range s.languageMembersByDescription[d.ID] {
			if m.RefsetID == languageRefsetID && m.IsPreferred() {
				return d.Term, true
			}
		}
	}
	return "", false
}

// GetOutgoingRelationships returns every relationship with id as source.
func (s *Store) GetOutgoingRelationships(id snomed.Identifier) []*snomed.Relationship {
	return s.relationshipsBySource[id]
}

// GetIncomingRelationships returns every relationship with id as destination.
func (s *Store) GetIncomingRelationships(id snomed.Identifier) []*snomed.Relationship {
	return s.relationshipsByDestination[id]
}

// GetParents returns the IS-A-filtered destinations of id's active outgoing
// relationships (§4.3: "only active relationships marked IS-A count").
func (s *Store) GetParents(id snomed.Identifier) []snomed.Identifier {
	var parents []snomed.Identifier
	for _, r := range s.relationshipsBySource[id] {
		if r.Active && r.IsA() {
			parents = append(parents, r.DestinationID)
		}
	}
	return parents
}

// GetChildren returns the IS-A-filtered sources of id's active incoming
// relationships.
func (s *Store) GetChildren(id snomed.Identifier) []snomed.Identifier {
	var children []snomed.Identifier
	for _, r := range s.relationshipsByDestination[id] {
		if r.Active && r.IsA() {
			children = append(children, r.SourceID)
		}
	}
	return children
}

// GetAllAncestors returns every strict ancestor of id, excluding id itself.
// O(1) if the transitive closure is built, otherwise a BFS over GetParents.
func (s *Store) GetAllAncestors(id snomed.Identifier) []snomed.Identifier {
	if s.closure != nil {
		return s.closure.Ancestors(id)
	}
	return bfsClosure(id, s.GetParents)
}

// GetAllDescendants returns every strict descendant of id, excluding id itself.
func (s *Store) GetAllDescendants(id snomed.Identifier) []snomed.Identifier {
	if s.closure != nil {
		return s.closure.Descendants(id)
	}
	return bfsClosure(id, s.GetChildren)
}

// GetAllAncestorsOrSelf returns GetAllAncestors plus id itself.
func (s *Store) GetAllAncestorsOrSelf(id snomed.Identifier) []snomed.Identifier {
	return append(s.GetAllAncestors(id), id)
}

// GetAllDescendantsOrSelf returns GetAllDescendants plus id itself.
func (s *Store) GetAllDescendantsOrSelf(id snomed.Identifier) []snomed.Identifier {
	return append(s.GetAllDescendants(id), id)
}

// IsDescendantOf reports whether a is a strict descendant of b. Per the
// design notes' resolved open question, identity always returns false: a
// concept is never its own descendant, regardless of whether the closure was
// built.
func (s *Store) IsDescendantOf(a, b snomed.Identifier) bool {
	if a == b {
		return false
	}
	if s.closure != nil {
		return s.closure.IsDescendantOf(a, b)
	}
	return containsID(bfsClosure(a, s.GetParents), b)
}

// IsAncestorOf reports whether a is a strict ancestor of b.
func (s *Store) IsAncestorOf(a, b snomed.Identifier) bool {
	return s.IsDescendantOf(b, a)
}

// GetRefsetMembers returns every component identifier referenced by refsetID,
// in file order.
func (s *Store) GetRefsetMembers(refsetID snomed.Identifier) []snomed.Identifier {
	return s.refsetsByID[refsetID]
}

// GetRefsetsForComponent returns every refset identifier that references id.
func (s *Store) GetRefsetsForComponent(id snomed.Identifier) []snomed.Identifier {
	return s.refsetsContainingComponent[id]
}

// GetOWLExpressions returns the OWL expression rows referencing id.
func (s *Store) GetOWLExpressions(id snomed.Identifier) []*snomed.OWLExpression {
	return s.owlByConcept[id]
}

// GetConcreteRelationships returns the concrete relationships sourced at id.
func (s *Store) GetConcreteRelationships(id snomed.Identifier) []*snomed.ConcreteRelationship {
	return s.concreteRelsBySource[id]
}

// GetAssociations returns the association refset rows sourced at id.
func (s *Store) GetAssociations(id snomed.Identifier) []*snomed.AssociationRefsetMember {
	return s.associationsBySource[id]
}

// GetReplacementConcept returns the target of the first association on id
// whose refset is the replaced-by sentinel, or absent if none exists.
func (s *Store) GetReplacementConcept(id snomed.Identifier) (snomed.Identifier, bool) {
	for _, a := range s.associationsBySource[id] {
		if a.RefsetID == snomed.ReplacedByAssociationRefsetID {
			return a.TargetComponentID, true
		}
	}
	return 0, false
}

func containsID(ids []snomed.Identifier, target snomed.Identifier) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// bfsClosure performs a breadth-first traversal of neighbours(start) and
// everything transitively reachable, excluding start itself. Used as the
// fallback when no transitive closure has been built.
func bfsClosure(start snomed.Identifier, neighbours func(snomed.Identifier) []snomed.Identifier) []snomed.Identifier {
	visited := map[snomed.Identifier]struct{}{start: {}}
	queue := []snomed.Identifier{start}
	var result []snomed.Identifier
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range neighbours(id) {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			result = append(result, n)
			queue = append(queue, n)
		}
	}
	return result
}
