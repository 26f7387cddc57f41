package terminology

import (
	"github.com/eldrix/snomed-terminology/ecl"
	"github.com/eldrix/snomed-terminology/snomed"
)

// EclView adapts a Store to the narrow ecl.Queryable capability interface
// (§6.5). The executor is never handed the store itself, only this view, so
// it can never reach past the façade into the store's internal collections.
type EclView struct {
	store *Store
}

// NewEclView returns the ECL query façade for store.
func NewEclView(store *Store) *EclView { return &EclView{store: store} }

func (v *EclView) DirectChildren(id snomed.Identifier) []snomed.Identifier { return v.store.GetChildren(id) }
func (v *EclView) DirectParents(id snomed.Identifier) []snomed.Identifier  { return v.store.GetParents(id) }
func (v *EclView) HasConcept(id snomed.Identifier) bool                   { return v.store.HasConcept(id) }
func (v *EclView) AllConceptIDs() []snomed.Identifier                     { return v.store.AllConceptIDs() }
func (v *EclView) RefsetMembers(id snomed.Identifier) []snomed.Identifier { return v.store.GetRefsetMembers(id) }

// Attributes returns id's active non-IS-A outgoing relationships.
func (v *EclView) Attributes(id snomed.Identifier) []ecl.Attribute {
	var attrs []ecl.Attribute
	for _, r := range v.store.GetOutgoingRelationships(id) {
		if r.Active && !r.IsA() {
			attrs = append(attrs, ecl.Attribute{TypeID: r.TypeID, OtherID: r.DestinationID, Group: r.RelationshipGroup})
		}
	}
	return attrs
}

// InboundAttributeRelationships returns id's active non-IS-A incoming
// relationships, with OtherID naming the relationship's source.
func (v *EclView) InboundAttributeRelationships(id snomed.Identifier) []ecl.Attribute {
	var attrs []ecl.Attribute
	for _, r := range v.store.GetIncomingRelationships(id) {
		if r.Active && !r.IsA() {
			attrs = append(attrs, ecl.Attribute{TypeID: r.TypeID, OtherID: r.SourceID, Group: r.RelationshipGroup})
		}
	}
	return attrs
}

func (v *EclView) Descriptions(id snomed.Identifier) []*snomed.Description { return v.store.GetDescriptions(id) }

// ConcreteValues returns id's concrete relationships.
func (v *EclView) ConcreteValues(id snomed.Identifier) []*snomed.ConcreteRelationship {
	return v.store.GetConcreteRelationships(id)
}

// SemanticTag returns the semantic tag of id's fully specified name, if any.
func (v *EclView) SemanticTag(id snomed.Identifier) (string, bool) {
	fsn, ok := v.store.GetFullySpecifiedName(id)
	if !ok {
		return "", false
	}
	return snomed.SemanticTag(fsn.Term)
}

func (v *EclView) PreferredTerm(id snomed.Identifier) (string, bool) { return v.store.GetPreferredTerm(id) }

// ConceptModule returns id's module identifier.
func (v *EclView) ConceptModule(id snomed.Identifier) (snomed.Identifier, bool) {
	c, ok := v.store.GetConcept(id)
	if !ok {
		return 0, false
	}
	return c.ModuleID, true
}

// ConceptEffectiveTime returns id's effective time.
func (v *EclView) ConceptEffectiveTime(id snomed.Identifier) (uint32, bool) {
	c, ok := v.store.GetConcept(id)
	if !ok {
		return 0, false
	}
	return c.EffectiveTime, true
}

// IsPrimitive reports whether id's definition status is primitive.
func (v *EclView) IsPrimitive(id snomed.Identifier) (bool, bool) {
	c, ok := v.store.GetConcept(id)
	if !ok {
		return false, false
	}
	return c.IsPrimitive(), true
}
