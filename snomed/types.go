// Copyright 2018 Mark Wardle / Eldrix Ltd
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
//

// Package snomed holds the RF2-accurate domain types for SNOMED CT components,
// the well-known metadata sentinels they are compared against, and the scalar
// identifier/check-digit/semantic-tag helpers shared by every other package.
package snomed

import "golang.org/x/text/language"

// A Concept represents a SNOMED-CT concept.
// See https://confluence.ihtsdotools.org/display/DOCRELFMT/3.2.1.+Concept+File+Specification
type Concept struct {
	ID                 Identifier
	EffectiveTime      uint32 // YYYYMMDD
	Active             bool
	ModuleID           Identifier
	DefinitionStatusID Identifier
}

// IsPrimitive returns whether this concept does not have sufficient defining
// relationships to computably distinguish it from its supertypes.
func (c *Concept) IsPrimitive() bool {
	return c.DefinitionStatusID == PrimitiveConceptID
}

// IsSufficientlyDefined returns whether this concept has a formal logic definition
// sufficient to distinguish its meaning from other similar concepts.
func (c *Concept) IsSufficientlyDefined() bool {
	return c.DefinitionStatusID == FullyDefinedConceptID
}

// A Description holds a human-readable label attached to a concept.
// See https://confluence.ihtsdotools.org/display/DOCRELFMT/3.2.2.+Description+File+Specification
type Description struct {
	ID               Identifier
	EffectiveTime    uint32
	Active           bool
	ModuleID         Identifier
	ConceptID        Identifier
	LanguageCode     string
	TypeID           Identifier
	Term             string
	CaseSignificance Identifier
}

// LanguageTag returns the language tag for this description's languageCode field.
func (d *Description) LanguageTag() language.Tag {
	return language.Make(d.LanguageCode)
}

// IsFullySpecifiedName returns whether this is a fully specified name.
func (d *Description) IsFullySpecifiedName() bool {
	return d.TypeID == FullySpecifiedNameConceptID
}

// IsSynonym returns whether this is a synonym, i.e. a candidate preferred term.
func (d *Description) IsSynonym() bool {
	return d.TypeID == SynonymConceptID
}

// IsDefinition returns whether this is one of (many) alternative text definitions.
func (d *Description) IsDefinition() bool {
	return d.TypeID == DefinitionConceptID
}

// SemanticTag extracts the parenthesised tag from this description's term, valid
// only when the description is a fully specified name.
func (d *Description) SemanticTag() (string, bool) {
	return SemanticTag(d.Term)
}

// Relationship defines a typed directed edge between two concepts.
// See https://confluence.ihtsdotools.org/display/DOCRELFMT/3.2.3.+Relationship+File+Specification
type Relationship struct {
	ID                   Identifier
	EffectiveTime        uint32
	Active               bool
	ModuleID             Identifier
	SourceID             Identifier
	DestinationID        Identifier
	RelationshipGroup    uint16 // 0 = ungrouped
	TypeID               Identifier
	CharacteristicTypeID Identifier
	ModifierID           Identifier
}

// IsA reports whether this relationship's type is the IS-A subsumption edge.
func (r *Relationship) IsA() bool {
	return r.TypeID == IsAConceptID
}

// IsStated reports whether this is a stated-form relationship.
func (r *Relationship) IsStated() bool {
	return r.CharacteristicTypeID == StatedRelationshipConceptID
}

// IsInferred reports whether this is an inferred (classifier-derived) relationship.
func (r *Relationship) IsInferred() bool {
	return r.CharacteristicTypeID == InferredRelationshipConceptID
}

// IsAdditional reports whether this relationship is additional to the core definition.
func (r *Relationship) IsAdditional() bool {
	return r.CharacteristicTypeID == AdditionalRelationshipConceptID
}

// ConcreteRelationship is a relationship whose destination is a literal value
// rather than another concept.
// See https://confluence.ihtsdotools.org/display/DOCRELFMT/5.3.+Relationship+Concrete+Values
type ConcreteRelationship struct {
	ID                   Identifier
	EffectiveTime        uint32
	Active               bool
	ModuleID             Identifier
	SourceID             Identifier
	Value                ConcreteValue
	RelationshipGroup    uint16
	TypeID               Identifier
	CharacteristicTypeID Identifier
	ModifierID           Identifier
}

// OWLExpression is a reference-set member carrying a raw OWL 2 functional syntax
// string for one concept. Not interpreted; stored and indexed verbatim.
type OWLExpression struct {
	ID            string // UUID row identifier
	EffectiveTime uint32
	Active        bool
	ModuleID      Identifier
	RefsetID      Identifier
	ReferencedComponentID Identifier
	OWLExpression string
}

// SimpleRefsetMember defines bare membership of a component in a refset.
// See https://confluence.ihtsdotools.org/display/DOCRELFMT/4.2.1.+Simple+Reference+Set
type SimpleRefsetMember struct {
	ID                    string
	EffectiveTime         uint32
	Active                bool
	ModuleID              Identifier
	RefsetID              Identifier
	ReferencedComponentID Identifier
}

// LanguageRefsetMember records acceptability of a description in a language or
// dialect. Indexed by the description identifier.
// See https://confluence.ihtsdotools.org/display/DOCRELFMT/4.2.4.+Language+Reference+Set
type LanguageRefsetMember struct {
	ID                    string
	EffectiveTime         uint32
	Active                bool
	ModuleID              Identifier
	RefsetID              Identifier
	ReferencedComponentID Identifier // the description identifier
	AcceptabilityID       Identifier
}

// IsPreferred returns whether the referenced description is preferred in this
// language refset.
func (m *LanguageRefsetMember) IsPreferred() bool {
	return m.AcceptabilityID == PreferredConceptID
}

// IsAcceptable returns whether the referenced description is acceptable (but not
// necessarily preferred) in this language refset.
func (m *LanguageRefsetMember) IsAcceptable() bool {
	return m.AcceptabilityID == AcceptableConceptID
}

// AssociationRefsetMember records a historical or cross-reference association
// between two components. The refset identifier classifies the association kind
// (replaced-by, same-as, moved-to, etc.).
type AssociationRefsetMember struct {
	ID                    string
	EffectiveTime         uint32
	Active                bool
	ModuleID              Identifier
	RefsetID              Identifier
	ReferencedComponentID Identifier
	TargetComponentID     Identifier
}

// MRCMDomain is a row of the MRCM Domain reference set, describing a semantic
// domain and the ECL constraints/templates that define it.
type MRCMDomain struct {
	ID                                  string
	EffectiveTime                       uint32
	Active                              bool
	ModuleID                            Identifier
	RefsetID                            Identifier
	ReferencedComponentID               Identifier // the domain concept
	DomainConstraint                    string
	ParentDomain                        Identifier // zero if absent
	ProximalPrimitiveConstraint         string
	ProximalPrimitiveRefinement         string
	DomainTemplateForPrecoordination    string
	DomainTemplateForPostcoordination   string
	GuideURL                            string
}

// MRCMAttributeDomain is a row of the MRCM Attribute Domain reference set,
// describing which attribute is valid in which domain.
type MRCMAttributeDomain struct {
	ID                           string
	EffectiveTime                uint32
	Active                       bool
	ModuleID                     Identifier
	RefsetID                     Identifier
	ReferencedComponentID        Identifier // the attribute concept
	DomainID                     Identifier
	Grouped                      bool
	AttributeCardinality         Cardinality
	AttributeInGroupCardinality  Cardinality
	RuleStrengthID               Identifier
	ContentTypeID                Identifier
}

// IsMandatory reports whether this rule's strength is mandatory rather than optional.
func (a *MRCMAttributeDomain) IsMandatory() bool {
	return a.RuleStrengthID == MandatoryConceptModelRuleConceptID
}

// MRCMAttributeRange is a row of the MRCM Attribute Range reference set,
// describing the ECL-constrained value range for an attribute.
type MRCMAttributeRange struct {
	ID                    string
	EffectiveTime         uint32
	Active                bool
	ModuleID              Identifier
	RefsetID              Identifier
	ReferencedComponentID Identifier // the attribute concept
	RangeConstraint       string
	AttributeRule         string
	RuleStrengthID        Identifier
	ContentTypeID         Identifier
}

// IsMandatory reports whether this rule's strength is mandatory rather than optional.
func (a *MRCMAttributeRange) IsMandatory() bool {
	return a.RuleStrengthID == MandatoryConceptModelRuleConceptID
}

// HasAttributeRule reports whether an additional machine-checkable rule is present.
func (a *MRCMAttributeRange) HasAttributeRule() bool {
	return a.AttributeRule != ""
}
