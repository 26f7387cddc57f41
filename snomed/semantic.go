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

package snomed

import "strings"

// Well-known concept identifiers hard-coded by the parser and store, predominantly
// for the SNOMED-CT metadata model. Kept in one table, keyed by symbolic name, so
// that the dependency on magic numbers is localized to this file.
const (
	// Definition status.
	PrimitiveConceptID     Identifier = 900000000000074008
	FullyDefinedConceptID  Identifier = 900000000000073002

	// Description types.
	FullySpecifiedNameConceptID Identifier = 900000000000003001
	SynonymConceptID            Identifier = 900000000000013009
	DefinitionConceptID         Identifier = 900000000000550004

	// IS-A is the commonest type of relationship, defining the subsumption hierarchy.
	IsAConceptID Identifier = 116680003

	// Characteristic types.
	StatedRelationshipConceptID     Identifier = 900000000000010007
	InferredRelationshipConceptID   Identifier = 900000000000011006
	AdditionalRelationshipConceptID Identifier = 900000000000227009

	// Relationship modifiers.
	ExistentialModifierConceptID Identifier = 900000000000451002
	UniversalModifierConceptID   Identifier = 900000000000450001

	// Language acceptability.
	PreferredConceptID  Identifier = 900000000000548007
	AcceptableConceptID Identifier = 900000000000549004

	// Association refsets.
	ReplacedByAssociationRefsetID    Identifier = 900000000000526001
	SameAsAssociationRefsetID        Identifier = 900000000000527005
	WasAAssociationRefsetID          Identifier = 900000000000528000
	MovedToAssociationRefsetID       Identifier = 900000000000524003
	MovedFromAssociationRefsetID     Identifier = 900000000000525002
	PossiblyEquivalentToAssociationRefsetID Identifier = 900000000000523009
	AlternativeAssociationRefsetID   Identifier = 900000000000530003
	RefersToAssociationRefsetID      Identifier = 900000000000531004

	// OWL refsets.
	OWLAxiomRefsetID    Identifier = 733073007
	OWLOntologyRefsetID Identifier = 762103008

	// MRCM rule strength.
	MandatoryConceptModelRuleConceptID Identifier = 723597001
	OptionalConceptModelRuleConceptID  Identifier = 723598006

	// MRCM refset identifiers.
	MRCMDomainRefsetID          Identifier = 723560006
	MRCMAttributeDomainRefsetID Identifier = 723604009
	MRCMAttributeRangeRefsetID  Identifier = 723592005

	// The British English Language Reference Set, the teacher's one concrete
	// language refset example.
	BritishEnglishLanguageReferenceSetConceptID Identifier = 900000000000508004
)

// SemanticTag extracts the parenthesised semantic tag suffix from a fully specified
// name, e.g. "Diabetes mellitus (disorder)" -> "disorder". When no parenthesised
// suffix exists, or the last '(' does not precede the last ')', no tag is reported.
func SemanticTag(fsn string) (string, bool) {
	open := strings.LastIndex(fsn, "(")
	close := strings.LastIndex(fsn, ")")
	if open < 0 || close < 0 || open >= close {
		return "", false
	}
	return fsn[open+1 : close], true
}
