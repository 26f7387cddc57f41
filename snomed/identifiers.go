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

import (
	"fmt"
	"strconv"

	"github.com/eldrix/snomed-terminology/verhoeff"
)

// Identifier (SCTID) is a checksummed (Verhoeff) globally unique persistent identifier.
// See https://confluence.ihtsdotools.org/display/DOCTIG/3.1.4.2.+Component+features+-+Identifiers
// The SCTID data type is a 64-bit unsigned integer allocated and represented in accordance with a
// set of rules. These rules enable each Identifier to refer unambiguously to a unique component.
// They also support separate partitions for allocation of Identifiers for particular types of
// component and namespaces that distinguish between different issuing organizations.
type Identifier uint64

// ParseIdentifier converts a string into an identifier.
func ParseIdentifier(s string) (Identifier, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid identifier %q: %w", s, err)
	}
	return Identifier(id), nil
}

// ParseAndValidate converts a string into an identifier and validates its check digit.
func ParseAndValidate(s string) (Identifier, error) {
	id, err := ParseIdentifier(s)
	if err != nil {
		return 0, err
	}
	if !id.IsValid() {
		return 0, fmt.Errorf("invalid identifier '%s': %w", s, ErrInvalidCheckDigit)
	}
	return id, nil
}

// Integer is a convenience method to convert to a signed 64-bit integer.
func (id Identifier) Integer() int64 {
	return int64(id)
}

// String returns a string representation of this identifier.
func (id Identifier) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IsConcept returns true if this identifier refers to a concept.
func (id Identifier) IsConcept() bool {
	pid := id.partitionIdentifier()
	return pid == "00" || pid == "10"
}

// IsDescription returns true if this identifier refers to a description.
func (id Identifier) IsDescription() bool {
	pid := id.partitionIdentifier()
	return pid == "01" || pid == "11"
}

// isRelationship returns true if this identifier refers to a relationship.
func (id Identifier) isRelationship() bool {
	pid := id.partitionIdentifier()
	return pid == "02" || pid == "12"
}

// IsValid returns true if this is a structurally valid SNOMED CT identifier: long
// enough to carry a partition identifier and check digit, and Verhoeff-compliant.
func (id Identifier) IsValid() bool {
	s := id.String()
	if len(s) < 6 {
		return false
	}
	return verhoeff.Validate(int64(id))
}

// partitionIdentifier returns the penultimate two digits, identifying the component type.
// see https://confluence.ihtsdotools.org/display/DOCRELFMT/5.5.+Partition+Identifier
// 0123456789
// xxxxxxxppc
func (id Identifier) partitionIdentifier() string {
	s := id.String()
	l := len(s)
	if l < 3 {
		return ""
	}
	return s[l-3 : l-1]
}
