package terminology

import "github.com/eldrix/snomed-terminology/snomed"

// MRCMStore holds the three MRCM record families and offers the derived
// queries of §4.6. Keyed primarily by the attribute identifier (the
// referenced-component-id of attribute-domain/attribute-range rows), since
// every interesting question is "for attribute X, ...". Inactive rows are
// stored but filtered out of the predicate queries below.
type MRCMStore struct {
	domains          map[snomed.Identifier][]*snomed.MRCMDomain
	attributeDomains map[snomed.Identifier][]*snomed.MRCMAttributeDomain
	attributeRanges  map[snomed.Identifier][]*snomed.MRCMAttributeRange
}

func newMRCMStore() *MRCMStore {
	return &MRCMStore{
		domains:          make(map[snomed.Identifier][]*snomed.MRCMDomain),
		attributeDomains: make(map[snomed.Identifier][]*snomed.MRCMAttributeDomain),
		attributeRanges:  make(map[snomed.Identifier][]*snomed.MRCMAttributeRange),
	}
}

func (m *MRCMStore) insertDomain(d *snomed.MRCMDomain) {
	m.domains[d.ReferencedComponentID] = append(m.domains[d.ReferencedComponentID], d)
}

func (m *MRCMStore) insertAttributeDomain(d *snomed.MRCMAttributeDomain) {
	m.attributeDomains[d.ReferencedComponentID] = append(m.attributeDomains[d.ReferencedComponentID], d)
}

func (m *MRCMStore) insertAttributeRange(r *snomed.MRCMAttributeRange) {
	m.attributeRanges[r.ReferencedComponentID] = append(m.attributeRanges[r.ReferencedComponentID], r)
}

// AttributeDomains returns every row declaring attr valid in some domain.
func (m *MRCMStore) AttributeDomains(attr snomed.Identifier) []*snomed.MRCMAttributeDomain {
	return m.attributeDomains[attr]
}

// AttributeRanges returns every row declaring a range for attr.
func (m *MRCMStore) AttributeRanges(attr snomed.Identifier) []*snomed.MRCMAttributeRange {
	return m.attributeRanges[attr]
}

// Domain returns every row describing domain.
func (m *MRCMStore) Domain(domain snomed.Identifier) []*snomed.MRCMDomain {
	return m.domains[domain]
}

// IsAttributeValidInDomain reports whether any active attribute-domain row
// couples attr with domain.
func (m *MRCMStore) IsAttributeValidInDomain(attr, domain snomed.Identifier) bool {
	for _, d := range m.attributeDomains[attr] {
		if d.Active && d.DomainID == domain {
			return true
		}
	}
	return false
}

// IsAttributeGrouped reports whether any active attribute-domain row marks
// attr as grouped.
func (m *MRCMStore) IsAttributeGrouped(attr snomed.Identifier) bool {
	for _, d := range m.attributeDomains[attr] {
		if d.Active && d.Grouped {
			return true
		}
	}
	return false
}

// RangeConstraint returns the raw ECL range string of the first active range
// row for attr, or absent if none is active.
func (m *MRCMStore) RangeConstraint(attr snomed.Identifier) (string, bool) {
	for _, r := range m.attributeRanges[attr] {
		if r.Active {
			return r.RangeConstraint, true
		}
	}
	return "", false
}

// ValidDomainsForAttribute returns the domains of every active attribute-domain
// row for attr.
func (m *MRCMStore) ValidDomainsForAttribute(attr snomed.Identifier) []snomed.Identifier {
	var domains []snomed.Identifier
	for _, d := range m.attributeDomains[attr] {
		if d.Active {
			domains = append(domains, d.DomainID)
		}
	}
	return domains
}

// ValidAttributesForDomain returns the attribute identifiers of every active
// attribute-domain row whose domain is d. This requires a full scan since the
// sub-store is keyed by attribute, not domain.
func (m *MRCMStore) ValidAttributesForDomain(domain snomed.Identifier) []snomed.Identifier {
	var attrs []snomed.Identifier
	for attr, rows := range m.attributeDomains {
		for _, d := range rows {
			if d.Active && d.DomainID == domain {
				attrs = append(attrs, attr)
				break
			}
		}
	}
	return attrs
}
