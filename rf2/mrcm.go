package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// MRCMDomainColumns is the fixed RF2 column order for the MRCM Domain reference
// set snapshot file.
var MRCMDomainColumns = []string{
	"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId",
	"domainConstraint", "parentDomain", "proximalPrimitiveConstraint", "proximalPrimitiveRefinement",
	"domainTemplateForPrecoordination", "domainTemplateForPostcoordination", "guideURL",
}

// DecodeMRCMDomain decodes one MRCM Domain row. parentDomain and guideURL are
// optional cells in the original release; an empty cell decodes to the zero
// Identifier / empty string respectively rather than an error.
func DecodeMRCMDomain(row []string) (*snomed.MRCMDomain, error) {
	effectiveTime, err := parseEffectiveTime("effectiveTime", row[1])
	if err != nil {
		return nil, err
	}
	active, err := parseBoolean("active", row[2])
	if err != nil {
		return nil, err
	}
	moduleID, err := parseIdentifier("moduleId", row[3])
	if err != nil {
		return nil, err
	}
	refsetID, err := parseIdentifier("refsetId", row[4])
	if err != nil {
		return nil, err
	}
	referencedComponentID, err := parseIdentifier("referencedComponentId", row[5])
	if err != nil {
		return nil, err
	}
	var parentDomain snomed.Identifier
	if row[7] != "" {
		parentDomain, err = parseIdentifier("parentDomain", row[7])
		if err != nil {
			return nil, err
		}
	}
	return &snomed.MRCMDomain{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID,
		DomainConstraint: row[6], ParentDomain: parentDomain,
		ProximalPrimitiveConstraint:       row[8],
		ProximalPrimitiveRefinement:       row[9],
		DomainTemplateForPrecoordination:  row[10],
		DomainTemplateForPostcoordination: row[11],
		GuideURL:                          row[12],
	}, nil
}

func mrcmDomainPassesFilter(d *snomed.MRCMDomain, cfg Config) bool {
	return !cfg.ActiveOnly || d.Active
}

// LoadMRCMDomains streams path to completion.
func LoadMRCMDomains(path string, cfg Config) ([]*snomed.MRCMDomain, []error, error) {
	recs, errs, err := loadAll(path, MRCMDomainColumns,
		func(row []string) (interface{}, error) { return DecodeMRCMDomain(row) },
		func(rec interface{}) bool { return mrcmDomainPassesFilter(rec.(*snomed.MRCMDomain), cfg) })
	out := make([]*snomed.MRCMDomain, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.MRCMDomain)
	}
	return out, errs, err
}

// MRCMAttributeDomainColumns is the fixed RF2 column order for the MRCM
// Attribute Domain reference set snapshot file.
var MRCMAttributeDomainColumns = []string{
	"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId",
	"domainId", "grouped", "attributeCardinality", "attributeInGroupCardinality",
	"ruleStrengthId", "contentTypeId",
}

// DecodeMRCMAttributeDomain decodes one MRCM Attribute Domain row.
func DecodeMRCMAttributeDomain(row []string) (*snomed.MRCMAttributeDomain, error) {
	effectiveTime, err := parseEffectiveTime("effectiveTime", row[1])
	if err != nil {
		return nil, err
	}
	active, err := parseBoolean("active", row[2])
	if err != nil {
		return nil, err
	}
	moduleID, err := parseIdentifier("moduleId", row[3])
	if err != nil {
		return nil, err
	}
	refsetID, err := parseIdentifier("refsetId", row[4])
	if err != nil {
		return nil, err
	}
	referencedComponentID, err := parseIdentifier("referencedComponentId", row[5])
	if err != nil {
		return nil, err
	}
	domainID, err := parseIdentifier("domainId", row[6])
	if err != nil {
		return nil, err
	}
	grouped, err := parseBoolean("grouped", row[7])
	if err != nil {
		return nil, err
	}
	attrCard, err := parseCardinality("attributeCardinality", row[8])
	if err != nil {
		return nil, err
	}
	attrGroupCard, err := parseCardinality("attributeInGroupCardinality", row[9])
	if err != nil {
		return nil, err
	}
	ruleStrengthID, err := parseIdentifier("ruleStrengthId", row[10])
	if err != nil {
		return nil, err
	}
	contentTypeID, err := parseIdentifier("contentTypeId", row[11])
	if err != nil {
		return nil, err
	}
	return &snomed.MRCMAttributeDomain{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID, DomainID: domainID,
		Grouped: grouped, AttributeCardinality: attrCard, AttributeInGroupCardinality: attrGroupCard,
		RuleStrengthID: ruleStrengthID, ContentTypeID: contentTypeID,
	}, nil
}

func mrcmAttributeDomainPassesFilter(d *snomed.MRCMAttributeDomain, cfg Config) bool {
	return !cfg.ActiveOnly || d.Active
}

// LoadMRCMAttributeDomains streams path to completion.
func LoadMRCMAttributeDomains(path string, cfg Config) ([]*snomed.MRCMAttributeDomain, []error, error) {
	recs, errs, err := loadAll(path, MRCMAttributeDomainColumns,
		func(row []string) (interface{}, error) { return DecodeMRCMAttributeDomain(row) },
		func(rec interface{}) bool { return mrcmAttributeDomainPassesFilter(rec.(*snomed.MRCMAttributeDomain), cfg) })
	out := make([]*snomed.MRCMAttributeDomain, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.MRCMAttributeDomain)
	}
	return out, errs, err
}

// MRCMAttributeRangeColumns is the fixed RF2 column order for the MRCM
// Attribute Range reference set snapshot file.
var MRCMAttributeRangeColumns = []string{
	"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId",
	"rangeConstraint", "attributeRule", "ruleStrengthId", "contentTypeId",
}

// DecodeMRCMAttributeRange decodes one MRCM Attribute Range row.
func DecodeMRCMAttributeRange(row []string) (*snomed.MRCMAttributeRange, error) {
	effectiveTime, err := parseEffectiveTime("effectiveTime", row[1])
	if err != nil {
		return nil, err
	}
	active, err := parseBoolean("active", row[2])
	if err != nil {
		return nil, err
	}
	moduleID, err := parseIdentifier("moduleId", row[3])
	if err != nil {
		return nil, err
	}
	refsetID, err := parseIdentifier("refsetId", row[4])
	if err != nil {
		return nil, err
	}
	referencedComponentID, err := parseIdentifier("referencedComponentId", row[5])
	if err != nil {
		return nil, err
	}
	ruleStrengthID, err := parseIdentifier("ruleStrengthId", row[8])
	if err != nil {
		return nil, err
	}
	contentTypeID, err := parseIdentifier("contentTypeId", row[9])
	if err != nil {
		return nil, err
	}
	return &snomed.MRCMAttributeRange{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID,
		RangeConstraint: row[6], AttributeRule: row[7],
		RuleStrengthID: ruleStrengthID, ContentTypeID: contentTypeID,
	}, nil
}

func mrcmAttributeRangePassesFilter(d *snomed.MRCMAttributeRange, cfg Config) bool {
	return !cfg.ActiveOnly || d.Active
}

// LoadMRCMAttributeRanges streams path to completion.
func LoadMRCMAttributeRanges(path string, cfg Config) ([]*snomed.MRCMAttributeRange, []error, error) {
	recs, errs, err := loadAll(path, MRCMAttributeRangeColumns,
		func(row []string) (interface{}, error) { return DecodeMRCMAttributeRange(row) },
		func(rec interface{}) bool { return mrcmAttributeRangePassesFilter(rec.(*snomed.MRCMAttributeRange), cfg) })
	out := make([]*snomed.MRCMAttributeRange, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.MRCMAttributeRange)
	}
	return out, errs, err
}
