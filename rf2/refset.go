package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// SimpleRefsetColumns is the fixed RF2 column order for simple reference set
// snapshot files.
var SimpleRefsetColumns = []string{"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId"}

// DecodeSimpleRefsetMember decodes one simple refset member row.
func DecodeSimpleRefsetMember(row []string) (*snomed.SimpleRefsetMember, error) {
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
	return &snomed.SimpleRefsetMember{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID,
	}, nil
}

func simpleRefsetMemberPassesFilter(m *snomed.SimpleRefsetMember, cfg Config) bool {
	return !cfg.ActiveOnly || m.Active
}

// LoadSimpleRefsetMembers streams path to completion.
func LoadSimpleRefsetMembers(path string, cfg Config) ([]*snomed.SimpleRefsetMember, []error, error) {
	recs, errs, err := loadAll(path, SimpleRefsetColumns,
		func(row []string) (interface{}, error) { return DecodeSimpleRefsetMember(row) },
		func(rec interface{}) bool { return simpleRefsetMemberPassesFilter(rec.(*snomed.SimpleRefsetMember), cfg) })
	out := make([]*snomed.SimpleRefsetMember, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.SimpleRefsetMember)
	}
	return out, errs, err
}

// LanguageRefsetColumns is the fixed RF2 column order for language reference set
// snapshot files.
var LanguageRefsetColumns = []string{"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId", "acceptabilityId"}

// DecodeLanguageRefsetMember decodes one language refset member row.
func DecodeLanguageRefsetMember(row []string) (*snomed.LanguageRefsetMember, error) {
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
	acceptabilityID, err := parseIdentifier("acceptabilityId", row[6])
	if err != nil {
		return nil, err
	}
	return &snomed.LanguageRefsetMember{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID, AcceptabilityID: acceptabilityID,
	}, nil
}

func languageRefsetMemberPassesFilter(m *snomed.LanguageRefsetMember, cfg Config) bool {
	return !cfg.ActiveOnly || m.Active
}

// LoadLanguageRefsetMembers streams path to completion.
func LoadLanguageRefsetMembers(path string, cfg Config) ([]*snomed.LanguageRefsetMember, []error, error) {
	recs, errs, err := loadAll(path, LanguageRefsetColumns,
		func(row []string) (interface{}, error) { return DecodeLanguageRefsetMember(row) },
		func(rec interface{}) bool { return languageRefsetMemberPassesFilter(rec.(*snomed.LanguageRefsetMember), cfg) })
	out := make([]*snomed.LanguageRefsetMember, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.LanguageRefsetMember)
	}
	return out, errs, err
}

// AssociationRefsetColumns is the fixed RF2 column order for association
// reference set snapshot files.
var AssociationRefsetColumns = []string{"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId", "targetComponentId"}

// DecodeAssociationRefsetMember decodes one association refset member row.
func DecodeAssociationRefsetMember(row []string) (*snomed.AssociationRefsetMember, error) {
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
	targetComponentID, err := parseIdentifier("targetComponentId", row[6])
	if err != nil {
		return nil, err
	}
	return &snomed.AssociationRefsetMember{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID, TargetComponentID: targetComponentID,
	}, nil
}

func associationRefsetMemberPassesFilter(m *snomed.AssociationRefsetMember, cfg Config) bool {
	return !cfg.ActiveOnly || m.Active
}

// LoadAssociationRefsetMembers streams path to completion.
func LoadAssociationRefsetMembers(path string, cfg Config) ([]*snomed.AssociationRefsetMember, []error, error) {
	recs, errs, err := loadAll(path, AssociationRefsetColumns,
		func(row []string) (interface{}, error) { return DecodeAssociationRefsetMember(row) },
		func(rec interface{}) bool { return associationRefsetMemberPassesFilter(rec.(*snomed.AssociationRefsetMember), cfg) })
	out := make([]*snomed.AssociationRefsetMember, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.AssociationRefsetMember)
	}
	return out, errs, err
}
