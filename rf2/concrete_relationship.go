package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// ConcreteRelationshipColumns is the fixed RF2 column order for the "Relationship
// Concrete Values" snapshot files: identical to relationship rows, but the
// destination cell is a tagged concrete-value literal (§3, §6.3).
var ConcreteRelationshipColumns = []string{"id", "effectiveTime", "active", "moduleId", "sourceId", "value", "relationshipGroup", "typeId", "characteristicTypeId", "modifierId"}

// DecodeConcreteRelationship decodes one concrete-relationship row, dispatching
// the value cell into a string/integer/decimal ConcreteValue.
func DecodeConcreteRelationship(row []string) (*snomed.ConcreteRelationship, error) {
	id, err := parseIdentifier("id", row[0])
	if err != nil {
		return nil, err
	}
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
	sourceID, err := parseIdentifier("sourceId", row[4])
	if err != nil {
		return nil, err
	}
	value, err := parseConcreteValue("value", row[5])
	if err != nil {
		return nil, err
	}
	relGroup, err := parseInteger("relationshipGroup", row[6])
	if err != nil {
		return nil, err
	}
	typeID, err := parseIdentifier("typeId", row[7])
	if err != nil {
		return nil, err
	}
	charTypeID, err := parseIdentifier("characteristicTypeId", row[8])
	if err != nil {
		return nil, err
	}
	modifierID, err := parseIdentifier("modifierId", row[9])
	if err != nil {
		return nil, err
	}
	return &snomed.ConcreteRelationship{
		ID: id, EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		SourceID: sourceID, Value: value, RelationshipGroup: uint16(relGroup),
		TypeID: typeID, CharacteristicTypeID: charTypeID, ModifierID: modifierID,
	}, nil
}

func concreteRelationshipPassesFilter(r *snomed.ConcreteRelationship, cfg RelationshipConfig) bool {
	if cfg.ActiveOnly && !r.Active {
		return false
	}
	return cfg.characteristicTypeAllowed(r.CharacteristicTypeID)
}

// LoadConcreteRelationships streams path to completion.
func LoadConcreteRelationships(path string, cfg RelationshipConfig) ([]*snomed.ConcreteRelationship, []error, error) {
	recs, errs, err := loadAll(path, ConcreteRelationshipColumns,
		func(row []string) (interface{}, error) { return DecodeConcreteRelationship(row) },
		func(rec interface{}) bool { return concreteRelationshipPassesFilter(rec.(*snomed.ConcreteRelationship), cfg) })
	out := make([]*snomed.ConcreteRelationship, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.ConcreteRelationship)
	}
	return out, errs, err
}
