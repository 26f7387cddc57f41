package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// RelationshipColumns is the fixed RF2 column order for relationship snapshot files.
var RelationshipColumns = []string{"id", "effectiveTime", "active", "moduleId", "sourceId", "destinationId", "relationshipGroup", "typeId", "characteristicTypeId", "modifierId"}

// DecodeRelationship decodes one relationship row.
func DecodeRelationship(row []string) (*snomed.Relationship, error) {
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
	destinationID, err := parseIdentifier("destinationId", row[5])
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
	return &snomed.Relationship{
		ID: id, EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		SourceID: sourceID, DestinationID: destinationID, RelationshipGroup: uint16(relGroup),
		TypeID: typeID, CharacteristicTypeID: charTypeID, ModifierID: modifierID,
	}, nil
}

// RelationshipPassesFilter reports whether a decoded relationship should be
// emitted under cfg. Exported so the parallel loader can apply it after
// decoding off the serial stream.
func RelationshipPassesFilter(r *snomed.Relationship, cfg RelationshipConfig) bool {
	if cfg.ActiveOnly && !r.Active {
		return false
	}
	return cfg.characteristicTypeAllowed(r.CharacteristicTypeID)
}

// RelationshipStream lazily decodes relationship rows, applying cfg's filter.
type RelationshipStream struct {
	inner *familyStream
}

// OpenRelationships opens path and returns a lazily-decoding RelationshipStream.
func OpenRelationships(path string, cfg RelationshipConfig) (*RelationshipStream, error) {
	s, err := openFamilyStream(path, RelationshipColumns,
		func(row []string) (interface{}, error) { return DecodeRelationship(row) },
		func(rec interface{}) bool { return RelationshipPassesFilter(rec.(*snomed.Relationship), cfg) })
	if err != nil {
		return nil, err
	}
	return &RelationshipStream{inner: s}, nil
}

// Next returns the next filtered relationship, a decode error, or false once exhausted.
func (s *RelationshipStream) Next() (*snomed.Relationship, error, bool) {
	rec, err, ok := s.inner.next()
	if !ok || err != nil {
		return nil, err, ok
	}
	return rec.(*snomed.Relationship), nil, true
}

// Close releases the underlying file handle.
func (s *RelationshipStream) Close() error { return s.inner.close() }

// LoadRelationships streams path to completion.
func LoadRelationships(path string, cfg RelationshipConfig) ([]*snomed.Relationship, []error, error) {
	recs, errs, err := loadAll(path, RelationshipColumns,
		func(row []string) (interface{}, error) { return DecodeRelationship(row) },
		func(rec interface{}) bool { return RelationshipPassesFilter(rec.(*snomed.Relationship), cfg) })
	relationships := make([]*snomed.Relationship, len(recs))
	for i, r := range recs {
		relationships[i] = r.(*snomed.Relationship)
	}
	return relationships, errs, err
}

// LoadRelationshipsBatched drains path in batches, silently dropping per-row decode errors.
func LoadRelationshipsBatched(path string, cfg RelationshipConfig, sink func([]*snomed.Relationship) error) (int, error) {
	return loadAllBatched(path, RelationshipColumns,
		func(row []string) (interface{}, error) { return DecodeRelationship(row) },
		func(rec interface{}) bool { return RelationshipPassesFilter(rec.(*snomed.Relationship), cfg) },
		cfg.BatchSize,
		func(batch []interface{}) error {
			typed := make([]*snomed.Relationship, len(batch))
			for i, r := range batch {
				typed[i] = r.(*snomed.Relationship)
			}
			return sink(typed)
		})
}
