package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// DescriptionColumns is the fixed RF2 column order for description snapshot files.
var DescriptionColumns = []string{"id", "effectiveTime", "active", "moduleId", "conceptId", "languageCode", "typeId", "term", "caseSignificanceId"}

// DecodeDescription decodes one description row.
func DecodeDescription(row []string) (*snomed.Description, error) {
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
	conceptID, err := parseIdentifier("conceptId", row[4])
	if err != nil {
		return nil, err
	}
	typeID, err := parseIdentifier("typeId", row[6])
	if err != nil {
		return nil, err
	}
	caseSigID, err := parseIdentifier("caseSignificanceId", row[8])
	if err != nil {
		return nil, err
	}
	return &snomed.Description{
		ID: id, EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		ConceptID: conceptID, LanguageCode: row[5], TypeID: typeID, Term: row[7], CaseSignificance: caseSigID,
	}, nil
}

// DescriptionPassesFilter reports whether a decoded description should be
// emitted under cfg. Exported so the parallel loader can apply it after
// decoding off the serial stream.
func DescriptionPassesFilter(d *snomed.Description, cfg DescriptionConfig) bool {
	if cfg.ActiveOnly && !d.Active {
		return false
	}
	if !cfg.languageAllowed(d.LanguageCode) {
		return false
	}
	if !cfg.typeAllowed(d.TypeID) {
		return false
	}
	return true
}

// DescriptionStream lazily decodes description rows, applying cfg's filter.
type DescriptionStream struct {
	inner *familyStream
	cfg   DescriptionConfig
}

// OpenDescriptions opens path and returns a lazily-decoding DescriptionStream.
func OpenDescriptions(path string, cfg DescriptionConfig) (*DescriptionStream, error) {
	s, err := openFamilyStream(path, DescriptionColumns,
		func(row []string) (interface{}, error) { return DecodeDescription(row) },
		func(rec interface{}) bool { return DescriptionPassesFilter(rec.(*snomed.Description), cfg) })
	if err != nil {
		return nil, err
	}
	return &DescriptionStream{inner: s, cfg: cfg}, nil
}

// Next returns the next filtered description, a decode error, or false once exhausted.
func (s *DescriptionStream) Next() (*snomed.Description, error, bool) {
	rec, err, ok := s.inner.next()
	if !ok || err != nil {
		return nil, err, ok
	}
	return rec.(*snomed.Description), nil, true
}

// Close releases the underlying file handle.
func (s *DescriptionStream) Close() error { return s.inner.close() }

// LoadDescriptions streams path to completion.
func LoadDescriptions(path string, cfg DescriptionConfig) ([]*snomed.Description, []error, error) {
	recs, errs, err := loadAll(path, DescriptionColumns,
		func(row []string) (interface{}, error) { return DecodeDescription(row) },
		func(rec interface{}) bool { return DescriptionPassesFilter(rec.(*snomed.Description), cfg) })
	descriptions := make([]*snomed.Description, len(recs))
	for i, r := range recs {
		descriptions[i] = r.(*snomed.Description)
	}
	return descriptions, errs, err
}

// LoadDescriptionsBatched drains path in batches, silently dropping per-row decode errors.
func LoadDescriptionsBatched(path string, cfg DescriptionConfig, sink func([]*snomed.Description) error) (int, error) {
	return loadAllBatched(path, DescriptionColumns,
		func(row []string) (interface{}, error) { return DecodeDescription(row) },
		func(rec interface{}) bool { return DescriptionPassesFilter(rec.(*snomed.Description), cfg) },
		cfg.BatchSize,
		func(batch []interface{}) error {
			typed := make([]*snomed.Description, len(batch))
			for i, r := range batch {
				typed[i] = r.(*snomed.Description)
			}
			return sink(typed)
		})
}
