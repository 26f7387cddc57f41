package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// ConceptColumns is the fixed RF2 column order for concept snapshot files.
var ConceptColumns = []string{"id", "effectiveTime", "active", "moduleId", "definitionStatusId"}

// DecodeConcept decodes one concept row. It is a pure function of the cell
// vector; it does not consult a filter.
func DecodeConcept(row []string) (*snomed.Concept, error) {
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
	defnID, err := parseIdentifier("definitionStatusId", row[4])
	if err != nil {
		return nil, err
	}
	return &snomed.Concept{ID: id, EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID, DefinitionStatusID: defnID}, nil
}

// ConceptPassesFilter reports whether a decoded concept should be emitted
// under cfg, exported so callers outside this package (the parallel loader)
// can apply the same filter after decoding off the serial stream.
func ConceptPassesFilter(c *snomed.Concept, cfg Config) bool {
	return !cfg.ActiveOnly || c.Active
}

// ConceptStream lazily decodes concept rows from a RowReader, applying cfg's
// filter and surfacing per-row decode errors instead of halting.
type ConceptStream struct {
	reader *RowReader
	cfg    Config
}

// OpenConcepts opens path and returns a lazily-decoding ConceptStream.
func OpenConcepts(path string, cfg Config) (*ConceptStream, error) {
	r, err := Open(path, ConceptColumns)
	if err != nil {
		return nil, err
	}
	return &ConceptStream{reader: r, cfg: cfg}, nil
}

// Next returns the next concept that passes the filter, a decode error for a
// row that failed to parse, or (nil, nil, false) once exhausted. Rows that
// decode successfully but are filtered out are skipped silently and do not
// appear at all.
func (s *ConceptStream) Next() (*snomed.Concept, error, bool) {
	for {
		row, rowErr, ok := s.reader.Next()
		if !ok {
			return nil, nil, false
		}
		if rowErr != nil {
			return nil, rowErr, true
		}
		c, err := DecodeConcept(row)
		if err != nil {
			if re, ok := err.(*RowError); ok {
				re.File, re.Line = s.reader.Filename(), s.reader.Line()
				return nil, re, true
			}
			return nil, &RowError{File: s.reader.Filename(), Line: s.reader.Line(), Err: err}, true
		}
		if !ConceptPassesFilter(c, s.cfg) {
			continue
		}
		return c, nil, true
	}
}

// Close releases the underlying file handle.
func (s *ConceptStream) Close() error { return s.reader.Close() }

// LoadConcepts streams path to completion, returning every concept that passed
// the filter and every per-row decode error encountered along the way. Callers
// that want to stop early should use OpenConcepts/Next directly.
func LoadConcepts(path string, cfg Config) ([]*snomed.Concept, []error, error) {
	s, err := OpenConcepts(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	defer s.Close()
	var concepts []*snomed.Concept
	var errs []error
	for {
		c, err, ok := s.Next()
		if !ok {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		concepts = append(concepts, c)
	}
	if err := s.reader.Err(); err != nil {
		return concepts, errs, err
	}
	return concepts, errs, nil
}

// LoadConceptsBatched accumulates decoded, filtered concepts up to cfg.BatchSize
// and hands each batch to sink, repeating until the file is exhausted. It
// returns the total count of concepts handed to sink. Per-row decode errors are
// silently dropped, matching the parallel load contract (§4.3.1); callers
// needing per-row visibility should use LoadConcepts instead.
func LoadConceptsBatched(path string, cfg Config, sink func([]*snomed.Concept) error) (int, error) {
	s, err := OpenConcepts(path, cfg)
	if err != nil {
		return 0, err
	}
	defer s.Close()
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 1000
	}
	total := 0
	batch := make([]*snomed.Concept, 0, batchSize)
	for {
		c, decodeErr, ok := s.Next()
		if !ok {
			break
		}
		if decodeErr != nil {
			continue
		}
		batch = append(batch, c)
		if len(batch) == batchSize {
			if err := sink(batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		if err := sink(batch); err != nil {
			return total, err
		}
		total += len(batch)
	}
	return total, s.reader.Err()
}
