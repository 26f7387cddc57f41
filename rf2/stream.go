package rf2

// decodeFunc decodes one row into a typed record, boxed as interface{} so a
// single streaming engine can serve every record family — the same dispatch
// shape the batched importer in the example corpus used for its handler
// callbacks, adapted here to return rather than invoke.
type decodeFunc func(row []string) (interface{}, error)

// filterFunc reports whether a successfully decoded record should be emitted.
type filterFunc func(record interface{}) bool

// familyStream drives a RowReader through a family's decode/filter pair. It
// underlies the typed DescriptionStream and RelationshipStream wrappers and the
// Load* helpers of every family except concepts (ConceptStream drives its
// RowReader directly); callers interact with the typed wrappers, never with
// this type directly.
type familyStream struct {
	reader *RowReader
	decode decodeFunc
	filter filterFunc
}

func openFamilyStream(path string, columns []string, decode decodeFunc, filter filterFunc) (*familyStream, error) {
	r, err := Open(path, columns)
	if err != nil {
		return nil, err
	}
	return &familyStream{reader: r, decode: decode, filter: filter}, nil
}

// next returns the next record that passes the filter, a decode error wrapped
// with file/line context, or (nil, nil, false) once exhausted.
func (s *familyStream) next() (interface{}, error, bool) {
	for {
		row, rowErr, ok := s.reader.Next()
		if !ok {
			return nil, nil, false
		}
		if rowErr != nil {
			return nil, rowErr, true
		}
		record, err := s.decode(row)
		if err != nil {
			if re, ok := err.(*RowError); ok {
				re.File, re.Line = s.reader.Filename(), s.reader.Line()
				return nil, re, true
			}
			return nil, &RowError{File: s.reader.Filename(), Line: s.reader.Line(), Err: err}, true
		}
		if s.filter != nil && !s.filter(record) {
			continue
		}
		return record, nil, true
	}
}

func (s *familyStream) close() error { return s.reader.Close() }

// loadAll drains a family stream to completion, returning every record that
// passed the filter and every per-row decode error in encounter order.
func loadAll(path string, columns []string, decode decodeFunc, filter filterFunc) ([]interface{}, []error, error) {
	s, err := openFamilyStream(path, columns, decode, filter)
	if err != nil {
		return nil, nil, err
	}
	defer s.close()
	var records []interface{}
	var errs []error
	for {
		rec, err, ok := s.next()
		if !ok {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, rec)
	}
	if err := s.reader.Err(); err != nil {
		return records, errs, err
	}
	return records, errs, nil
}

// loadAllBatched drains a family stream in batches, handing each to sink.
// Per-row decode errors are silently dropped, matching the parallel-load
// contract (§4.3.1).
func loadAllBatched(path string, columns []string, decode decodeFunc, filter filterFunc, batchSize int, sink func([]interface{}) error) (int, error) {
	s, err := openFamilyStream(path, columns, decode, filter)
	if err != nil {
		return 0, err
	}
	defer s.close()
	if batchSize <= 0 {
		batchSize = 1000
	}
	total := 0
	batch := make([]interface{}, 0, batchSize)
	for {
		rec, decodeErr, ok := s.next()
		if !ok {
			break
		}
		if decodeErr != nil {
			continue
		}
		batch = append(batch, rec)
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
