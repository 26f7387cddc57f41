package terminology

import (
	"log"
	"runtime"
	"sync"

	"github.com/eldrix/snomed-terminology/rf2"
	"github.com/eldrix/snomed-terminology/snomed"
)

// LoadParallel runs the bulk-synchronous alternative loader (§4.3.1, §5): for
// each of the concept, description, and relationship files, the whole file is
// read into memory on an I/O goroutine, decoding is fanned out across a
// worker pool, and the decoded records are joined before a single serial pass
// merges them into the store. The three file families run concurrently with
// each other (up to three files in flight); the merge step never overlaps
// itself because it only begins once every decode goroutine has joined.
//
// Only concept, description (including text definition), and relationship
// (inferred and stated) files are loaded; concrete-relationship, OWL, refset,
// and MRCM files listed in files are not read, so the returned store has none
// of those records.
//
// Per-family filters (active-only, language/type restriction, characteristic
// type) are applied during decode, exactly as in Load, so the two loaders
// agree on which concept, description, and relationship rows end up in the
// store. Per-row decode errors are silently
// dropped in this mode — the line is simply absent from the result — which
// differs from Load's streaming behaviour of surfacing them. This divergence
// is documented, not accidental: callers needing per-row visibility should
// prefer Load.
func LoadParallel(files Rf2Files, cfg LoadConfig, logger *log.Logger) (*Store, error) {
	store := NewStore()

	type job struct {
		name   string
		run    func() (interface{}, error)
		insert func(interface{})
	}

	jobs := []job{
		{
			name: "concepts",
			run: func() (interface{}, error) {
				return decodeFileParallel(files.Concepts, rf2.ConceptColumns,
					func(row []string) (interface{}, error) { return rf2.DecodeConcept(row) },
					func(rec interface{}) bool { return rf2.ConceptPassesFilter(rec.(*snomed.Concept), cfg.Concepts) })
			},
			insert: func(v interface{}) {
				for _, c := range v.([]interface{}) {
					store.InsertConcept(c.(*snomed.Concept))
				}
			},
		},
		{
			name: "descriptions",
			run: func() (interface{}, error) {
				return decodeFileParallel(append(append([]string{}, files.Descriptions...), files.TextDefinitions...),
					rf2.DescriptionColumns,
					func(row []string) (interface{}, error) { return rf2.DecodeDescription(row) },
					func(rec interface{}) bool { return rf2.DescriptionPassesFilter(rec.(*snomed.Description), cfg.Descriptions) })
			},
			insert: func(v interface{}) {
				for _, d := range v.([]interface{}) {
					store.InsertDescription(d.(*snomed.Description))
				}
			},
		},
		{
			name: "relationships",
			run: func() (interface{}, error) {
				return decodeFileParallel(append(append([]string{}, files.Relationships...), files.StatedRelationships...),
					rf2.RelationshipColumns,
					func(row []string) (interface{}, error) { return rf2.DecodeRelationship(row) },
					func(rec interface{}) bool { return rf2.RelationshipPassesFilter(rec.(*snomed.Relationship), cfg.Relationships) })
			},
			insert: func(v interface{}) {
				for _, r := range v.([]interface{}) {
					store.InsertRelationship(r.(*snomed.Relationship))
				}
			},
		},
	}

	results := make([]interface{}, len(jobs))
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			v, err := j.run()
			results[i] = v
			errs[i] = err
		}(i, j)
	}
	wg.Wait() // join: the parallel decode phase ends here

	// Merge serially; this is the only writer to store indexes and does not overlap itself.
	for i, j := range jobs {
		if errs[i] != nil {
			logger.Printf("parallel load of %s failed: %v", j.name, errs[i])
			return nil, errs[i]
		}
		j.insert(results[i])
	}

	return store, nil
}

// decodeFileParallel reads every listed file's rows into memory, fans out
// decoding across a bounded worker pool, and returns the records that both
// decoded successfully and passed filter, in file-then-line order. Decode
// errors, and rows filter rejects, are dropped.
func decodeFileParallel(paths []string, columns []string, decode func(row []string) (interface{}, error), filter func(rec interface{}) bool) ([]interface{}, error) {
	var all []interface{}
	for _, path := range paths {
		reader, err := rf2.Open(path, columns)
		if err != nil {
			return nil, err
		}
		var rows [][]string
		for {
			row, rowErr, ok := reader.Next()
			if !ok {
				break
			}
			if rowErr != nil {
				continue
			}
			rows = append(rows, row)
		}
		readErr := reader.Err()
		reader.Close()
		if readErr != nil {
			return nil, readErr
		}

		decoded := make([]interface{}, len(rows))
		workers := runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
		if workers > len(rows) && len(rows) > 0 {
			workers = len(rows)
		}
		var wg sync.WaitGroup
		chunk := (len(rows) + workers - 1) / max1(workers)
		for w := 0; w < workers; w++ {
			start := w * chunk
			end := start + chunk
			if start >= len(rows) {
				break
			}
			if end > len(rows) {
				end = len(rows)
			}
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					rec, err := decode(rows[i])
					if err != nil || !filter(rec) {
						continue
					}
					decoded[i] = rec
				}
			}(start, end)
		}
		wg.Wait()

		for _, rec := range decoded {
			if rec != nil {
				all = append(all, rec)
			}
		}
	}
	return all, nil
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
