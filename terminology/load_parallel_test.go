package terminology

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func writeRF2File(t *testing.T, dir, name, header string, rows ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := header + "\n"
	for _, row := range rows {
		content += row + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// diabetesFiles writes a minimal concept/description/relationship snapshot
// set containing one inactive concept and both a stated and an inferred IS-A
// relationship, so the active-only and characteristic-type filters have
// something to reject.
func diabetesFiles(t *testing.T) (Rf2Files, string) {
	t.Helper()
	dir := t.TempDir()

	concepts := writeRF2File(t, dir, "sct2_Concept_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tdefinitionStatusId",
		"73211009\t20020131\t1\t900000000000207008\t900000000000074008",
		"46635009\t20020131\t1\t900000000000207008\t900000000000074008",
		"999999999\t20020131\t0\t900000000000207008\t900000000000074008",
	)
	descriptions := writeRF2File(t, dir, "sct2_Description_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tconceptId\tlanguageCode\ttypeId\tterm\tcaseSignificanceId",
		"1\t20020131\t1\t900000000000207008\t73211009\ten\t900000000000003001\tDiabetes mellitus (disorder)\t900000000000448009",
		"2\t20020131\t1\t900000000000207008\t46635009\ten\t900000000000013009\tType 1 diabetes mellitus\t900000000000448009",
	)
	relationships := writeRF2File(t, dir, "sct2_Relationship_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tsourceId\tdestinationId\trelationshipGroup\ttypeId\tcharacteristicTypeId\tmodifierId",
		"1\t20020131\t1\t900000000000207008\t46635009\t73211009\t0\t116680003\t900000000000011006\t900000000000451002",
	)
	statedRelationships := writeRF2File(t, dir, "sct2_StatedRelationship_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tsourceId\tdestinationId\trelationshipGroup\ttypeId\tcharacteristicTypeId\tmodifierId",
		"2\t20020131\t1\t900000000000207008\t46635009\t73211009\t0\t116680003\t900000000000010007\t900000000000451002",
	)

	return Rf2Files{
		Concepts:            []string{concepts},
		Descriptions:        []string{descriptions},
		Relationships:       []string{relationships},
		StatedRelationships: []string{statedRelationships},
	}, dir
}

func discardLogger() *log.Logger { return log.New(io.Discard, "", 0) }

// TestLoadAndLoadParallelAgreeOnFiltering guards against §3's "filtered-out
// records are never inserted" invariant being honoured by one loader and
// silently dropped by the other: the inactive concept and the stated
// relationship must be excluded from both loaders under the default
// configuration.
func TestLoadAndLoadParallelAgreeOnFiltering(t *testing.T) {
	files, _ := diabetesFiles(t)
	cfg := DefaultLoadConfig()

	serial, err := Load(files, cfg, discardLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	parallel, err := LoadParallel(files, cfg, discardLogger())
	if err != nil {
		t.Fatalf("LoadParallel: %v", err)
	}

	for _, store := range []*Store{serial, parallel} {
		if store.HasConcept(999999999) {
			t.Error("inactive concept should have been filtered out")
		}
		if !store.HasConcept(73211009) || !store.HasConcept(46635009) {
			t.Error("active concepts should be present")
		}
		parents := store.GetParents(46635009)
		if len(parents) != 1 || parents[0] != 73211009 {
			t.Errorf("expected exactly the inferred IS-A edge, got %v", parents)
		}
	}

	if len(serial.AllConceptIDs()) != len(parallel.AllConceptIDs()) {
		t.Errorf("serial and parallel concept counts diverge: %d vs %d",
			len(serial.AllConceptIDs()), len(parallel.AllConceptIDs()))
	}
}
