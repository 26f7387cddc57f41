package rf2

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestRowReaderShortRowIsARowError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sct2_Concept_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tdefinitionStatusId",
		"73211009\t20020131\t1", // missing moduleId and definitionStatusId
	)
	r, err := Open(path, ConceptColumns)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	_, rowErr, ok := r.Next()
	if !ok {
		t.Fatal("expected a row, even though malformed")
	}
	if rowErr == nil {
		t.Fatal("expected a *RowError for a short row")
	}
	var re *RowError
	if !errors.As(rowErr, &re) {
		t.Fatalf("expected *RowError, got %T", rowErr)
	}
	if !errors.Is(rowErr, ErrUnexpectedColumn) {
		t.Fatalf("expected error to wrap ErrUnexpectedColumn, got %v", rowErr)
	}
}

func TestRowReaderFullRowPassesThrough(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sct2_Concept_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tdefinitionStatusId",
		"73211009\t20020131\t1\t900000000000207008\t900000000000074008",
	)
	r, err := Open(path, ConceptColumns)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	row, rowErr, ok := r.Next()
	if !ok || rowErr != nil {
		t.Fatalf("unexpected result: row=%v err=%v ok=%v", row, rowErr, ok)
	}
	if len(row) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(row))
	}

	if _, _, ok := r.Next(); ok {
		t.Fatal("expected exhaustion after the single data row")
	}
}

func TestDecodeConceptDoesNotPanicOnShortRowViaStream(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sct2_Concept_Snapshot.txt",
		"id\teffectiveTime\tactive\tmoduleId\tdefinitionStatusId",
		"73211009\t20020131\t1", // short row: would index out of range if decoded directly
		"46635009\t20020131\t1\t900000000000207008\t900000000000074008",
	)
	concepts, errs, err := LoadConcepts(path, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadConcepts: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one row error, got %v", errs)
	}
	if len(concepts) != 1 || concepts[0].ID != 46635009 {
		t.Fatalf("expected only the well-formed concept, got %v", concepts)
	}
}
