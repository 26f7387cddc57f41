package terminology

import (
	"testing"

	"github.com/eldrix/snomed-terminology/snomed"
)

func diabetesStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore()
	store.InsertConcept(&snomed.Concept{ID: 73211009, Active: true, DefinitionStatusID: snomed.PrimitiveConceptID})
	store.InsertConcept(&snomed.Concept{ID: 46635009, Active: true, DefinitionStatusID: snomed.PrimitiveConceptID})
	store.InsertDescription(&snomed.Description{ID: 1, ConceptID: 73211009, Active: true, TypeID: snomed.FullySpecifiedNameConceptID, Term: "Diabetes mellitus (disorder)"})
	store.InsertDescription(&snomed.Description{ID: 2, ConceptID: 73211009, Active: true, TypeID: snomed.SynonymConceptID, Term: "Diabetes mellitus"})
	store.InsertDescription(&snomed.Description{ID: 3, ConceptID: 46635009, Active: true, TypeID: snomed.SynonymConceptID, Term: "Type 1 diabetes mellitus"})
	store.InsertRelationship(&snomed.Relationship{ID: 1, Active: true, SourceID: 46635009, DestinationID: 73211009, TypeID: snomed.IsAConceptID})
	return store
}

func TestSearchIndexFindsSynonymNotFSN(t *testing.T) {
	store := diabetesStore(t)
	idx, err := NewSearchIndex(store)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(SearchRequest{Text: "diabetes"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("expected at least one hit for 'diabetes'")
	}
	for _, id := range hits {
		if id == 1 {
			t.Fatal("FSN description should never be indexed")
		}
	}
}

func TestSearchIndexFacetRestrictsToDescendants(t *testing.T) {
	store := diabetesStore(t)
	idx, err := NewSearchIndex(store)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	defer idx.Close()

	hits, err := idx.Search(SearchRequest{Text: "diabetes", IsA: []snomed.Identifier{46635009}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(hits) != 1 || hits[0] != 3 {
		t.Fatalf("expected only description 3 (under 46635009), got %v", hits)
	}
}

func TestSearchIndexRejectsEmptyQuery(t *testing.T) {
	store := diabetesStore(t)
	idx, err := NewSearchIndex(store)
	if err != nil {
		t.Fatalf("building index: %v", err)
	}
	defer idx.Close()

	if _, err := idx.Search(SearchRequest{Text: "   "}); err == nil {
		t.Fatal("expected error for empty query text")
	}
}
