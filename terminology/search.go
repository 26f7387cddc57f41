package terminology

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/analyzer/keyword"

	"github.com/eldrix/snomed-terminology/snomed"
)

// searchDocument is the unit indexed by bleve: one per non-FSN description,
// carrying a set of facet keywords alongside the free-text term.
type searchDocument struct {
	ID       string
	Term     string
	Keywords []string
}

// SearchIndex is a free-text and faceted search layer built from a Store's
// loaded descriptions, adapted to run entirely in memory (no on-disk index
// path, matching the in-memory scope of the rest of this package).
type SearchIndex struct {
	index bleve.Index
	store *Store
}

// NewSearchIndex builds an in-memory bleve index over store's descriptions.
// FSN descriptions are omitted, matching the source corpus's convention that
// the fully specified name is never the right autocomplete candidate.
func NewSearchIndex(store *Store) (*SearchIndex, error) {
	mapping := bleve.NewIndexMapping()
	documentMapping := bleve.NewDocumentMapping()
	mapping.AddDocumentMapping("document", documentMapping)
	mapping.DefaultType = "document"

	idMapping := bleve.NewTextFieldMapping()
	idMapping.IncludeInAll = false
	idMapping.IncludeTermVectors = false
	idMapping.Store = true
	idMapping.Analyzer = keyword.Name

	termMapping := bleve.NewTextFieldMapping()
	termMapping.Analyzer = "en"
	termMapping.Store = false
	documentMapping.AddFieldMappingsAt("Term", termMapping)

	keywordMapping := bleve.NewTextFieldMapping()
	keywordMapping.Analyzer = keyword.Name
	keywordMapping.Store = false
	keywordMapping.IncludeInAll = false
	keywordMapping.IncludeTermVectors = false
	documentMapping.AddFieldMappingsAt("Keywords", keywordMapping)

	index, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("building search index: %w", err)
	}

	si := &SearchIndex{index: index, store: store}
	if err := si.indexAll(); err != nil {
		index.Close()
		return nil, fmt.Errorf("populating search index: %w", err)
	}
	return si, nil
}

func (si *SearchIndex) indexAll() error {
	batch := si.index.NewBatch()
	for _, conceptID := range si.store.AllConceptIDs() {
		for _, d := range si.store.GetDescriptions(conceptID) {
			if d.IsFullySpecifiedName() {
				continue
			}
			doc := searchDocument{
				ID:       d.ID.String(),
				Term:     d.Term,
				Keywords: si.keywordsFor(conceptID, d),
			}
			if err := batch.Index(doc.ID, &doc); err != nil {
				return err
			}
		}
	}
	return si.index.Batch(batch)
}

// keywordsFor builds the facet vocabulary for a description: direct-parent
// and descendant-or-self hierarchy membership ("dp"/"rp", the latter
// including the concept itself so an IsA facet of X matches X and everything
// below it), refset membership ("cr"/"dr"), and active-state flags
// ("ca"/"da"), mirroring the corpus's faceted search convention.
func (si *SearchIndex) keywordsFor(conceptID snomed.Identifier, d *snomed.Description) []string {
	var words []string
	appendPrefixed(&words, "dp", si.store.GetParents(conceptID))
	appendPrefixed(&words, "rp", si.store.GetAllAncestorsOrSelf(conceptID))
	appendPrefixed(&words, "cr", si.store.GetRefsetsForComponent(conceptID))
	appendPrefixed(&words, "dr", si.store.GetRefsetsForComponent(d.ID))
	if c, ok := si.store.GetConcept(conceptID); ok && c.Active {
		words = append(words, "ca")
	}
	if d.Active {
		words = append(words, "da")
	}
	return words
}

func appendPrefixed(words *[]string, prefix string, ids []snomed.Identifier) {
	for _, id := range ids {
		*words = append(*words, prefix+id.String())
	}
}

// SearchRequest describes a free-text search with optional hierarchy and
// refset facet constraints.
type SearchRequest struct {
	Text              string
	IsA               []snomed.Identifier // restrict to descendants-or-self of these
	DirectParents     []snomed.Identifier
	ConceptRefsets    []snomed.Identifier
	DescriptionRefsets []snomed.Identifier
	IncludeInactive   bool
	MaximumHits       int
}

// Search runs a conjunctive token match (with prefix fallback for tokens of
// three characters or more) combined with the request's facet keywords,
// returning the matching description identifiers, most relevant first.
func (si *SearchIndex) Search(req SearchRequest) ([]snomed.Identifier, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("search: empty query text")
	}
	maxHits := req.MaximumHits
	if maxHits == 0 {
		maxHits = 100
	}

	query := bleve.NewConjunctionQuery()
	for _, token := range strings.Fields(req.Text) {
		tokenQuery := bleve.NewMatchQuery(token)
		tokenQuery.SetField("Term")
		if len(token) < 3 {
			query.AddQuery(tokenQuery)
			continue
		}
		alt := bleve.NewDisjunctionQuery()
		alt.AddQuery(tokenQuery)
		prefixQuery := bleve.NewPrefixQuery(token)
		prefixQuery.SetField("Term")
		alt.AddQuery(prefixQuery)
		query.AddQuery(alt)
	}

	var keywords []string
	appendPrefixed(&keywords, "rp", req.IsA)
	appendPrefixed(&keywords, "dp", req.DirectParents)
	appendPrefixed(&keywords, "cr", req.ConceptRefsets)
	appendPrefixed(&keywords, "dr", req.DescriptionRefsets)
	if !req.IncludeInactive {
		keywords = append(keywords, "ca")
	}
	if len(keywords) > 0 {
		facets := bleve.NewConjunctionQuery()
		for _, kw := range keywords {
			kq := bleve.NewTermQuery(kw)
			kq.SetField("Keywords")
			facets.AddQuery(kq)
		}
		query.AddQuery(facets)
	}

	request := bleve.NewSearchRequest(query)
	request.Size = maxHits
	result, err := si.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	descriptionIDs := make([]snomed.Identifier, 0, len(result.Hits))
	for _, hit := range result.Hits {
		id, err := snomed.ParseIdentifier(hit.ID)
		if err != nil {
			return nil, fmt.Errorf("search: decoding hit identifier %q: %w", hit.ID, err)
		}
		descriptionIDs = append(descriptionIDs, id)
	}
	return descriptionIDs, nil
}

// Close releases the index's resources.
func (si *SearchIndex) Close() error { return si.index.Close() }
