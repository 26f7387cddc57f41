package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// OWLExpressionColumns is the fixed RF2 column order for OWL axiom/ontology
// reference set snapshot files.
var OWLExpressionColumns = []string{"id", "effectiveTime", "active", "moduleId", "refsetId", "referencedComponentId", "owlExpression"}

// DecodeOWLExpression decodes one OWL expression refset member row. The
// expression text is stored verbatim; it is never parsed or classified (§3).
func DecodeOWLExpression(row []string) (*snomed.OWLExpression, error) {
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
	refsetID, err := parseIdentifier("refsetId", row[4])
	if err != nil {
		return nil, err
	}
	referencedComponentID, err := parseIdentifier("referencedComponentId", row[5])
	if err != nil {
		return nil, err
	}
	return &snomed.OWLExpression{
		ID: row[0], EffectiveTime: effectiveTime, Active: active, ModuleID: moduleID,
		RefsetID: refsetID, ReferencedComponentID: referencedComponentID, OWLExpression: row[6],
	}, nil
}

func owlExpressionPassesFilter(o *snomed.OWLExpression, cfg Config) bool {
	return !cfg.ActiveOnly || o.Active
}

// LoadOWLExpressions streams path to completion.
func LoadOWLExpressions(path string, cfg Config) ([]*snomed.OWLExpression, []error, error) {
	recs, errs, err := loadAll(path, OWLExpressionColumns,
		func(row []string) (interface{}, error) { return DecodeOWLExpression(row) },
		func(rec interface{}) bool { return owlExpressionPassesFilter(rec.(*snomed.OWLExpression), cfg) })
	out := make([]*snomed.OWLExpression, len(recs))
	for i, r := range recs {
		out[i] = r.(*snomed.OWLExpression)
	}
	return out, errs, err
}
