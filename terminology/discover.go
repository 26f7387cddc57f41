package terminology

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Rf2Files groups the paths discovered under a release directory by record
// family, following the filename convention documented in §6.1
// (sct2_<Kind>_Snapshot[_<lang>]_INT_<YYYYMMDD>.txt). Concept, Description,
// and Relationship are required for successful discovery; every other field
// may legitimately be empty.
type Rf2Files struct {
	Concepts               []string
	Descriptions           []string
	TextDefinitions        []string
	Relationships          []string
	StatedRelationships    []string
	ConcreteRelationships  []string
	OWLExpressions         []string
	MRCMDomain             []string
	MRCMAttributeDomain    []string
	MRCMAttributeRange     []string
	SimpleRefsets          []string
	AssociationRefsets     []string
	LanguageRefsets        []string
}

type fileFamily int

const (
	familyConcept fileFamily = iota
	familyDescription
	familyTextDefinition
	familyRelationship
	familyStatedRelationship
	familyConcreteRelationship
	familyOWLExpression
	familyMRCMDomain
	familyMRCMAttributeDomain
	familyMRCMAttributeRange
	familySimpleRefset
	familyAssociationRefset
	familyLanguageRefset
)

// filenamePatterns mirrors the teacher's per-family regex table, extended to
// the full set of RF2 families this store understands.
var filenamePatterns = map[fileFamily]*regexp.Regexp{
	familyConcept:              regexp.MustCompile(`^sct2_Concept_Snapshot\S*\.txt$`),
	familyDescription:          regexp.MustCompile(`^sct2_Description_Snapshot\S*\.txt$`),
	familyTextDefinition:       regexp.MustCompile(`^sct2_TextDefinition_Snapshot\S*\.txt$`),
	familyStatedRelationship:   regexp.MustCompile(`^sct2_StatedRelationship_Snapshot\S*\.txt$`),
	familyRelationship:         regexp.MustCompile(`^sct2_Relationship_Snapshot\S*\.txt$`),
	familyConcreteRelationship: regexp.MustCompile(`^sct2_RelationshipConcreteValues\S*\.txt$`),
	familyOWLExpression:        regexp.MustCompile(`^sct2_sRefset_OWL\S*Snapshot\S*\.txt$`),
	familyMRCMDomain:           regexp.MustCompile(`^der2_\S*RefsetMRCMDomainSnapshot\S*\.txt$`),
	familyMRCMAttributeDomain:  regexp.MustCompile(`^der2_\S*RefsetMRCMAttributeDomainSnapshot\S*\.txt$`),
	familyMRCMAttributeRange:   regexp.MustCompile(`^der2_\S*RefsetMRCMAttributeRangeSnapshot\S*\.txt$`),
	familySimpleRefset:         regexp.MustCompile(`^der2_Refset_SimpleRefsetSnapshot\S*\.txt$`),
	familyAssociationRefset:    regexp.MustCompile(`^der2_\S*RefsetAssociationSnapshot\S*\.txt$`),
	familyLanguageRefset:       regexp.MustCompile(`^der2_cRefset_LanguageSnapshot\S*\.txt$`),
}

func classify(filename string) (fileFamily, bool) {
	for family, pattern := range filenamePatterns {
		if pattern.MatchString(filename) {
			return family, true
		}
	}
	return -1, false
}

// DiscoverFiles walks root, classifying every file by its RF2 filename
// convention. Required families (concept, description, inferred relationship)
// missing from the walk produce an error naming the family; every other
// family is optional and simply comes back with an empty slice.
func DiscoverFiles(root string) (Rf2Files, error) {
	var files Rf2Files
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		family, ok := classify(filepath.Base(path))
		if !ok {
			return nil
		}
		switch family {
		case familyConcept:
			files.Concepts = append(files.Concepts, path)
		case familyDescription:
			files.Descriptions = append(files.Descriptions, path)
		case familyTextDefinition:
			files.TextDefinitions = append(files.TextDefinitions, path)
		case familyRelationship:
			files.Relationships = append(files.Relationships, path)
		case familyStatedRelationship:
			files.StatedRelationships = append(files.StatedRelationships, path)
		case familyConcreteRelationship:
			files.ConcreteRelationships = append(files.ConcreteRelationships, path)
		case familyOWLExpression:
			files.OWLExpressions = append(files.OWLExpressions, path)
		case familyMRCMDomain:
			files.MRCMDomain = append(files.MRCMDomain, path)
		case familyMRCMAttributeDomain:
			files.MRCMAttributeDomain = append(files.MRCMAttributeDomain, path)
		case familyMRCMAttributeRange:
			files.MRCMAttributeRange = append(files.MRCMAttributeRange, path)
		case familySimpleRefset:
			files.SimpleRefsets = append(files.SimpleRefsets, path)
		case familyAssociationRefset:
			files.AssociationRefsets = append(files.AssociationRefsets, path)
		case familyLanguageRefset:
			files.LanguageRefsets = append(files.LanguageRefsets, path)
		}
		return nil
	})
	if err != nil {
		return files, fmt.Errorf("walking %s: %w", root, err)
	}
	if len(files.Concepts) == 0 {
		return files, fmt.Errorf("%w: concept", ErrMissingFileFamily)
	}
	if len(files.Descriptions) == 0 {
		return files, fmt.Errorf("%w: description", ErrMissingFileFamily)
	}
	if len(files.Relationships) == 0 {
		return files, fmt.Errorf("%w: inferred relationship", ErrMissingFileFamily)
	}
	return files, nil
}
