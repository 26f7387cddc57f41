package terminology

import (
	"log"

	"github.com/eldrix/snomed-terminology/rf2"
)

// LoadConfig bundles the per-family RF2 configuration used by both the serial
// and parallel loaders.
type LoadConfig struct {
	Concepts      rf2.Config
	Descriptions  rf2.DescriptionConfig
	Relationships rf2.RelationshipConfig
	Other         rf2.Config // concrete relationships, OWL, refsets, MRCM
}

// DefaultLoadConfig keeps active rows only, inferred-characteristic-type
// relationships only (the classifier's output, per the design notes), and no
// language/type restriction on descriptions.
func DefaultLoadConfig() LoadConfig {
	return LoadConfig{
		Concepts:      rf2.DefaultConfig(),
		Descriptions:  rf2.DefaultDescriptionConfig(),
		Relationships: rf2.InferredOnlyConfig(),
		Other:         rf2.DefaultConfig(),
	}
}

// Load runs the single-threaded loader (§5 "load phase, serial"): one record
// stream per file, decoded sequentially, inserted directly into the store.
// Header or I/O errors on a concept, description, text-definition, or
// relationship (inferred or stated) file abort the whole load; on a concrete
// relationship, OWL, refset, or MRCM file they are logged and that file is
// skipped, per the §7 MRCM/refset propagation policy.
// Per-row decode errors are always logged, never silently dropped, matching
// the streaming contract of §4.1.
func Load(files Rf2Files, cfg LoadConfig, logger *log.Logger) (*Store, error) {
	store := NewStore()

	for _, f := range files.Concepts {
		concepts, errs, err := rf2.LoadConcepts(f, cfg.Concepts)
		logRowErrors(logger, errs)
		if err != nil {
			return nil, err
		}
		for _, c := range concepts {
			store.InsertConcept(c)
		}
	}

	for _, f := range append(append([]string{}, files.Descriptions...), files.TextDefinitions...) {
		descriptions, errs, err := rf2.LoadDescriptions(f, cfg.Descriptions)
		logRowErrors(logger, errs)
		if err != nil {
			return nil, err
		}
		for _, d := range descriptions {
			store.InsertDescription(d)
		}
	}

	for _, f := range append(append([]string{}, files.Relationships...), files.StatedRelationships...) {
		relationships, errs, err := rf2.LoadRelationships(f, cfg.Relationships)
		logRowErrors(logger, errs)
		if err != nil {
			return nil, err
		}
		for _, r := range relationships {
			store.InsertRelationship(r)
		}
	}

	for _, f := range files.ConcreteRelationships {
		rels, errs, err := rf2.LoadConcreteRelationships(f, cfg.Relationships)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping concrete relationship file %s: %v", f, err)
			continue
		}
		for _, r := range rels {
			store.InsertConcreteRelationship(r)
		}
	}

	for _, f := range files.OWLExpressions {
		owl, errs, err := rf2.LoadOWLExpressions(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping OWL expression file %s: %v", f, err)
			continue
		}
		for _, o := range owl {
			store.InsertOWLExpression(o)
		}
	}

	for _, f := range files.SimpleRefsets {
		members, errs, err := rf2.LoadSimpleRefsetMembers(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping simple refset file %s: %v", f, err)
			continue
		}
		for _, m := range members {
			store.InsertSimpleRefsetMember(m)
		}
	}

	for _, f := range files.LanguageRefsets {
		members, errs, err := rf2.LoadLanguageRefsetMembers(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping language refset file %s: %v", f, err)
			continue
		}
		for _, m := range members {
			store.InsertLanguageRefsetMember(m)
		}
	}

	for _, f := range files.AssociationRefsets {
		members, errs, err := rf2.LoadAssociationRefsetMembers(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping association refset file %s: %v", f, err)
			continue
		}
		for _, m := range members {
			store.InsertAssociationRefsetMember(m)
		}
	}

	for _, f := range files.MRCMDomain {
		domains, errs, err := rf2.LoadMRCMDomains(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping MRCM domain file %s: %v", f, err)
			continue
		}
		for _, d := range domains {
			store.InsertMRCMDomain(d)
		}
	}

	for _, f := range files.MRCMAttributeDomain {
		domains, errs, err := rf2.LoadMRCMAttributeDomains(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping MRCM attribute domain file %s: %v", f, err)
			continue
		}
		for _, d := range domains {
			store.InsertMRCMAttributeDomain(d)
		}
	}

	for _, f := range files.MRCMAttributeRange {
		ranges, errs, err := rf2.LoadMRCMAttributeRanges(f, cfg.Other)
		logRowErrors(logger, errs)
		if err != nil {
			logger.Printf("skipping MRCM attribute range file %s: %v", f, err)
			continue
		}
		for _, r := range ranges {
			store.InsertMRCMAttributeRange(r)
		}
	}

	return store, nil
}

func logRowErrors(logger *log.Logger, errs []error) {
	for _, err := range errs {
		logger.Printf("skipping row: %v", err)
	}
}
