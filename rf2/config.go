package rf2

import "github.com/eldrix/snomed-terminology/snomed"

// Config carries the options shared by every record-family row reader: whether
// inactive rows are filtered out at emission, and the batch size used by the
// batched reading mode. Mirrors Rf2Config from the original loader, expressed as
// a plain struct with constructor functions rather than a Default trait.
type Config struct {
	ActiveOnly bool
	BatchSize  int
}

// DefaultConfig returns the configuration used when a caller has no special
// requirements: active rows only, a moderate batch size.
func DefaultConfig() Config {
	return Config{ActiveOnly: true, BatchSize: 1000}
}

// AllRowsConfig returns a configuration that keeps both active and inactive rows.
func AllRowsConfig() Config {
	return Config{ActiveOnly: false, BatchSize: 1000}
}

// DescriptionConfig extends Config with the description-family include-lists:
// which ISO language codes and which description-type identifiers to keep.
// Empty slices mean "no restriction".
type DescriptionConfig struct {
	Config
	LanguageCodes []string
	TypeIDs       []snomed.Identifier
}

// DefaultDescriptionConfig keeps all active descriptions regardless of language
// or type.
func DefaultDescriptionConfig() DescriptionConfig {
	return DescriptionConfig{Config: DefaultConfig()}
}

// EnglishTermsConfig restricts descriptions to the "en" language code.
func EnglishTermsConfig() DescriptionConfig {
	return DescriptionConfig{Config: DefaultConfig(), LanguageCodes: []string{"en"}}
}

// FSNOnlyConfig restricts descriptions to fully specified names.
func FSNOnlyConfig() DescriptionConfig {
	return DescriptionConfig{Config: DefaultConfig(), TypeIDs: []snomed.Identifier{snomed.FullySpecifiedNameConceptID}}
}

func (c DescriptionConfig) languageAllowed(code string) bool {
	if len(c.LanguageCodes) == 0 {
		return true
	}
	for _, l := range c.LanguageCodes {
		if l == code {
			return true
		}
	}
	return false
}

func (c DescriptionConfig) typeAllowed(id snomed.Identifier) bool {
	if len(c.TypeIDs) == 0 {
		return true
	}
	for _, t := range c.TypeIDs {
		if t == id {
			return true
		}
	}
	return false
}

// RelationshipConfig extends Config with the relationship-family include-list:
// which characteristic types to keep. An empty slice means "no restriction".
type RelationshipConfig struct {
	Config
	CharacteristicTypeIDs []snomed.Identifier
}

// DefaultRelationshipConfig keeps all active relationships regardless of
// characteristic type.
func DefaultRelationshipConfig() RelationshipConfig {
	return RelationshipConfig{Config: DefaultConfig()}
}

// InferredOnlyConfig restricts relationships to the inferred characteristic
// type, matching the default loader behaviour described in the design notes:
// hierarchy queries reflect the classifier's output.
func InferredOnlyConfig() RelationshipConfig {
	return RelationshipConfig{Config: DefaultConfig(), CharacteristicTypeIDs: []snomed.Identifier{snomed.InferredRelationshipConceptID}}
}

// StatedOnlyConfig restricts relationships to the stated characteristic type.
func StatedOnlyConfig() RelationshipConfig {
	return RelationshipConfig{Config: DefaultConfig(), CharacteristicTypeIDs: []snomed.Identifier{snomed.StatedRelationshipConceptID}}
}

func (c RelationshipConfig) characteristicTypeAllowed(id snomed.Identifier) bool {
	if len(c.CharacteristicTypeIDs) == 0 {
		return true
	}
	for _, t := range c.CharacteristicTypeIDs {
		if t == id {
			return true
		}
	}
	return false
}
