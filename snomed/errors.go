package snomed

import "errors"

// Sentinel errors returned by the snomed package's scalar and structural validation.
var (
	// ErrInvalidCheckDigit is returned by ParseAndValidate when an identifier's
	// Verhoeff check digit does not match its payload.
	ErrInvalidCheckDigit = errors.New("identifier fails Verhoeff check digit validation")

	// ErrInvalidConcreteValue is returned when a concrete-relationship value cell
	// does not match any of the recognised literal forms (quoted string, #integer, #decimal).
	ErrInvalidConcreteValue = errors.New("invalid concrete value literal")

	// ErrInvalidCardinality is returned when an MRCM cardinality cell does not
	// match the "min..max" (or "min..*") wire syntax.
	ErrInvalidCardinality = errors.New("invalid cardinality literal")
)
