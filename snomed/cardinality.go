package snomed

import (
	"fmt"
	"strconv"
	"strings"
)

// Cardinality is an MRCM occurrence constraint of the form "min..max", where an
// absent max (wire form "*") means unbounded.
type Cardinality struct {
	Min uint32
	Max *uint32 // nil means unbounded
}

// UnboundedCardinality is the "0..*" constraint.
func UnboundedCardinality() Cardinality { return Cardinality{Min: 0, Max: nil} }

// OptionalCardinality is the "0..1" constraint.
func OptionalCardinality() Cardinality { max := uint32(1); return Cardinality{Min: 0, Max: &max} }

// RequiredCardinality is the "1..1" constraint.
func RequiredCardinality() Cardinality { max := uint32(1); return Cardinality{Min: 1, Max: &max} }

// OneOrMoreCardinality is the "1..*" constraint.
func OneOrMoreCardinality() Cardinality { return Cardinality{Min: 1, Max: nil} }

// ParseCardinality parses the MRCM "min..max" wire syntax, where max may be "*"
// for unbounded.
func ParseCardinality(s string) (Cardinality, error) {
	parts := strings.Split(s, "..")
	if len(parts) != 2 {
		return Cardinality{}, fmt.Errorf("invalid cardinality %q: %w", s, ErrInvalidCardinality)
	}
	min, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return Cardinality{}, fmt.Errorf("invalid cardinality minimum %q: %w", parts[0], ErrInvalidCardinality)
	}
	if parts[1] == "*" {
		return Cardinality{Min: uint32(min)}, nil
	}
	max, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return Cardinality{}, fmt.Errorf("invalid cardinality maximum %q: %w", parts[1], ErrInvalidCardinality)
	}
	maxv := uint32(max)
	return Cardinality{Min: uint32(min), Max: &maxv}, nil
}

// Allows reports whether count satisfies this cardinality constraint.
func (c Cardinality) Allows(count uint32) bool {
	if count < c.Min {
		return false
	}
	return c.Max == nil || count <= *c.Max
}

// IsUnbounded reports whether this cardinality has no maximum.
func (c Cardinality) IsUnbounded() bool { return c.Max == nil }

// IsRequired reports whether this cardinality requires at least one occurrence.
func (c Cardinality) IsRequired() bool { return c.Min >= 1 }

// String renders the cardinality in its RF2 wire form.
func (c Cardinality) String() string {
	if c.Max == nil {
		return fmt.Sprintf("%d..*", c.Min)
	}
	return fmt.Sprintf("%d..%d", c.Min, *c.Max)
}
