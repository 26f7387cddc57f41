package rf2

import (
	"fmt"
	"strconv"

	"github.com/eldrix/snomed-terminology/snomed"
)

// parseIdentifier decodes a column cell into a snomed.Identifier.
func parseIdentifier(column, s string) (snomed.Identifier, error) {
	id, err := snomed.ParseIdentifier(s)
	if err != nil {
		return 0, &RowError{Column: column, Err: fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)}
	}
	return id, nil
}

// parseEffectiveTime decodes the RF2 "YYYYMMDD" effective-time column into a
// 32-bit unsigned integer, without attempting calendar validation beyond the
// fixed 8-digit length the format requires.
func parseEffectiveTime(column, s string) (uint32, error) {
	if len(s) != 8 {
		return 0, &RowError{Column: column, Err: fmt.Errorf("%w: %q is not 8 digits", ErrInvalidDate, s)}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &RowError{Column: column, Err: fmt.Errorf("%w: %v", ErrInvalidDate, err)}
	}
	return uint32(v), nil
}

// parseBoolean decodes the RF2 "0"/"1" active-flag convention. Any other value
// is a decode error.
func parseBoolean(column, s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, &RowError{Column: column, Err: fmt.Errorf("%w: %q", ErrInvalidBoolean, s)}
	}
}

// parseInteger decodes a plain base-10 integer column (e.g. relationshipGroup).
func parseInteger(column, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &RowError{Column: column, Err: fmt.Errorf("%w: %v", ErrInvalidInteger, err)}
	}
	return v, nil
}

// parseConcreteValue decodes a concrete-relationship value cell per §6.3.
func parseConcreteValue(column, s string) (snomed.ConcreteValue, error) {
	v, err := snomed.ParseConcreteValue(s)
	if err != nil {
		return snomed.ConcreteValue{}, &RowError{Column: column, Err: err}
	}
	return v, nil
}

// parseCardinality decodes an MRCM "min..max" cell.
func parseCardinality(column, s string) (snomed.Cardinality, error) {
	c, err := snomed.ParseCardinality(s)
	if err != nil {
		return snomed.Cardinality{}, &RowError{Column: column, Err: err}
	}
	return c, nil
}
