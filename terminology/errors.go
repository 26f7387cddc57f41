package terminology

import "errors"

// ErrMissingFileFamily is returned by DiscoverFiles when a required RF2 file
// family (concept, description, inferred relationship) is absent from the
// walked directory tree.
var ErrMissingFileFamily = errors.New("required RF2 file family not found")
