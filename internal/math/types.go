package math

import "github.com/cwbudde/algo-dwt/internal/dwtypes"

// Real is a type alias for the sample constraint.
// The canonical definition is in internal/dwtypes.
type Real = dwtypes.Real
