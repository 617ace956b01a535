package pipe

import "errors"

// Calculation faults are terminal: the caller gets either a complete
// result or one of these, never a partial classification.
var (
	ErrInvalidGeometry          = errors.New("invalid geometry")
	ErrMissingMaterialData      = errors.New("missing material data")
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
	ErrUnknownCodeEdition       = errors.New("unknown code edition")
	ErrMissingTableEntry        = errors.New("missing table entry")
	ErrInvalidMonth             = errors.New("invalid inspection month")
	ErrFutureInspectionDate     = errors.New("inspection date in the future")
	ErrInvalidRetirementLimit   = errors.New("invalid retirement limit")
	ErrMeasurementOutOfBounds   = errors.New("measurement out of bounds")
)
