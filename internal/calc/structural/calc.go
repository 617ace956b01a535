// Package structural resolves the API 574 minimum structural thickness
// for a pipe size, pressure class and metallurgy.
package structural

import (
	"fmt"

	pipe "Gauge/internal/calc/pipe"
	tables "Gauge/internal/tables"
)

// Minimum returns the code-table structural retirement thickness in
// inches. The 2025 edition keys on size and class with separate carbon
// and stainless tables; the 2009 edition carries one default per size.
// Metallurgies outside the stainless set fall back to the carbon-steel
// table, which is the conservative choice.
func Minimum(s pipe.Spec, set tables.Set) (float64, error) {
	var lookup tables.StructuralLookup

	switch s.Edition() {
	case pipe.Edition2025:
		switch s.Metallurgy {
		case pipe.MetallurgySS316, pipe.MetallurgySS304:
			lookup = set.StructuralSS
		default:
			lookup = set.StructuralCS
		}
	case pipe.Edition2009:
		lookup = set.Structural09
	default:
		return 0, fmt.Errorf("%w: %q, supported editions are 2025 and 2009", pipe.ErrUnknownCodeEdition, s.CodeEdition)
	}

	v, ok := lookup.Get(s.NPS, s.PressureClass)
	if !ok {
		return 0, fmt.Errorf("%w: no structural minimum for NPS %g class %d (%s, %s edition)",
			pipe.ErrMissingTableEntry, s.NPS, s.PressureClass, s.Metallurgy, s.Edition())
	}
	return v, nil
}
