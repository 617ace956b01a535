// Package pressure computes the pressure-design minimum wall thickness
// per ASME B31.1 para 104.1.2 eq 3a, with intrados/extrados corrections
// for long-radius elbows.
package pressure

import (
	"fmt"

	pipe "Gauge/internal/calc/pipe"
)

// Minimum returns the pressure-governed minimum wall thickness in inches
// for an enriched pipe snapshot. Pure function of its inputs.
func Minimum(e pipe.Enriched) (float64, error) {
	if e.OuterDiameter <= 0 {
		return 0, fmt.Errorf("%w: outer diameter unresolved", pipe.ErrInvalidGeometry)
	}
	if e.YCoefficient < 0 {
		return 0, fmt.Errorf("%w: Y coefficient unresolved", pipe.ErrMissingMaterialData)
	}
	// Seamless pipe only: E = W = 1.0. Welded joints need the B31.1
	// temperature-dependent factor tables, which are out of scope.
	if e.JointEfficiency != 1.0 || e.WeldReduction != 1.0 {
		return 0, fmt.Errorf("%w: welded joints are not supported, E and W must be 1.0", pipe.ErrUnsupportedConfiguration)
	}

	factor, err := geometryFactor(e)
	if err != nil {
		return 0, err
	}

	sew := e.AllowableStress * e.JointEfficiency * e.WeldReduction
	return (e.Pressure * e.OuterDiameter) / (2*(sew/factor) + e.Pressure*e.YCoefficient), nil
}

// geometryFactor is 1.0 for straight runs. Elbows use a local radius at
// the intrados or extrados and the B31.1 bend correction.
func geometryFactor(e pipe.Enriched) (float64, error) {
	switch e.Config {
	case pipe.ConfigStraight:
		return 1.0, nil
	case pipe.ConfigInnerElbow:
		r := e.CenterlineRadius - e.OuterDiameter/2
		return (4*(r/e.OuterDiameter) - 1) / (4*(r/e.OuterDiameter) - 2), nil
	case pipe.ConfigOuterElbow:
		r := e.CenterlineRadius + e.OuterDiameter/2
		return (4*(r/e.OuterDiameter) + 1) / (4*(r/e.OuterDiameter) + 2), nil
	}
	return 0, fmt.Errorf("%w: pipe configuration %q", pipe.ErrUnsupportedConfiguration, e.Config)
}
