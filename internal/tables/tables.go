// Package tables holds the static dimensional and material lookup data
// consumed by the calculation packages: ASME B36.10 outside/inside
// diameters, ASME B31.1 Y-coefficients, API 574 structural minimum
// thickness tables and ANSI long-radius elbow centerline radii.
//
// Lookups never return errors themselves; absence is reported with a
// false second return so callers translate it into their own error.
package tables

// DiameterLookup resolves a nominal pipe size to a diameter in inches.
type DiameterLookup interface {
	Get(nps float64) (float64, bool)
}

// ScheduleDiameterLookup resolves a schedule/NPS pair to a diameter in inches.
type ScheduleDiameterLookup interface {
	Get(schedule int, nps float64) (float64, bool)
}

// YCoefficientLookup resolves a metallurgy family and design temperature
// (rounded to a table point, degrees F) to the ASME Y coefficient.
type YCoefficientLookup interface {
	Get(family string, tempF int) (float64, bool)
}

// StructuralLookup resolves an API 574 structural minimum thickness.
// The 2025 tables key on NPS and pressure class; the 2009 table ignores
// the class and carries a single default per NPS.
type StructuralLookup interface {
	Get(nps float64, pressureClass int) (float64, bool)
}

// RadiusLookup resolves the centerline radius of a long-radius elbow.
type RadiusLookup interface {
	Get(nps float64) (float64, bool)
}

// Set bundles every lookup the engine consumes. Dataset() returns the
// built-in data; tests substitute individual fields.
type Set struct {
	OuterDiameter DiameterLookup
	InnerDiameter ScheduleDiameterLookup
	YCoefficient  YCoefficientLookup
	StructuralCS  StructuralLookup // API 574 2025, carbon/low-alloy steel
	StructuralSS  StructuralLookup // API 574 2025, stainless steel
	Structural09  StructuralLookup // API 574 2009 Table 6
	ElbowRadius   RadiusLookup
}

// Dataset returns the lookup set backed by the built-in tables.
func Dataset() Set {
	return Set{
		OuterDiameter: odLookup{},
		InnerDiameter: idLookup{},
		YCoefficient:  yLookup{},
		StructuralCS:  classedLookup(api574CS400F),
		StructuralSS:  classedLookup(api574SS400F),
		Structural09:  defaultLookup(api574Table6_2009),
		ElbowRadius:   radiusLookup{},
	}
}

type odLookup struct{}

func (odLookup) Get(nps float64) (float64, bool) {
	v, ok := trueOD[nps]
	return v, ok
}

type idLookup struct{}

func (idLookup) Get(schedule int, nps float64) (float64, bool) {
	byNPS, ok := trueID[schedule]
	if !ok {
		return 0, false
	}
	v, ok := byNPS[nps]
	return v, ok
}

type yLookup struct{}

func (yLookup) Get(family string, tempF int) (float64, bool) {
	byTemp, ok := yCoefficients[family]
	if !ok {
		return 0, false
	}
	v, ok := byTemp[tempF]
	return v, ok
}

type classedLookup map[float64]map[int]float64

func (t classedLookup) Get(nps float64, pressureClass int) (float64, bool) {
	byClass, ok := t[nps]
	if !ok {
		return 0, false
	}
	v, ok := byClass[pressureClass]
	return v, ok
}

type defaultLookup map[float64]float64

func (t defaultLookup) Get(nps float64, _ int) (float64, bool) {
	v, ok := t[nps]
	return v, ok
}

type radiusLookup struct{}

func (radiusLookup) Get(nps float64) (float64, bool) {
	v, ok := ansiRadii[nps]
	return v, ok
}
