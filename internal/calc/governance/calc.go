// Package governance combines the pressure and structural minimums with a
// time-projected wall measurement and classifies the pipe into a tri-state
// safety verdict with supporting remaining-life figures.
package governance

import (
	"fmt"
	"time"

	corrosion "Gauge/internal/calc/corrosion"
	pipe "Gauge/internal/calc/pipe"
	pressure "Gauge/internal/calc/pressure"
	structural "Gauge/internal/calc/structural"
	tables "Gauge/internal/tables"
)

type Flag string

const (
	FlagRed    Flag = "RED"
	FlagYellow Flag = "YELLOW"
	FlagGreen  Flag = "GREEN"
)

const (
	StatusRetireImmediately = "IMMEDIATE_RETIREMENT"
	StatusAssessmentNeeded  = "FFS_RECOMMENDED"
	StatusSafeToContinue    = "SAFE_TO_CONTINUE"
)

type Input struct {
	Pipe       pipe.Spec       `json:"pipe"`
	Inspection pipe.Inspection `json:"inspection"`
}

// Result is the complete verdict for one analysis. Optional figures are
// pointers and only set for the flag that reports them.
type Result struct {
	Flag    Flag   `json:"flag"`
	Status  string `json:"status"`
	Message string `json:"message"`

	MeasuredThickness float64 `json:"measured_thickness_in"`
	ActualThickness   float64 `json:"actual_thickness_in"`
	TminPressure      float64 `json:"tmin_pressure_in"`
	TminStructural    float64 `json:"tmin_structural_in"`

	GoverningThickness float64 `json:"governing_thickness_in"`
	GoverningType      string  `json:"governing_type"`

	RetirementLimit *float64 `json:"retirement_limit_in,omitempty"`

	// RED
	PressureDeficit *float64 `json:"pressure_deficit_in,omitempty"`

	// YELLOW
	BelowStructural   bool     `json:"below_structural,omitempty"`
	BelowOwnerLimit   bool     `json:"below_owner_limit,omitempty"`
	StructuralDeficit *float64 `json:"structural_deficit_in,omitempty"`
	OwnerDeficit      *float64 `json:"owner_deficit_in,omitempty"`

	// GREEN
	NextRetirementLimit *float64 `json:"next_retirement_limit_in,omitempty"`
	RetirementType      string   `json:"retirement_type,omitempty"`
	CorrosionAllowance  *float64 `json:"corrosion_allowance_in,omitempty"`
	RemainingLifeYears  *float64 `json:"remaining_life_years,omitempty"`
}

// Evaluate runs one analysis against the built-in tables at the current
// date. Callers that cache results do so themselves; nothing is stored.
func Evaluate(in Input) (Result, error) {
	return EvaluateAt(in, tables.Dataset(), time.Now())
}

// EvaluateAt is Evaluate with an explicit lookup set and evaluation date.
func EvaluateAt(in Input, set tables.Set, at time.Time) (Result, error) {
	enriched, err := pipe.Enrich(in.Pipe, set)
	if err != nil {
		return Result{}, err
	}

	tminPressure, err := pressure.Minimum(enriched)
	if err != nil {
		return Result{}, err
	}
	tminStructural, err := structural.Minimum(in.Pipe, set)
	if err != nil {
		return Result{}, err
	}

	actual, err := corrosion.Project(in.Inspection, in.Pipe.CorrosionRate, at)
	if err != nil {
		return Result{}, err
	}

	// Sanity bound: neither the measurement nor the projection may exceed
	// the nominal wall.
	wall := enriched.NominalWall()
	if in.Inspection.MeasuredThickness > wall {
		return Result{}, fmt.Errorf("%w: measured thickness %.4f in exceeds nominal wall %.4f in, check units",
			pipe.ErrMeasurementOutOfBounds, in.Inspection.MeasuredThickness, wall)
	}

	// Owners may tighten the code retirement limit but never loosen it.
	owner := in.Pipe.RetirementLimit
	if owner != nil && *owner < tminStructural {
		return Result{}, fmt.Errorf("%w: owner limit %.4f in is below the API %s structural minimum %.4f in",
			pipe.ErrInvalidRetirementLimit, *owner, in.Pipe.Edition(), tminStructural)
	}

	// The more restrictive requirement governs; ties go to pressure.
	governing, governingType := tminStructural, "structural"
	if tminPressure >= tminStructural {
		governing, governingType = tminPressure, "pressure"
	}

	res := Result{
		MeasuredThickness:  in.Inspection.MeasuredThickness,
		ActualThickness:    actual,
		TminPressure:       tminPressure,
		TminStructural:     tminStructural,
		GoverningThickness: governing,
		GoverningType:      governingType,
		RetirementLimit:    owner,
	}

	switch {
	case actual <= tminPressure:
		redFlag(&res)
	case actual <= tminStructural || (owner != nil && actual <= *owner):
		yellowFlag(&res)
	default:
		greenFlag(&res, in.Pipe.CorrosionRate)
	}
	return res, nil
}

// redFlag: below the pressure-design floor. Immediate retirement,
// regardless of structural or owner limits.
func redFlag(r *Result) {
	r.Flag = FlagRed
	r.Status = StatusRetireImmediately
	r.Message = "Below pressure minimum - immediate retirement required"
	deficit := r.TminPressure - r.ActualThickness
	r.PressureDeficit = &deficit
}

// yellowFlag: clears the pressure floor but fails the structural table
// and/or the owner-specified limit.
func yellowFlag(r *Result) {
	r.Flag = FlagYellow
	r.Status = StatusAssessmentNeeded
	r.Message = "Not all criteria satisfied - fitness-for-service assessment recommended"

	if r.ActualThickness <= r.TminStructural {
		r.BelowStructural = true
		d := r.TminStructural - r.ActualThickness
		r.StructuralDeficit = &d
	}
	if r.RetirementLimit != nil && r.ActualThickness <= *r.RetirementLimit {
		r.BelowOwnerLimit = true
		d := *r.RetirementLimit - r.ActualThickness
		r.OwnerDeficit = &d
	}
}

// greenFlag: all limits cleared. The next retirement limit is whichever
// is higher, the owner limit or the governing thickness.
func greenFlag(r *Result, rate *float64) {
	r.Flag = FlagGreen
	r.Status = StatusSafeToContinue
	r.Message = "All criteria satisfied - pipe can safely continue in operation"

	next := r.GoverningThickness
	r.RetirementType = fmt.Sprintf("governed by %s design", r.GoverningType)
	if r.RetirementLimit != nil && *r.RetirementLimit > r.GoverningThickness {
		next = *r.RetirementLimit
		r.RetirementType = "company-specified"
	}
	r.NextRetirementLimit = &next

	allowance := r.ActualThickness - next
	r.CorrosionAllowance = &allowance

	if rate != nil && *rate > 0 {
		life := pipe.InchesToMils(allowance) / *rate
		r.RemainingLifeYears = &life
	}
}
