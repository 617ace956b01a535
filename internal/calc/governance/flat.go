package governance

// FieldOrder is the column order report renderers use for tabular output.
var FieldOrder = []string{
	"flag",
	"status",
	"message",
	"measured_thickness_in",
	"actual_thickness_in",
	"tmin_pressure_in",
	"tmin_structural_in",
	"governing_thickness_in",
	"governing_type",
	"retirement_limit_in",
	"pressure_deficit_in",
	"below_structural",
	"below_owner_limit",
	"structural_deficit_in",
	"owner_deficit_in",
	"next_retirement_limit_in",
	"retirement_type",
	"corrosion_allowance_in",
	"remaining_life_years",
}

// Flat exposes the result as a flat name-to-value map for the report
// renderers. Figures a flag does not report are nil.
func (r Result) Flat() map[string]any {
	flat := map[string]any{
		"flag":                   string(r.Flag),
		"status":                 r.Status,
		"message":                r.Message,
		"measured_thickness_in":  r.MeasuredThickness,
		"actual_thickness_in":    r.ActualThickness,
		"tmin_pressure_in":       r.TminPressure,
		"tmin_structural_in":     r.TminStructural,
		"governing_thickness_in": r.GoverningThickness,
		"governing_type":         r.GoverningType,
		"below_structural":       r.BelowStructural,
		"below_owner_limit":      r.BelowOwnerLimit,
		"retirement_type":        r.RetirementType,
	}
	putOptional(flat, "retirement_limit_in", r.RetirementLimit)
	putOptional(flat, "pressure_deficit_in", r.PressureDeficit)
	putOptional(flat, "structural_deficit_in", r.StructuralDeficit)
	putOptional(flat, "owner_deficit_in", r.OwnerDeficit)
	putOptional(flat, "next_retirement_limit_in", r.NextRetirementLimit)
	putOptional(flat, "corrosion_allowance_in", r.CorrosionAllowance)
	putOptional(flat, "remaining_life_years", r.RemainingLifeYears)
	return flat
}

func putOptional(flat map[string]any, key string, v *float64) {
	if v != nil {
		flat[key] = *v
	} else {
		flat[key] = nil
	}
}
