package pipe

// Inspection is a field measurement of wall thickness. Month is optional;
// when absent the projection assumes January, which maximizes elapsed time
// and is therefore the conservative choice.
type Inspection struct {
	MeasuredThickness float64 `json:"measured_thickness_in"`
	Year              *int    `json:"year_inspected,omitempty"`
	Month             *int    `json:"month_inspected,omitempty"`
}

// MilsToInches converts mils (thousandths of an inch) to inches.
func MilsToInches(mils float64) float64 { return mils * 0.001 }

// InchesToMils converts inches to mils.
func InchesToMils(in float64) float64 { return in * 1000 }
