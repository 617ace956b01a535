package tables

// Metallurgy family keys for the Y-coefficient table.
const (
	YFamilyFerritic    = "ferritic"
	YFamilyAustenitic  = "austenitic"
	YFamilyNickel      = "nickel"
	YFamilyOtherDuctle = "other"
	YFamilyCastIron    = "cast-iron"
)

// Y coefficients per ASME B31.1 Table 104.1.2-1, keyed by family and by
// design temperature rounded to a table point (degrees F).
var yCoefficients = map[string]map[int]float64{
	YFamilyFerritic: {
		900:  0.4,
		950:  0.5,
		1000: 0.7,
		1050: 0.7,
		1100: 0.7,
		1150: 0.7,
		1200: 0.7,
		1250: 0.7,
	},
	YFamilyAustenitic: {
		900:  0.4,
		950:  0.4,
		1000: 0.4,
		1050: 0.4,
		1100: 0.5,
		1150: 0.7,
		1200: 0.7,
		1250: 0.7,
	},
	YFamilyNickel: {
		900:  0.4,
		950:  0.4,
		1000: 0.4,
		1050: 0.4,
		1100: 0.4,
		1150: 0.4,
		1200: 0.5,
		1250: 0.7,
	},
	YFamilyOtherDuctle: {
		900:  0.4,
		950:  0.4,
		1000: 0.4,
		1050: 0.4,
		1100: 0.4,
		1150: 0.4,
		1200: 0.4,
		1250: 0.4,
	},
	YFamilyCastIron: {
		900:  0.0,
		950:  0.0,
		1000: 0.0,
		1050: 0.0,
		1100: 0.0,
		1150: 0.0,
		1200: 0.0,
		1250: 0.0,
	},
}
