package tables

// API 574 (2025 edition) Table D.2 minimum structural thicknesses at
// 400 F, inches, keyed by NPS then by pressure class.

var api574CS400F = map[float64]map[int]float64{
	0.5:  {150: 0.055, 300: 0.060, 600: 0.065, 900: 0.070, 1500: 0.080, 2500: 0.095},
	0.75: {150: 0.055, 300: 0.060, 600: 0.065, 900: 0.070, 1500: 0.080, 2500: 0.095},
	1:    {150: 0.060, 300: 0.065, 600: 0.070, 900: 0.075, 1500: 0.085, 2500: 0.100},
	1.5:  {150: 0.060, 300: 0.065, 600: 0.070, 900: 0.080, 1500: 0.090, 2500: 0.105},
	2:    {150: 0.065, 300: 0.070, 600: 0.075, 900: 0.085, 1500: 0.095, 2500: 0.110},
	3:    {150: 0.070, 300: 0.075, 600: 0.080, 900: 0.090, 1500: 0.105, 2500: 0.120},
	4:    {150: 0.075, 300: 0.080, 600: 0.090, 900: 0.100, 1500: 0.115, 2500: 0.135},
	6:    {150: 0.085, 300: 0.090, 600: 0.100, 900: 0.110, 1500: 0.130, 2500: 0.155},
	8:    {150: 0.090, 300: 0.095, 600: 0.105, 900: 0.120, 1500: 0.140, 2500: 0.170},
	10:   {150: 0.095, 300: 0.100, 600: 0.110, 900: 0.125, 1500: 0.150, 2500: 0.185},
	12:   {150: 0.095, 300: 0.105, 600: 0.115, 900: 0.130, 1500: 0.160, 2500: 0.195},
	14:   {150: 0.100, 300: 0.110, 600: 0.120, 900: 0.135, 1500: 0.170, 2500: 0.210},
	16:   {150: 0.100, 300: 0.110, 600: 0.125, 900: 0.140, 1500: 0.180, 2500: 0.220},
	18:   {150: 0.105, 300: 0.115, 600: 0.130, 900: 0.150, 1500: 0.190, 2500: 0.235},
	20:   {150: 0.110, 300: 0.120, 600: 0.135, 900: 0.155, 1500: 0.200, 2500: 0.245},
	24:   {150: 0.115, 300: 0.125, 600: 0.145, 900: 0.165, 1500: 0.215, 2500: 0.265},
}

var api574SS400F = map[float64]map[int]float64{
	0.5:  {150: 0.045, 300: 0.050, 600: 0.055, 900: 0.060, 1500: 0.070, 2500: 0.085},
	0.75: {150: 0.045, 300: 0.050, 600: 0.055, 900: 0.060, 1500: 0.070, 2500: 0.085},
	1:    {150: 0.050, 300: 0.055, 600: 0.060, 900: 0.065, 1500: 0.075, 2500: 0.090},
	1.5:  {150: 0.050, 300: 0.055, 600: 0.060, 900: 0.070, 1500: 0.080, 2500: 0.095},
	2:    {150: 0.055, 300: 0.060, 600: 0.065, 900: 0.075, 1500: 0.085, 2500: 0.100},
	3:    {150: 0.060, 300: 0.065, 600: 0.070, 900: 0.080, 1500: 0.095, 2500: 0.110},
	4:    {150: 0.065, 300: 0.070, 600: 0.080, 900: 0.090, 1500: 0.105, 2500: 0.125},
	6:    {150: 0.075, 300: 0.080, 600: 0.090, 900: 0.100, 1500: 0.120, 2500: 0.145},
	8:    {150: 0.080, 300: 0.085, 600: 0.095, 900: 0.110, 1500: 0.130, 2500: 0.160},
	10:   {150: 0.085, 300: 0.090, 600: 0.100, 900: 0.115, 1500: 0.140, 2500: 0.175},
	12:   {150: 0.085, 300: 0.095, 600: 0.105, 900: 0.120, 1500: 0.150, 2500: 0.185},
	14:   {150: 0.090, 300: 0.100, 600: 0.110, 900: 0.125, 1500: 0.160, 2500: 0.200},
	16:   {150: 0.090, 300: 0.100, 600: 0.115, 900: 0.130, 1500: 0.170, 2500: 0.210},
	18:   {150: 0.095, 300: 0.105, 600: 0.120, 900: 0.140, 1500: 0.180, 2500: 0.225},
	20:   {150: 0.100, 300: 0.110, 600: 0.125, 900: 0.145, 1500: 0.190, 2500: 0.235},
	24:   {150: 0.105, 300: 0.115, 600: 0.135, 900: 0.155, 1500: 0.205, 2500: 0.255},
}

// API 574 (2009 edition) Table 6 default minimum structural thickness for
// carbon and low-alloy steel pipe, inches, keyed by NPS. The 2009 edition
// does not differentiate by pressure class.
var api574Table6_2009 = map[float64]float64{
	0.5:  0.07,
	0.75: 0.07,
	1:    0.07,
	1.5:  0.07,
	2:    0.07,
	3:    0.08,
	4:    0.09,
	6:    0.11,
	8:    0.11,
	10:   0.11,
	12:   0.11,
	14:   0.11,
	16:   0.11,
	18:   0.11,
	20:   0.12,
	24:   0.12,
}
