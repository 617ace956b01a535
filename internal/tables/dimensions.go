package tables

// Outside diameters per ASME B36.10/B36.19, inches. OD is fixed per NPS
// regardless of schedule.
var trueOD = map[float64]float64{
	0.5:  0.840,
	0.75: 1.050,
	1:    1.315,
	1.5:  1.900,
	2:    2.375,
	3:    3.500,
	4:    4.500,
	6:    6.625,
	8:    8.625,
	10:   10.750,
	12:   12.750,
	14:   14.000,
	16:   16.000,
	18:   18.000,
	20:   20.000,
	24:   24.000,
}

// Inside diameters by schedule, inches. Sizes without a published wall for
// a schedule are simply absent.
var trueID = map[int]map[float64]float64{
	10: {
		0.5:  0.674,
		0.75: 0.884,
		1:    1.097,
		1.5:  1.682,
		2:    2.157,
		3:    3.260,
		4:    4.260,
		6:    6.357,
		8:    8.329,
		10:   10.420,
		12:   12.390,
		14:   13.500,
		16:   15.500,
		18:   17.500,
		20:   19.500,
		24:   23.500,
	},
	40: {
		0.5:  0.622,
		0.75: 0.824,
		1:    1.049,
		1.5:  1.610,
		2:    2.067,
		3:    3.068,
		4:    4.026,
		6:    6.065,
		8:    7.981,
		10:   10.020,
		12:   11.938,
		14:   13.124,
		16:   15.000,
		18:   16.876,
		20:   18.812,
		24:   22.624,
	},
	80: {
		0.5:  0.546,
		0.75: 0.742,
		1:    0.957,
		1.5:  1.500,
		2:    1.939,
		3:    2.900,
		4:    3.826,
		6:    5.761,
		8:    7.625,
		10:   9.562,
		12:   11.374,
		14:   12.500,
		16:   14.312,
		18:   16.124,
		20:   17.938,
		24:   21.562,
	},
	120: {
		4:  3.624,
		6:  5.501,
		8:  7.187,
		10: 9.062,
		12: 10.750,
		14: 11.812,
		16: 13.562,
		18: 15.250,
		20: 17.000,
		24: 20.376,
	},
	160: {
		0.5:  0.464,
		0.75: 0.612,
		1:    0.815,
		1.5:  1.338,
		2:    1.687,
		3:    2.624,
		4:    3.438,
		6:    5.187,
		8:    6.813,
		10:   8.500,
		12:   10.126,
		14:   11.188,
		16:   13.124,
		18:   14.876,
		20:   16.500,
		24:   19.876,
	},
}

// Long-radius elbow centerline radii per ASME B16.9, inches (1.5 x NPS).
var ansiRadii = map[float64]float64{
	0.5:  0.75,
	0.75: 1.125,
	1:    1.5,
	1.5:  2.25,
	2:    3.0,
	3:    4.5,
	4:    6.0,
	6:    9.0,
	8:    12.0,
	10:   15.0,
	12:   18.0,
	14:   21.0,
	16:   24.0,
	18:   27.0,
	20:   30.0,
	24:   36.0,
}
