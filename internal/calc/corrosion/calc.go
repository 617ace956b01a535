// Package corrosion projects an inspection-time wall measurement to a
// present-day thickness under an assumed uniform linear corrosion rate.
package corrosion

import (
	"fmt"
	"time"

	pipe "Gauge/internal/calc/pipe"
)

// Project returns the present-day thickness in inches. Without an
// inspection year or a corrosion rate the measurement is taken as
// current. Rate is in mils per year.
func Project(insp pipe.Inspection, rate *float64, at time.Time) (float64, error) {
	if insp.Month != nil && (*insp.Month < 1 || *insp.Month > 12) {
		return 0, fmt.Errorf("%w: month must be 1-12, got %d", pipe.ErrInvalidMonth, *insp.Month)
	}
	if insp.Year == nil || rate == nil {
		return insp.MeasuredThickness, nil
	}

	elapsed, err := Elapsed(*insp.Year, insp.Month, at)
	if err != nil {
		return 0, err
	}

	degradationMils := *rate * elapsed
	return insp.MeasuredThickness - pipe.MilsToInches(degradationMils), nil
}

// Elapsed computes fractional years between an inspection date and the
// evaluation time. A missing month is taken as January, the conservative
// assumption since it maximizes elapsed time.
func Elapsed(year int, month *int, at time.Time) (float64, error) {
	m := 1
	if month != nil {
		if *month < 1 || *month > 12 {
			return 0, fmt.Errorf("%w: month must be 1-12, got %d", pipe.ErrInvalidMonth, *month)
		}
		m = *month
	}

	elapsed := float64(at.Year()-year) + float64(int(at.Month())-m)/12.0
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: %04d-%02d is after the evaluation date %s",
			pipe.ErrFutureInspectionDate, year, m, at.Format("2006-01"))
	}
	return elapsed, nil
}
