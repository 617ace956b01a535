package corrosion

import (
	"errors"
	"math"
	"testing"
	"time"

	pipe "Gauge/internal/calc/pipe"
)

var evalDate = time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

func intp(v int) *int { return &v }

func f64p(v float64) *float64 { return &v }

func TestProjectWithoutYearOrRate(t *testing.T) {
	insp := pipe.Inspection{MeasuredThickness: 0.250}

	got, err := Project(insp, f64p(5), evalDate)
	if err != nil || got != 0.250 {
		t.Fatalf("no year: expected measurement passthrough, got %.4f err %v", got, err)
	}

	insp.Year = intp(2020)
	got, err = Project(insp, nil, evalDate)
	if err != nil || got != 0.250 {
		t.Fatalf("no rate: expected measurement passthrough, got %.4f err %v", got, err)
	}
}

func TestProjectZeroRateIsIdempotent(t *testing.T) {
	insp := pipe.Inspection{MeasuredThickness: 0.250, Year: intp(2000)}
	got, err := Project(insp, f64p(0), evalDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.250 {
		t.Fatalf("zero rate must not degrade: got %.4f", got)
	}
}

func TestProjectEighteenMonths(t *testing.T) {
	// Inspected February 2025, evaluated August 2026: 1.5 years at 10 mpy
	// is 15 mils of loss.
	insp := pipe.Inspection{MeasuredThickness: 0.200, Year: intp(2025), Month: intp(2)}
	got, err := Project(insp, f64p(10), evalDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.185) > 1e-9 {
		t.Fatalf("expected 0.185 in, got %.6f", got)
	}
}

func TestProjectMonthDefaultsToJanuary(t *testing.T) {
	rate := f64p(12)
	withMonth := pipe.Inspection{MeasuredThickness: 0.300, Year: intp(2024), Month: intp(1)}
	without := pipe.Inspection{MeasuredThickness: 0.300, Year: intp(2024)}

	a, err := Project(withMonth, rate, evalDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Project(without, rate, evalDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("omitted month must equal January: %.6f != %.6f", b, a)
	}
}

func TestProjectFutureInspection(t *testing.T) {
	insp := pipe.Inspection{MeasuredThickness: 0.200, Year: intp(2027)}
	if _, err := Project(insp, f64p(5), evalDate); !errors.Is(err, pipe.ErrFutureInspectionDate) {
		t.Fatalf("expected ErrFutureInspectionDate, got %v", err)
	}

	// Same year, later month.
	insp = pipe.Inspection{MeasuredThickness: 0.200, Year: intp(2026), Month: intp(12)}
	if _, err := Project(insp, f64p(5), evalDate); !errors.Is(err, pipe.ErrFutureInspectionDate) {
		t.Fatalf("expected ErrFutureInspectionDate for later month, got %v", err)
	}
}

func TestProjectInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		insp := pipe.Inspection{MeasuredThickness: 0.200, Year: intp(2024), Month: intp(m)}
		if _, err := Project(insp, f64p(5), evalDate); !errors.Is(err, pipe.ErrInvalidMonth) {
			t.Fatalf("month %d: expected ErrInvalidMonth, got %v", m, err)
		}
	}
}

func TestElapsedFraction(t *testing.T) {
	got, err := Elapsed(2025, intp(2), evalDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1.5) > 1e-12 {
		t.Fatalf("expected 1.5 years, got %.6f", got)
	}
}
