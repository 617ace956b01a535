package pressure

import (
	"errors"
	"math"
	"testing"

	pipe "Gauge/internal/calc/pipe"
)

func straight2in() pipe.Enriched {
	return pipe.Enriched{
		OuterDiameter:   2.375,
		InnerDiameter:   2.067,
		AllowableStress: 35000 * 2.0 / 3.0,
		YCoefficient:    0.4,
		JointEfficiency: 1.0,
		WeldReduction:   1.0,
		Config:          pipe.ConfigStraight,
		Pressure:        1000,
	}
}

func TestMinimumStraight(t *testing.T) {
	e := straight2in()
	got, err := Minimum(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// t = P*D / (2*S*E*W + P*Y)
	want := (1000.0 * 2.375) / (2*e.AllowableStress + 1000.0*0.4)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %.6f, got %.6f", want, got)
	}
	if math.Abs(got-0.0505) > 5e-4 {
		t.Fatalf("expected roughly 0.050 in for the 2 in example, got %.6f", got)
	}
}

func TestMinimumMonotonicity(t *testing.T) {
	base := straight2in()
	baseT, err := Minimum(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	higherP := base
	higherP.Pressure = 1500
	tEnd, err := Minimum(higherP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tEnd <= baseT {
		t.Fatalf("thicker wall expected at higher pressure: %.6f <= %.6f", tEnd, baseT)
	}

	higherY := base
	higherY.YCoefficient = 0.7
	tEnd, err = Minimum(higherY)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tEnd <= baseT {
		t.Fatalf("thicker wall expected at higher Y: %.6f <= %.6f", tEnd, baseT)
	}

	stronger := base
	stronger.AllowableStress = 30000
	tEnd, err = Minimum(stronger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tEnd >= baseT {
		t.Fatalf("thinner wall expected at higher allowable stress: %.6f >= %.6f", tEnd, baseT)
	}
}

func TestMinimumElbows(t *testing.T) {
	straight, err := Minimum(straight2in())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inner := straight2in()
	inner.Config = pipe.ConfigInnerElbow
	inner.CenterlineRadius = 3.0
	tInner, err := Minimum(inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outer := straight2in()
	outer.Config = pipe.ConfigOuterElbow
	outer.CenterlineRadius = 3.0
	tOuter, err := Minimum(outer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The intrados thins in service, so its requirement exceeds a straight
	// run; the extrados requirement is below it.
	if !(tInner > straight && tOuter < straight) {
		t.Fatalf("expected inner > straight > outer, got %.6f / %.6f / %.6f", tInner, straight, tOuter)
	}

	// Spot-check the intrados factor arithmetic.
	r := 3.0 - 2.375/2
	f := (4*(r/2.375) - 1) / (4*(r/2.375) - 2)
	sew := inner.AllowableStress
	want := (1000.0 * 2.375) / (2*(sew/f) + 1000.0*0.4)
	if math.Abs(tInner-want) > 1e-12 {
		t.Fatalf("intrados: expected %.6f, got %.6f", want, tInner)
	}
}

func TestMinimumRejectsWeldedJoints(t *testing.T) {
	e := straight2in()
	e.JointEfficiency = 0.85
	if _, err := Minimum(e); !errors.Is(err, pipe.ErrUnsupportedConfiguration) {
		t.Fatalf("expected ErrUnsupportedConfiguration, got %v", err)
	}
}

func TestMinimumRejectsUnknownConfig(t *testing.T) {
	e := straight2in()
	e.Config = pipe.Config("tee")
	if _, err := Minimum(e); !errors.Is(err, pipe.ErrUnsupportedConfiguration) {
		t.Fatalf("expected ErrUnsupportedConfiguration, got %v", err)
	}
}

func TestMinimumRejectsMissingDiameter(t *testing.T) {
	e := straight2in()
	e.OuterDiameter = 0
	if _, err := Minimum(e); !errors.Is(err, pipe.ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}
