package structural

import (
	"errors"
	"testing"

	pipe "Gauge/internal/calc/pipe"
	tables "Gauge/internal/tables"
)

func spec() pipe.Spec {
	return pipe.Spec{
		NPS:           2,
		Schedule:      40,
		Pressure:      1000,
		PressureClass: 300,
		Metallurgy:    pipe.MetallurgyCS,
		YieldStress:   35000,
		CodeEdition:   pipe.Edition2025,
	}
}

func TestMinimum2025CarbonSteel(t *testing.T) {
	got, err := Minimum(spec(), tables.Dataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.070 {
		t.Fatalf("expected 0.070, got %.3f", got)
	}
}

func TestMinimum2025StainlessUsesSSTable(t *testing.T) {
	s := spec()
	cs, err := Minimum(s, tables.Dataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, m := range []pipe.Metallurgy{pipe.MetallurgySS316, pipe.MetallurgySS304} {
		s.Metallurgy = m
		ss, err := Minimum(s, tables.Dataset())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if ss >= cs {
			t.Fatalf("%s: stainless cell should sit below carbon, got %.3f vs %.3f", m, ss, cs)
		}
	}
}

func TestMinimumConservativeFallback(t *testing.T) {
	s := spec()
	cs, _ := Minimum(s, tables.Dataset())

	// Metallurgies without their own table use the carbon-steel one.
	for _, m := range []pipe.Metallurgy{pipe.MetallurgyInconel625, pipe.MetallurgyOther} {
		s.Metallurgy = m
		got, err := Minimum(s, tables.Dataset())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if got != cs {
			t.Fatalf("%s: expected carbon-steel fallback %.3f, got %.3f", m, cs, got)
		}
	}
}

func TestMinimum2009IgnoresClass(t *testing.T) {
	s := spec()
	s.CodeEdition = pipe.Edition2009

	s.PressureClass = 150
	a, err := Minimum(s, tables.Dataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.PressureClass = 2500
	b, err := Minimum(s, tables.Dataset())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b || a != 0.07 {
		t.Fatalf("2009 edition must be class-independent, got %.3f / %.3f", a, b)
	}
}

func TestMinimumUnknownEdition(t *testing.T) {
	s := spec()
	s.CodeEdition = "1998"
	if _, err := Minimum(s, tables.Dataset()); !errors.Is(err, pipe.ErrUnknownCodeEdition) {
		t.Fatalf("expected ErrUnknownCodeEdition, got %v", err)
	}
}

func TestMinimumMissingEntry(t *testing.T) {
	s := spec()
	s.NPS = 5 // no NPS 5 row
	if _, err := Minimum(s, tables.Dataset()); !errors.Is(err, pipe.ErrMissingTableEntry) {
		t.Fatalf("expected ErrMissingTableEntry, got %v", err)
	}
}
