package importer

import (
	"testing"

	pipe "Gauge/internal/calc/pipe"
)

func TestParseRow(t *testing.T) {
	row := []string{"2", "40", "straight", "1000", "300", "900", "Intermediate/Low CS", "35000", "0.2"}
	in, err := ParseRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Pipe.NPS != 2 || in.Pipe.Schedule != 40 || in.Pipe.PressureClass != 300 {
		t.Fatalf("unexpected spec: %+v", in.Pipe)
	}
	if in.Pipe.Metallurgy != pipe.MetallurgyCS {
		t.Fatalf("unexpected metallurgy %q", in.Pipe.Metallurgy)
	}
	if in.Inspection.MeasuredThickness != 0.2 {
		t.Fatalf("unexpected measurement %.3f", in.Inspection.MeasuredThickness)
	}
	if in.Pipe.CorrosionRate != nil || in.Inspection.Year != nil {
		t.Fatalf("optional columns must stay unset when absent")
	}
}

func TestParseRowOptionalColumns(t *testing.T) {
	row := []string{"2", "40", "", "1000", "300", "900", "Intermediate/Low CS", "35000", "0.2",
		"5", "0.09", "2024", "6", "2009"}
	in, err := ParseRow(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Pipe.Config != pipe.ConfigStraight {
		t.Fatalf("blank config must default to straight, got %q", in.Pipe.Config)
	}
	if in.Pipe.CorrosionRate == nil || *in.Pipe.CorrosionRate != 5 {
		t.Fatalf("unexpected corrosion rate %v", in.Pipe.CorrosionRate)
	}
	if in.Pipe.RetirementLimit == nil || *in.Pipe.RetirementLimit != 0.09 {
		t.Fatalf("unexpected retirement limit %v", in.Pipe.RetirementLimit)
	}
	if in.Inspection.Year == nil || *in.Inspection.Year != 2024 {
		t.Fatalf("unexpected year %v", in.Inspection.Year)
	}
	if in.Inspection.Month == nil || *in.Inspection.Month != 6 {
		t.Fatalf("unexpected month %v", in.Inspection.Month)
	}
	if in.Pipe.CodeEdition != pipe.Edition2009 {
		t.Fatalf("unexpected edition %q", in.Pipe.CodeEdition)
	}
}

func TestParseRowTooShort(t *testing.T) {
	if _, err := ParseRow([]string{"2", "40", "straight"}); err == nil {
		t.Fatalf("short rows must fail")
	}
}

func TestParseRowBadNumber(t *testing.T) {
	row := []string{"two", "40", "straight", "1000", "300", "900", "Intermediate/Low CS", "35000", "0.2"}
	if _, err := ParseRow(row); err == nil {
		t.Fatalf("non-numeric NPS must fail")
	}
}
