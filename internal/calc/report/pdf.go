package report

import (
	"fmt"
	"io"
	"time"

	governance "Gauge/internal/calc/governance"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders the evaluation as a one-page memorandum with a verdict
// banner colored by flag.
func WritePDF(w io.Writer, meta Meta, res governance.Result) error {
	title := meta.Title
	if title == "" {
		title = "Pipe Thickness Evaluation"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	r, g, b := flagColor(res.Flag)
	pdf.SetFillColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - %s", res.Flag, res.Status), "", 1, "C", true, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, res.Message, "", "L", false)
	pdf.Ln(4)

	flat := res.Flat()
	for _, key := range governance.FieldOrder {
		v, ok := flat[key]
		if !ok || v == nil {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(70, 6, key)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, formatValue(v))
		pdf.Ln(6)
	}

	if meta.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, meta.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

func flagColor(f governance.Flag) (int, int, int) {
	switch f {
	case governance.FlagRed:
		return 220, 80, 80
	case governance.FlagYellow:
		return 235, 200, 90
	default:
		return 120, 200, 120
	}
}
