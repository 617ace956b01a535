// Package importer evaluates inspection sheets uploaded as spreadsheets,
// one pipe segment per row.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	governance "Gauge/internal/calc/governance"
	pipe "Gauge/internal/calc/pipe"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                 `json:"count"`
	Skipped int                 `json:"skipped"`
	Results []governance.Result `json:"results"`
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{}
	for i := 1; i < len(rows); i++ {
		input, err := ParseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := governance.Evaluate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// ParseRow builds an evaluation input from a sheet row. Expected columns:
// nps, schedule, config, pressure, class, temp, metallurgy, yield,
// measured thickness, then optional corrosion rate, retirement limit,
// year inspected, month inspected, code edition.
func ParseRow(row []string) (governance.Input, error) {
	if len(row) < 9 {
		return governance.Input{}, fmt.Errorf("bad row: need at least 9 columns, got %d", len(row))
	}

	nps, err := toFloat(row[0])
	if err != nil {
		return governance.Input{}, err
	}
	schedule, err := toInt(row[1])
	if err != nil {
		return governance.Input{}, err
	}
	config := pipe.Config(strings.TrimSpace(row[2]))
	if config == "" {
		config = pipe.ConfigStraight
	}
	press, err := toFloat(row[3])
	if err != nil {
		return governance.Input{}, err
	}
	class, err := toInt(row[4])
	if err != nil {
		return governance.Input{}, err
	}
	temp := pipe.Temperature(strings.TrimSpace(row[5]))
	metallurgy := pipe.Metallurgy(strings.TrimSpace(row[6]))
	yield, err := toFloat(row[7])
	if err != nil {
		return governance.Input{}, err
	}
	measured, err := toFloat(row[8])
	if err != nil {
		return governance.Input{}, err
	}

	in := governance.Input{
		Pipe: pipe.Spec{
			NPS:           nps,
			Schedule:      schedule,
			Config:        config,
			Pressure:      press,
			PressureClass: class,
			DesignTemp:    temp,
			Metallurgy:    metallurgy,
			YieldStress:   yield,
		},
		Inspection: pipe.Inspection{MeasuredThickness: measured},
	}

	if v, ok := optFloat(row, 9); ok {
		in.Pipe.CorrosionRate = &v
	}
	if v, ok := optFloat(row, 10); ok {
		in.Pipe.RetirementLimit = &v
	}
	if v, ok := optInt(row, 11); ok {
		in.Inspection.Year = &v
	}
	if v, ok := optInt(row, 12); ok {
		in.Inspection.Month = &v
	}
	if len(row) > 13 && strings.TrimSpace(row[13]) != "" {
		in.Pipe.CodeEdition = pipe.CodeEdition(strings.TrimSpace(row[13]))
	}

	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%f", &v)
	return v, err
}

func toInt(s string) (int, error) {
	var v int
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &v)
	return v, err
}

func optFloat(row []string, i int) (float64, bool) {
	if i >= len(row) || strings.TrimSpace(row[i]) == "" {
		return 0, false
	}
	v, err := toFloat(row[i])
	return v, err == nil
}

func optInt(row []string, i int) (int, bool) {
	if i >= len(row) || strings.TrimSpace(row[i]) == "" {
		return 0, false
	}
	v, err := toInt(row[i])
	return v, err == nil
}
