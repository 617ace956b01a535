package report

import (
	"encoding/json"
	"net/http"

	governance "Gauge/internal/calc/governance"
)

type Input struct {
	Meta       Meta             `json:"meta"`
	Evaluation governance.Input `json:"evaluation"`
}

type Handler struct{}

// Generate runs the evaluation and streams a PDF memorandum.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	input, res, ok := h.evaluate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"evaluation.pdf\"")
	if err := WritePDF(w, input.Meta, res); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

// Export runs the evaluation and streams it in the requested format
// (?format=txt|csv|json, default txt).
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	input, res, ok := h.evaluate(w, r)
	if !ok {
		return
	}

	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\"evaluation.csv\"")
		if err := WriteCSV(w, res); err != nil {
			http.Error(w, "Report generation error", http.StatusInternalServerError)
		}
	case "json":
		w.Header().Set("Content-Type", "application/json")
		if err := WriteJSON(w, input.Meta, res); err != nil {
			http.Error(w, "Report generation error", http.StatusInternalServerError)
		}
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := WriteText(w, input.Meta, res); err != nil {
			http.Error(w, "Report generation error", http.StatusInternalServerError)
		}
	}
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) (Input, governance.Result, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Input{}, governance.Result{}, false
	}
	res, err := governance.Evaluate(input.Evaluation)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Input{}, governance.Result{}, false
	}
	return input, res, true
}
