package structural

import (
	"encoding/json"
	"net/http"

	pipe "Gauge/internal/calc/pipe"
	tables "Gauge/internal/tables"
)

type Handler struct{}

type Result struct {
	TminStructural float64          `json:"tmin_structural_in"`
	CodeEdition    pipe.CodeEdition `json:"code_edition"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var spec pipe.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := spec.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tmin, err := Minimum(spec, tables.Dataset())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{TminStructural: tmin, CodeEdition: spec.Edition()})
}
