package pressure

import (
	"encoding/json"
	"net/http"

	pipe "Gauge/internal/calc/pipe"
	tables "Gauge/internal/tables"
)

type Handler struct{}

type Result struct {
	TminPressure float64       `json:"tmin_pressure_in"`
	Enriched     pipe.Enriched `json:"enriched"`
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var spec pipe.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	enriched, err := pipe.Enrich(spec, tables.Dataset())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tmin, err := Minimum(enriched)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Result{TminPressure: tmin, Enriched: enriched})
}
