package governance

import (
	"encoding/json"
	"errors"
	"net/http"

	pipe "Gauge/internal/calc/pipe"
)

type Handler struct{}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Evaluate(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// statusFor distinguishes bad input values from data the service simply
// does not carry tables for.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pipe.ErrInvalidGeometry),
		errors.Is(err, pipe.ErrMissingMaterialData),
		errors.Is(err, pipe.ErrMissingTableEntry):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
