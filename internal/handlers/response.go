package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/guiklos/lcpc-v2/internal/order"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeFieldErrors writes a 422 carrying the per-field validation
// messages the form renders inline.
func writeFieldErrors(w http.ResponseWriter, errs order.FieldErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"fieldErrors": errs,
	})
}
