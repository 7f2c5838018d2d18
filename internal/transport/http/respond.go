package http

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("http: failed to encode response: %v", err)
	}
}

// writeError maps an error to a status code and sends a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status, message := mapError(err)
	if status == http.StatusInternalServerError {
		log.Printf("http: internal error: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON parses a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
