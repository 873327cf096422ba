package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON encodes data as the JSON response body.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteRawJSON writes an already-encoded JSON payload.
func WriteRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// ErrorBody is the uniform error payload shape.
func ErrorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
