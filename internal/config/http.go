package config

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response body")
	}
}

// Error writes a JSON error body. Every error response on the API is a
// `{"error": ...}` object, the status code alone signals ok/fail.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
