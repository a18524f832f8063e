// Package response writes JSON responses in the shapes the admin frontend
// already consumes: payloads are returned as-is and errors carry a single
// human-readable "message" field.
package response

import (
	"encoding/json"
	"net/http"
)

func write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// JSON sends v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	write(w, status, v)
}

// Success sends a 200 with v.
func Success(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, v)
}

// Created sends a 201 with v.
func Created(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusCreated, v)
}

// Error sends {"message": msg} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, map[string]string{"message": message})
}

// ValidationError sends a 422 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	write(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"message": "Validation failed",
		"errors":  errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
