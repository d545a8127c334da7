// Package response writes the JSON bodies shared by every handler.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the error envelope: {"error": "..."} plus field details
// for validation failures.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON encodes v with the given status. A nil v is written as `null`.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Text writes a plain-text body.
func Text(w http.ResponseWriter, status int, format string, args ...interface{}) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, format, args...)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

func ValidationError(w http.ResponseWriter, status int, message string, fields map[string]string) {
	JSON(w, status, ErrorBody{Error: message, Fields: fields})
}
