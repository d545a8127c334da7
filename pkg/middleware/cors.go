// Package middleware holds the global HTTP middleware stack.
package middleware

import "net/http"

// Every route this API exposes answers to one of these.
const (
	corsMethods = "GET, POST, PUT, DELETE"
	corsHeaders = "Content-Type, X-Request-ID"
)

// CORS opens the API to a browser front-end served from origin.
// "*" admits any origin.
func CORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin == "*" || r.Header.Get("Origin") == origin {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				if origin != "*" {
					h.Add("Vary", "Origin")
				}
			}

			// Preflights never reach the router; chi would answer 405.
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
