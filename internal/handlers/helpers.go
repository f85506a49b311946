// File: internal/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/henghaopu/nuxt-chat/internal/services"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// isValidationError reports whether err is a service-level validation error,
// which maps to 400 at this boundary.
func isValidationError(err error) bool {
	var chatErr *services.ChatError
	return errors.As(err, &chatErr) && chatErr.Type == services.ErrTypeValidation
}
