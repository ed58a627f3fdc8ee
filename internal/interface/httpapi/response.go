package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"aeron-recovery-service/internal/domain/entity"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []entity.FieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeError maps core errors to status codes. fallback is the message used
// for unexpected failures so internal detail never reaches the client.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var ve *entity.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: ve.Message, Errors: ve.Fields})
	case errors.Is(err, entity.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Flight not found")
	default:
		writeMessage(w, http.StatusInternalServerError, fallback)
	}
}
