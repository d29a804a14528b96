package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Code   string            `json:"code"`
	Errors map[string]string `json:"errors,omitempty"`
}

// MessageBody answers mutations that have nothing else to return.
type MessageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		fallback := ErrorBody{
			Code:   "ENCODING_ERROR",
			Detail: "Failed to encode response",
		}
		_ = json.NewEncoder(w).Encode(fallback)
	}
}

// Success responses carry the resource itself, not an envelope.
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

func Message(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageBody{Message: message})
}

// Error responses
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{
		Code:   "BAD_REQUEST",
		Detail: message,
		Errors: details,
	})
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Code:   "VALIDATION_ERROR",
		Detail: "Validation failed",
		Errors: details,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, ErrorBody{
		Code:   "UNAUTHORIZED",
		Detail: message,
	})
}

func Forbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, ErrorBody{
		Code:   "FORBIDDEN",
		Detail: message,
	})
}

func NotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorBody{
		Code:   "NOT_FOUND",
		Detail: message,
	})
}

func InternalServerError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, ErrorBody{
		Code:   "INTERNAL_SERVER_ERROR",
		Detail: message,
	})
}

func Conflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, ErrorBody{
		Code:   "CONFLICT",
		Detail: message,
	})
}
