package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed request by its HTTP status.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
	KindUnknown      Kind = "unknown"
)

const fallbackMessage = "An error occurred"

// RequestError is returned for transport failures and non-2xx responses alike.
// Status is zero when the server was never reached.
type RequestError struct {
	Message string
	Status  int
	Kind    Kind
	Details map[string]any
	Err     error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// FieldErrors returns the server-side field validation messages, if any.
func (e *RequestError) FieldErrors() map[string]string {
	raw, ok := e.Details["errors"].(map[string]any)
	if !ok {
		return nil
	}
	result := make(map[string]string, len(raw))
	for field, msg := range raw {
		if s, ok := msg.(string); ok {
			result[field] = s
		}
	}
	return result
}

// IsKind reports whether err is a RequestError of the given kind.
func IsKind(err error, kind Kind) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == kind
}

func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusBadRequest:
		return KindBadRequest
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// errorMessage picks the message shown to the user: detail, then message,
// then error.message, then the status text.
func errorMessage(status int, body map[string]any) string {
	if msg, ok := body["detail"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := body["message"].(string); ok && msg != "" {
		return msg
	}
	if nested, ok := body["error"].(map[string]any); ok {
		if msg, ok := nested["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fallbackMessage
}

func networkError(err error) *RequestError {
	return &RequestError{
		Message: fmt.Sprintf("Unable to reach the server: %v", err),
		Kind:    KindNetwork,
		Err:     err,
	}
}
