package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the payload inside every non-2xx response. Code is a stable
// machine-readable identifier (adapter_not_found, fetch_failed, ...);
// Message is for humans.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type APIError struct {
	Error ErrorBody `json:"error"`
}

func (e APIError) String() string {
	return e.Error.Code + ": " + e.Error.Message
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	WriteJSON(w, status, APIError{ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: RequestIDFrom(r.Context()),
	}})
}
