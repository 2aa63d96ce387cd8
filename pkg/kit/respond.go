package kit

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the envelope for every failed request. Message is a fixed
// human-readable string; Errors carries the aggregated field-by-field summary
// for validation failures and is omitted otherwise.
type ErrorResponse struct {
	Message   string `json:"message"`
	Errors    string `json:"errors,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteErrorDetails(w, r, status, msg, "")
}

func WriteErrorDetails(w http.ResponseWriter, r *http.Request, status int, msg, details string) {
	WriteJSON(w, status, ErrorResponse{
		Message:   msg,
		Errors:    details,
		RequestID: chimw.GetReqID(r.Context()),
	})
}
