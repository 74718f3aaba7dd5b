// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here.
//
// Error responses share one envelope: a single "detail" key. For most
// errors it carries a human-readable message; for validation failures it
// carries a list with one entry per violated field. API consumers always
// know where to look.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// ErrorResponse is the envelope for every error with a single message:
//
//	{ "detail": "Student 66b2f7a1c3d4e5f6a7b8c9d0 not found" }
//
// ─────────────────────────────────────────────────────────────────────────────
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldError describes one violated constraint on one payload field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the envelope for validation failures — the same
// "detail" key, carrying per-field entries instead of a single message:
//
//	{ "detail": [ { "field": "name", "message": "field name is required" } ] }
type ValidationResponse struct {
	Detail []FieldError `json:"detail"`
}

// ─────────────────────────────────────────────────────────────────────────────
// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// Parameters:
//
//	w      — the http.ResponseWriter provided to every handler
//	status — HTTP status code (e.g. http.StatusOK = 200)
//	data   — any Go value; will be JSON-encoded and written to the body
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
// ─────────────────────────────────────────────────────────────────────────────
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	// Tell the client the body is JSON, not HTML or plain text.
	w.Header().Set("Content-Type", "application/json")

	// Write the HTTP status line (e.g. "HTTP/1.1 201 Created").
	// This must happen before any body bytes are written.
	w.WriteHeader(status)

	// json.NewEncoder(w) creates a JSON encoder that streams directly
	// into w, avoiding an intermediate buffer.
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard error envelope.
// Use this for unexpected errors (store failures, decode errors, etc.)
//
// Example usage:
//
//	response.WriteJSON(w, http.StatusInternalServerError,
//	    response.GeneralError(err))
func GeneralError(err error) ErrorResponse {
	return ErrorResponse{Detail: err.Error()}
}

// StudentNotFound builds the not-found envelope, naming the requested
// id: {"detail": "Student <id> not found"}. The same body is used
// whether the id matched nothing or could never match anything
// (malformed) — both mean "no such resource" to the caller.
func StudentNotFound(id string) ErrorResponse {
	return ErrorResponse{Detail: fmt.Sprintf("Student %s not found", id)}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts a slice of validator.FieldError values into
// the per-field validation envelope.
//
// The go-playground/validator package returns one FieldError per failing
// struct field. Each becomes a plain English entry so the client can see
// every violated field at once. Field names are lowercased to match
// their JSON spelling.
//
// Example output:
//
//	{ "detail": [
//	    { "field": "name", "message": "field name is required" },
//	    { "field": "age",  "message": "field age is required" }
//	] }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) ValidationResponse {
	fieldErrors := make([]FieldError, 0, len(errs))

	for _, e := range errs {
		field := strings.ToLower(e.Field())

		var msg string
		switch e.ActualTag() {
		// "required" tag — field was missing or zero-valued
		case "required":
			msg = fmt.Sprintf("field %s is required", field)
		// "min" tag — a provided value that must not be empty
		case "min":
			msg = fmt.Sprintf("field %s must not be empty", field)
		// Catch-all for any other validation tag
		default:
			msg = fmt.Sprintf("field %s is invalid", field)
		}

		fieldErrors = append(fieldErrors, FieldError{Field: field, Message: msg})
	}

	return ValidationResponse{Detail: fieldErrors}
}
