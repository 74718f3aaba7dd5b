// Package student contains all HTTP handlers related to the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a storage
// backend. To inject dependencies we use a factory function that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// Because the inner function "closes over" the outer parameters, it can
// access `storage` even after the factory call has returned. Example:
//
//	router.HandleFunc("POST /students/{$}", student.New(storage))
//	//                                              ^^^^^^^^^^^^^
//	//                         New(storage) is called ONCE at startup.
//	//                         It returns a handler func which is called
//	//                         on EVERY incoming request.
//
// Every handler validates its input before touching the store, and maps
// store outcomes onto the wire contract: validation failures are 422
// with per-field detail, a missing (or malformed) id is 404 naming the
// requested id, and store failures surface as 500 — never masked as
// not-found.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/utils/response"
)

// notFound reports whether a storage error should render as 404.
//
// Policy: a malformed id is treated exactly like an id that matches
// nothing. Both say "no such resource" — a client that fabricates an id
// learns nothing about which part was wrong. The check lives here, at
// package level, so all three id-taking handlers apply the same policy.
func notFound(err error) bool {
	return errors.Is(err, storage.ErrStudentNotFound) ||
		errors.Is(err, storage.ErrInvalidStudentID)
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /students/
// Creates a new student from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Jane Doe", "age": 22,
//	  "address": { "city": "Agra", "country": "India" } }
//
// A client-supplied "id" is ignored — the store assigns one.
//
// Success response (201 Created):
//
//	{ "id": "66b2f7a1c3d4e5f6a7b8c9d0" }
//
// Error responses:
//
//	400 Bad Request           — empty body or malformed JSON
//	422 Unprocessable Entity  — missing/invalid fields, per-field detail
//	500 Internal              — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	// This is the factory function. It runs ONCE when the route is
	// registered. It captures `storage` in the closure below.

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		// ── Step 1: Decode JSON body into a Student struct ────────────
		var student types.Student

		err := json.NewDecoder(r.Body).Decode(&student)

		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty — nothing to decode.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}

		if err != nil {
			// Any other decode error: malformed JSON, wrong types, etc.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 2: Validate the decoded struct ───────────────────────
		// Validation short-circuits here — nothing reaches the store
		// until the payload is known to be well-formed.
		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(validateErrs))
			return
		}

		// ── Step 3: Persist to the store ──────────────────────────────
		// CreateStudent drops any client-supplied id and returns the
		// store-assigned identifier in its canonical string form.
		id, err := storage.CreateStudent(r.Context(), student)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.String("id", id))

		// ── Step 4: Return 201 Created with the new student's id ──────
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /students/
// Returns the list view of students, optionally filtered.
//
// Query parameters (independently optional, combined with AND):
//
//	country — exact match on address country
//	age     — minimum age; keeps records with age ≥ the given value
//
// Success response (200 OK) — a named container, never a bare array:
//
//	{ "data": [ { "name": "Jane Doe", "age": 22 }, ... ] }
//
// "data" is [] (not null) when nothing matches. At most 1000 items are
// returned; there is no pagination. Item order is unspecified.
//
// Error responses:
//
//	400 Bad Request  — age is not a valid integer
//	500 Internal     — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetList(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing students")

		var filter types.StudentFilter
		query := r.URL.Query()

		filter.Country = query.Get("country")

		if v := query.Get("age"); v != "" {
			minAge, err := strconv.Atoi(v)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError(errors.New("invalid age: must be an integer")))
				return
			}
			filter.MinAge = &minAge
		}

		students, err := storage.GetStudents(r.Context(), filter)
		if err != nil {
			slog.Error("error listing students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, types.StudentList{Data: students})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /students/{id}
// Fetches the detail view of a single student.
//
// Path parameter: {id} — the canonical string form of a store id
//
// Success response (200 OK) — no id field:
//
//	{ "name": "Jane Doe", "age": 22,
//	  "address": { "city": "Agra", "country": "India" } }
//
// Error responses:
//
//	404 Not Found  — no such student, or the id is malformed:
//	                 { "detail": "Student <id> not found" }
//	500 Internal   — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue("id") extracts the {id} segment from the URL.
		// This works because Go 1.22+ supports named path parameters in
		// the ServeMux pattern: "GET /students/{id}"
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

		student, err := storage.GetStudentByID(r.Context(), id)
		if err != nil {
			if notFound(err) {
				response.WriteJSON(w, http.StatusNotFound, response.StudentNotFound(id))
				return
			}

			slog.Error("error getting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /students/{id}
// Applies a partial update: only the fields present in the body are
// written, as one atomic group. Omitted fields — and fields explicitly
// set to null — stay untouched; a PATCH can never clear a field.
//
// Request body (JSON) — any subset of:
//
//	{ "name": "Rahul", "age": 20,
//	  "address": { "city": "Delhi", "country": "India" } }
//
// Provided fields must meet the creation constraints: a name must be
// non-empty, an address must be complete. An empty object {} is a valid
// no-op update.
//
// Success response: 204 No Content, empty body. Updating a record to
// values it already holds is still success — the operation is
// idempotent.
//
// Error responses:
//
//	400 Bad Request           — empty body or malformed JSON
//	422 Unprocessable Entity  — a provided field violates its constraint
//	404 Not Found             — { "detail": "Student <id> not found" }
//	500 Internal              — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		// Decode the update payload
		var update types.UpdateStudent
		err := json.NewDecoder(r.Body).Decode(&update)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate only what was provided: nil fields are skipped, a
		// present name must be non-empty, a present address complete.
		if err := validator.New().Struct(update); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusUnprocessableEntity,
				response.ValidationError(validateErrs))
			return
		}

		if err := storage.UpdateStudentByID(r.Context(), id, update); err != nil {
			if notFound(err) {
				response.WriteJSON(w, http.StatusNotFound, response.StudentNotFound(id))
				return
			}

			slog.Error("error updating student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student updated", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /students/{id}
// Permanently removes a student record. The embedded address goes with
// the document; nothing else references it.
//
// Success response: 200 OK, empty body.
//
// Error responses:
//
//	404 Not Found  — no such student (including "already deleted"), or
//	                 the id is malformed:
//	                 { "detail": "Student <id> not found" }
//	500 Internal   — store error
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		if err := storage.DeleteStudentByID(r.Context(), id); err != nil {
			if notFound(err) {
				response.WriteJSON(w, http.StatusNotFound, response.StudentNotFound(id))
				return
			}

			slog.Error("error deleting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		w.WriteHeader(http.StatusOK)
	}
}
