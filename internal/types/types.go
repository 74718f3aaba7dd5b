// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, and utils can all import types without depending
// on each other.
package types

// Address is a student's place of residence. It has no identity of its
// own: it only ever exists embedded inside a Student record and is
// mapped structurally, field for field.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (lowercase names match REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-zero / non-empty.
type Address struct {
	City    string `json:"city"    validate:"required"`
	Country string `json:"country" validate:"required"`
}

// Student is the full wire shape of a student record. It doubles as the
// creation payload: clients POST a Student and receive the assigned id
// back.
//
// ID is the canonical string (hex) form of the store's native
// identifier. It is assigned by the store on creation and immutable
// afterwards — a value supplied by the client is dropped before
// insertion, never persisted. Responses only ever carry this string
// form, never the store's internal representation.
//
// Age is a pointer so "key absent" and "age": 0 stay distinguishable:
// required on a plain int would reject a newborn's perfectly valid
// zero. The handler validates before the store sees the payload, so
// storage implementations may dereference it.
type Student struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"    validate:"required"`
	Age     *int    `json:"age"     validate:"required"`
	Address Address `json:"address" validate:"required"`
}

// UpdateStudent is the partial-update (PATCH) payload. Every field is a
// pointer so the decoder can distinguish "key absent" from "key present
// with a value":
//
//   - nil     → field was omitted (or explicitly null): the stored value
//     is left unchanged — never written, never cleared.
//   - non-nil → the stored value is overwritten. Present values must
//     meet the same constraints as on creation: a name must be
//     non-empty, an address must be complete (city and country).
//
// A JSON null and an omitted key are equivalent here; there is no
// "clear this field" state.
type UpdateStudent struct {
	Name    *string  `json:"name,omitempty"    validate:"omitempty,min=1"`
	Age     *int     `json:"age,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// StudentSummary is the list-view projection: name and age only. The id
// and address are intentionally omitted from list responses.
type StudentSummary struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// StudentDetail is the detail-view projection returned when fetching a
// single student: name, age, and address — no id.
type StudentDetail struct {
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Address Address `json:"address"`
}

// StudentList wraps list results in a named container object instead of
// a bare top-level JSON array. Top-level arrays are assignable in old
// browsers, which opens the response to JSON hijacking.
type StudentList struct {
	Data []StudentSummary `json:"data"`
}

// StudentFilter carries the optional list-endpoint query parameters.
// Country filters by exact match on the address country; MinAge keeps
// records with age greater than or equal to the given value. Both are
// independently optional and combine with logical AND.
type StudentFilter struct {
	Country string
	MinAge  *int
}
