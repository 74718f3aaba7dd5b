// Package storage defines the Storage interface — a contract that any
// document-store backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// Handlers (HTTP layer) should not know or care which store they are
// talking to. By depending only on this interface:
//
//   - Switching stores = implement the interface for the new backend,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass the in-memory implementation.
//     No running MongoDB needed for unit tests.
//
// Every method takes a context.Context because every call is a store
// round-trip; the request context flows through so a backend can honour
// cancellation. Record identifiers cross this boundary in their
// canonical string (hex) form — converting to the store's native id
// type is the implementation's job, and a string that cannot be
// converted surfaces as ErrInvalidStudentID.
package storage

import (
	"context"
	"errors"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
)

// Sentinel errors shared by all Storage implementations. Handlers test
// for them with errors.Is to pick the HTTP status; anything else is a
// store failure and surfaces as a server error.
var (
	// ErrStudentNotFound means the id was well-formed but no document
	// matches it.
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidStudentID means the id string is not a valid canonical
	// form of the store's native identifier and can never match a
	// document.
	ErrInvalidStudentID = errors.New("invalid student id")
)

// Storage is the document-store contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
type Storage interface {
	// CreateStudent inserts a new student document and returns the
	// store-assigned identifier in its canonical string form. Any id
	// carried by the payload is dropped before insertion.
	CreateStudent(ctx context.Context, student types.Student) (string, error)

	// GetStudents returns the list-view projection of every student
	// matching the filter, capped at 1000 records, in store-default
	// order. Returns an empty slice (not nil) if nothing matches.
	GetStudents(ctx context.Context, filter types.StudentFilter) ([]types.StudentSummary, error)

	// GetStudentByID fetches the detail-view projection of a single
	// student. Returns ErrStudentNotFound when no document matches and
	// ErrInvalidStudentID when the id cannot be parsed.
	GetStudentByID(ctx context.Context, id string) (types.StudentDetail, error)

	// UpdateStudentByID applies the non-nil fields of update to the
	// student in a single atomic set. Absent fields stay untouched. A
	// no-op update (empty set, or values already identical) succeeds as
	// long as the student exists; otherwise ErrStudentNotFound.
	UpdateStudentByID(ctx context.Context, id string, update types.UpdateStudent) error

	// DeleteStudentByID removes a student document permanently. Returns
	// ErrStudentNotFound when nothing was deleted.
	DeleteStudentByID(ctx context.Context, id string) error

	// Ping verifies the store is reachable. Used by the readiness probe.
	Ping(ctx context.Context) error
}
