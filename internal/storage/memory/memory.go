// Package memory provides an in-memory implementation of the
// storage.Storage interface. It backs the handler tests and is handy
// for local development without a running MongoDB.
//
// Identifiers are real ObjectID hex strings — generated and parsed with
// the same primitives as the MongoDB backend — so ids, not-found
// behaviour, and malformed-id behaviour are interchangeable between the
// two implementations.
package memory

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
)

// listLimit mirrors the MongoDB backend's cap on list results.
const listLimit = 1000

// record is the stored form of a student. The id lives in the map key.
type record struct {
	name    string
	age     int
	address types.Address
}

// Memory is the concrete in-memory implementation of storage.Storage.
// A single RWMutex guards the map; reads take the shared lock.
type Memory struct {
	mu       sync.RWMutex
	students map[string]record
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty in-memory store.
func New() *Memory {
	return &Memory{students: make(map[string]record)}
}

// CreateStudent stores a new record under a freshly generated ObjectID
// and returns its hex form. Any id carried by the payload is dropped,
// matching the document-store behaviour.
func (m *Memory) CreateStudent(_ context.Context, student types.Student) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	m.students[id] = record{
		name:    student.Name,
		age:     *student.Age,
		address: student.Address,
	}

	return id, nil
}

// GetStudents returns the list view of every record matching the filter,
// capped at listLimit. Map iteration order is not deterministic, which
// matches the unspecified ordering of the real store.
func (m *Memory) GetStudents(_ context.Context, filter types.StudentFilter) ([]types.StudentSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	students := make([]types.StudentSummary, 0)
	for _, rec := range m.students {
		if filter.Country != "" && rec.address.Country != filter.Country {
			continue
		}
		if filter.MinAge != nil && rec.age < *filter.MinAge {
			continue
		}

		students = append(students, types.StudentSummary{Name: rec.name, Age: rec.age})
		if len(students) == listLimit {
			break
		}
	}

	return students, nil
}

// GetStudentByID returns the detail view of one record.
func (m *Memory) GetStudentByID(_ context.Context, id string) (types.StudentDetail, error) {
	if err := validateID(id); err != nil {
		return types.StudentDetail{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.students[id]
	if !ok {
		return types.StudentDetail{}, storage.ErrStudentNotFound
	}

	return types.StudentDetail{Name: rec.name, Age: rec.age, Address: rec.address}, nil
}

// UpdateStudentByID overwrites the fields present in update as one
// group. An update that writes nothing (all fields nil, or values
// already identical) still succeeds as long as the record exists.
func (m *Memory) UpdateStudentByID(_ context.Context, id string, update types.UpdateStudent) error {
	if err := validateID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.students[id]
	if !ok {
		return storage.ErrStudentNotFound
	}

	if update.Name != nil {
		rec.name = *update.Name
	}
	if update.Age != nil {
		rec.age = *update.Age
	}
	if update.Address != nil {
		rec.address = *update.Address
	}
	m.students[id] = rec

	return nil
}

// DeleteStudentByID removes one record permanently. Deleting an id that
// holds nothing — never created, or already deleted — reports not found.
func (m *Memory) DeleteStudentByID(_ context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.students[id]; !ok {
		return storage.ErrStudentNotFound
	}
	delete(m.students, id)

	return nil
}

// Ping always succeeds — the store is the process itself.
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// validateID applies the same canonical-form check as the MongoDB
// mapper, so a malformed id fails identically on both backends.
func validateID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: %q", storage.ErrInvalidStudentID, id)
	}
	return nil
}
