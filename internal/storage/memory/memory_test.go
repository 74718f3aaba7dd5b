package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
)

func newStudent(name string, age int, city, country string) types.Student {
	return types.Student{
		Name:    name,
		Age:     &age,
		Address: types.Address{City: city, Country: country},
	}
}

func TestCreateAssignsCanonicalID(t *testing.T) {
	store := New()
	ctx := context.Background()

	// A client-supplied id is dropped; the store assigns its own, and
	// the assigned id is a valid canonical hex ObjectID.
	student := newStudent("Jane Doe", 22, "Agra", "India")
	student.ID = "ffffffffffffffffffffffff"

	id, err := store.CreateStudent(ctx, student)
	if err != nil {
		t.Fatalf("create: unexpected error %v", err)
	}
	if id == student.ID {
		t.Fatalf("expected a store-assigned id, got the client-supplied one")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		t.Fatalf("assigned id %q is not canonical hex: %v", id, err)
	}
}

func TestGetStudentByIDSentinels(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.GetStudentByID(ctx, "not-an-id"); !errors.Is(err, storage.ErrInvalidStudentID) {
		t.Fatalf("malformed id: expected ErrInvalidStudentID, got %v", err)
	}

	missing := primitive.NewObjectID().Hex()
	if _, err := store.GetStudentByID(ctx, missing); !errors.Is(err, storage.ErrStudentNotFound) {
		t.Fatalf("missing id: expected ErrStudentNotFound, got %v", err)
	}

	id, err := store.CreateStudent(ctx, newStudent("Jane Doe", 22, "Agra", "India"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	detail, err := store.GetStudentByID(ctx, id)
	if err != nil {
		t.Fatalf("fetch: unexpected error %v", err)
	}
	if detail.Name != "Jane Doe" || detail.Age != 22 || detail.Address.City != "Agra" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestGetStudentsFilter(t *testing.T) {
	store := New()
	ctx := context.Background()

	seeds := []types.Student{
		newStudent("Jane Doe", 22, "Agra", "India"),
		newStudent("Rahul", 19, "Delhi", "India"),
		newStudent("Alice", 25, "Lyon", "France"),
	}
	for _, s := range seeds {
		if _, err := store.CreateStudent(ctx, s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	minAge := 20
	cases := []struct {
		name   string
		filter types.StudentFilter
		want   []string
	}{
		{"no filter", types.StudentFilter{}, []string{"Jane Doe", "Rahul", "Alice"}},
		{"min age", types.StudentFilter{MinAge: &minAge}, []string{"Jane Doe", "Alice"}},
		{"country", types.StudentFilter{Country: "India"}, []string{"Jane Doe", "Rahul"}},
		{"both", types.StudentFilter{Country: "India", MinAge: &minAge}, []string{"Jane Doe"}},
		{"no match", types.StudentFilter{Country: "Japan"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.GetStudents(ctx, tc.filter)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got == nil {
				t.Fatalf("expected a non-nil slice")
			}
			names := make(map[string]bool)
			for _, s := range got {
				names[s.Name] = true
			}
			if len(names) != len(tc.want) {
				t.Fatalf("expected %d students, got %v", len(tc.want), got)
			}
			for _, name := range tc.want {
				if !names[name] {
					t.Fatalf("expected %q in results, got %v", name, got)
				}
			}
		})
	}
}

func TestGetStudentsCap(t *testing.T) {
	store := New()
	ctx := context.Background()

	for i := 0; i < listLimit+10; i++ {
		s := newStudent(fmt.Sprintf("Student %d", i), 20, "Agra", "India")
		if _, err := store.CreateStudent(ctx, s); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	got, err := store.GetStudents(ctx, types.StudentFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != listLimit {
		t.Fatalf("expected list capped at %d, got %d", listLimit, len(got))
	}
}

func TestUpdateStudentByID(t *testing.T) {
	store := New()
	ctx := context.Background()

	id, err := store.CreateStudent(ctx, newStudent("Jane Doe", 22, "Agra", "India"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Present fields are overwritten; absent fields stay untouched.
	age := 23
	if err := store.UpdateStudentByID(ctx, id, types.UpdateStudent{Age: &age}); err != nil {
		t.Fatalf("update: unexpected error %v", err)
	}
	detail, err := store.GetStudentByID(ctx, id)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if detail.Age != 23 || detail.Name != "Jane Doe" {
		t.Fatalf("expected age 23 with name untouched, got %+v", detail)
	}

	// A no-op update succeeds while the record exists.
	if err := store.UpdateStudentByID(ctx, id, types.UpdateStudent{}); err != nil {
		t.Fatalf("no-op update: unexpected error %v", err)
	}

	// Applying identical values again is still success.
	if err := store.UpdateStudentByID(ctx, id, types.UpdateStudent{Age: &age}); err != nil {
		t.Fatalf("idempotent update: unexpected error %v", err)
	}

	// Sentinels for missing and malformed ids.
	missing := primitive.NewObjectID().Hex()
	if err := store.UpdateStudentByID(ctx, missing, types.UpdateStudent{Age: &age}); !errors.Is(err, storage.ErrStudentNotFound) {
		t.Fatalf("missing id: expected ErrStudentNotFound, got %v", err)
	}
	if err := store.UpdateStudentByID(ctx, "bad", types.UpdateStudent{Age: &age}); !errors.Is(err, storage.ErrInvalidStudentID) {
		t.Fatalf("malformed id: expected ErrInvalidStudentID, got %v", err)
	}
}

func TestDeleteStudentByID(t *testing.T) {
	store := New()
	ctx := context.Background()

	id, err := store.CreateStudent(ctx, newStudent("Jane Doe", 22, "Agra", "India"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.DeleteStudentByID(ctx, id); err != nil {
		t.Fatalf("delete: unexpected error %v", err)
	}
	if _, err := store.GetStudentByID(ctx, id); !errors.Is(err, storage.ErrStudentNotFound) {
		t.Fatalf("fetch after delete: expected ErrStudentNotFound, got %v", err)
	}
	if err := store.DeleteStudentByID(ctx, id); !errors.Is(err, storage.ErrStudentNotFound) {
		t.Fatalf("second delete: expected ErrStudentNotFound, got %v", err)
	}
}
