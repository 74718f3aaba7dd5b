package mongodb

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
)

func TestNewStudentDocumentDropsClientID(t *testing.T) {
	age := 22
	student := types.Student{
		ID:   "ffffffffffffffffffffffff",
		Name: "Jane Doe",
		Age:  &age,
		Address: types.Address{
			City:    "Agra",
			Country: "India",
		},
	}

	doc := newStudentDocument(student)

	if !doc.ID.IsZero() {
		t.Fatalf("expected zero _id in insert document, got %s", doc.ID.Hex())
	}
	if doc.Name != "Jane Doe" || doc.Age != 22 {
		t.Fatalf("unexpected document fields: %+v", doc)
	}
	if doc.Address.City != "Agra" || doc.Address.Country != "India" {
		t.Fatalf("address must map structurally, got %+v", doc.Address)
	}
}

func TestStudentDocumentDetail(t *testing.T) {
	doc := studentDocument{
		ID:      primitive.NewObjectID(),
		Name:    "Jane Doe",
		Age:     22,
		Address: addressDocument{City: "Agra", Country: "India"},
	}

	got := doc.detail()
	want := types.StudentDetail{
		Name:    "Jane Doe",
		Age:     22,
		Address: types.Address{City: "Agra", Country: "India"},
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestStudentSummaryDocumentSummary(t *testing.T) {
	doc := studentSummaryDocument{Name: "Jane Doe", Age: 22}

	got := doc.summary()
	if got.Name != "Jane Doe" || got.Age != 22 {
		t.Fatalf("expected name/age to carry over, got %+v", got)
	}
}

func TestUpdateFields(t *testing.T) {
	name := "Rahul"
	age := 20
	address := types.Address{City: "Delhi", Country: "India"}

	t.Run("empty update", func(t *testing.T) {
		fields := updateFields(types.UpdateStudent{})
		if len(fields) != 0 {
			t.Fatalf("expected empty $set document, got %v", fields)
		}
	})

	t.Run("single field", func(t *testing.T) {
		fields := updateFields(types.UpdateStudent{Age: &age})
		if len(fields) != 1 {
			t.Fatalf("expected one field, got %v", fields)
		}
		if fields["age"] != 20 {
			t.Fatalf("expected age 20, got %v", fields["age"])
		}
	})

	t.Run("all fields", func(t *testing.T) {
		fields := updateFields(types.UpdateStudent{
			Name:    &name,
			Age:     &age,
			Address: &address,
		})
		if len(fields) != 3 {
			t.Fatalf("expected three fields, got %v", fields)
		}
		if fields["name"] != "Rahul" {
			t.Fatalf("expected name Rahul, got %v", fields["name"])
		}
		addr, ok := fields["address"].(addressDocument)
		if !ok {
			t.Fatalf("expected address to map to its document shape, got %T", fields["address"])
		}
		if addr.City != "Delhi" || addr.Country != "India" {
			t.Fatalf("unexpected address document: %+v", addr)
		}
	})
}

func TestObjectIDFromHex(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := objectIDFromHex(oid.Hex())
	if err != nil {
		t.Fatalf("valid hex: unexpected error %v", err)
	}
	if got != oid {
		t.Fatalf("expected %s, got %s", oid.Hex(), got.Hex())
	}

	for _, bad := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := objectIDFromHex(bad)
		if !errors.Is(err, storage.ErrInvalidStudentID) {
			t.Fatalf("input %q: expected ErrInvalidStudentID, got %v", bad, err)
		}
	}
}
