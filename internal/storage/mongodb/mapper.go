package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
)

// ─────────────────────────────────────────────────────────────────────────────
// This file is the record mapper: the only place that knows both the wire
// shape of a student (internal/types) and its persisted document shape.
//
// The two shapes differ in exactly one structural way — the identifier.
// Externally it is "id", a hex string; in the collection it is "_id", a
// native ObjectID assigned by the store. The renaming and the type
// conversion happen here, in both directions, and nowhere else. Raw
// driver output never reaches the wire without passing through these
// converters.
// ─────────────────────────────────────────────────────────────────────────────

// studentDocument is the persisted shape of a student:
//
//	{_id: <ObjectID>, name, age, address: {city, country}}
//
// The omitempty on _id keeps a zero ObjectID out of insert documents so
// the store assigns one.
type studentDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	Age     int                `bson:"age"`
	Address addressDocument    `bson:"address"`
}

// addressDocument is embedded in studentDocument. Address has no
// identity of its own, so it maps structurally with no renaming.
type addressDocument struct {
	City    string `bson:"city"`
	Country string `bson:"country"`
}

// studentSummaryDocument matches the rows produced by the list query's
// {name: 1, age: 1, _id: 0} projection.
type studentSummaryDocument struct {
	Name string `bson:"name"`
	Age  int    `bson:"age"`
}

// newStudentDocument builds the document to insert for a new student.
// The payload's ID field is dropped here — the store assigns _id, a
// client can never choose one. Age is non-nil by the time a payload
// reaches the store: the handler's validation required it.
func newStudentDocument(student types.Student) studentDocument {
	return studentDocument{
		Name: student.Name,
		Age:  *student.Age,
		Address: addressDocument{
			City:    student.Address.City,
			Country: student.Address.Country,
		},
	}
}

// detail converts a stored document into the outbound detail view.
func (d studentDocument) detail() types.StudentDetail {
	return types.StudentDetail{
		Name: d.Name,
		Age:  d.Age,
		Address: types.Address{
			City:    d.Address.City,
			Country: d.Address.Country,
		},
	}
}

// summary converts a projected list row into the outbound list view.
func (d studentSummaryDocument) summary() types.StudentSummary {
	return types.StudentSummary{
		Name: d.Name,
		Age:  d.Age,
	}
}

// updateFields builds the $set document for a partial update: exactly
// the fields that are present (non-nil) in the payload, as one group.
// Nil fields are never written — a partial update cannot clear a field.
// The result is empty when the payload carries nothing to write.
func updateFields(update types.UpdateStudent) bson.M {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Age != nil {
		fields["age"] = *update.Age
	}
	if update.Address != nil {
		fields["address"] = addressDocument{
			City:    update.Address.City,
			Country: update.Address.Country,
		}
	}
	return fields
}

// objectIDFromHex converts the canonical string form of an identifier
// into the store's native ObjectID. Every inbound id crosses through
// this function; a string that is not a valid 24-character hex ObjectID
// wraps storage.ErrInvalidStudentID so callers can classify it with
// errors.Is.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", storage.ErrInvalidStudentID, id)
	}
	return oid, nil
}
