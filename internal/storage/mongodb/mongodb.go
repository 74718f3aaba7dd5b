// Package mongodb provides a MongoDB-backed implementation of the
// storage.Storage interface using the official Go driver.
//
// WHY A DOCUMENT STORE?
// ─────────────────────
// A student is a small self-contained document (name, age, embedded
// address) addressed by a single unique identifier. MongoDB stores it
// exactly in that shape — one collection, one document per student,
// `_id` assigned on insert — so there is no relational mapping layer to
// maintain. Every operation this application needs (insert, filtered
// find, $set update, delete) is a single-document primitive, and each of
// those is atomic at the document level; no cross-document transactions
// are used or required.
//
// The *mongo.Client is a connection pool, safe for concurrent use by
// every request goroutine. It is created once at startup and reused for
// the life of the process.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KomalSinghhhh/FASTapi-mongo/internal/config"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/storage"
	"github.com/KomalSinghhhh/FASTapi-mongo/internal/types"
)

// listLimit caps how many records a single list call returns. There is
// no pagination cursor; results beyond the cap are simply cut off.
const listLimit = 1000

// MongoDB is the concrete implementation of storage.Storage.
type MongoDB struct {
	client   *mongo.Client
	students *mongo.Collection
}

// Compile-time proof that MongoDB satisfies the contract.
var _ storage.Storage = (*MongoDB)(nil)

// New connects to the MongoDB deployment named by cfg.Mongo.URL and
// returns a ready-to-use *MongoDB bound to the configured database and
// collection.
//
// mongo.Connect does not dial eagerly — a bad URL or unreachable server
// would otherwise surface on the first query. The Ping forces a real
// round-trip so misconfiguration fails here, at startup.
func New(ctx context.Context, cfg *config.Config) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return nil, fmt.Errorf("mongodb.New: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongodb.New: ping: %w", err)
	}

	return &MongoDB{
		client:   client,
		students: client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection),
	}, nil
}

// Close releases the client and its connection pool. Called once during
// graceful shutdown, after the HTTP server has stopped.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Ping reports whether the store is currently reachable.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateStudent inserts one new document and returns the store-assigned
// identifier as its canonical hex string.
//
// newStudentDocument drops any id carried by the payload, so exactly one
// fresh document is created per call and the client can never pick its
// own _id. The assigned identifier comes straight from the insert
// result — no re-fetch needed.
// ─────────────────────────────────────────────────────────────────────────────
func (m *MongoDB) CreateStudent(ctx context.Context, student types.Student) (string, error) {
	result, err := m.students.InsertOne(ctx, newStudentDocument(student))
	if err != nil {
		return "", fmt.Errorf("CreateStudent: insert: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("CreateStudent: unexpected inserted id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudents returns the list view of every student matching the
// filter, capped at listLimit.
//
// The query combines the optional filters with logical AND:
//
//	country → exact match on the embedded address.country field
//	age     → {$gte: N}, i.e. age greater than or equal to the minimum
//
// The projection {name: 1, age: 1, _id: 0} makes the server return only
// the list-view fields. No sort is applied — ordering is whatever the
// store yields.
// ─────────────────────────────────────────────────────────────────────────────
func (m *MongoDB) GetStudents(ctx context.Context, filter types.StudentFilter) ([]types.StudentSummary, error) {
	query := bson.M{}
	if filter.Country != "" {
		query["address.country"] = filter.Country
	}
	if filter.MinAge != nil {
		query["age"] = bson.M{"$gte": *filter.MinAge}
	}

	opts := options.Find().
		SetProjection(bson.M{"name": 1, "age": 1, "_id": 0}).
		SetLimit(listLimit)

	cursor, err := m.students.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: find: %w", err)
	}
	defer cursor.Close(ctx)

	// Pre-allocate an empty (non-nil) slice.
	// Returning [] instead of null in JSON is better API behaviour.
	students := make([]types.StudentSummary, 0)

	for cursor.Next(ctx) {
		var doc studentSummaryDocument

		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("GetStudents: decode: %w", err)
		}

		students = append(students, doc.summary())
	}

	// cursor.Err() captures any error that occurred during iteration.
	// This is separate from Decode errors.
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: cursor: %w", err)
	}

	return students, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudentByID fetches exactly one document matched by _id and maps it
// to the detail view. The id is unique, so at most one document can ever
// match.
//
// Error classification:
//
//	malformed id          → storage.ErrInvalidStudentID (from the mapper)
//	no matching document  → storage.ErrStudentNotFound
//	anything else         → wrapped store error
//
// ─────────────────────────────────────────────────────────────────────────────
func (m *MongoDB) GetStudentByID(ctx context.Context, id string) (types.StudentDetail, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return types.StudentDetail{}, err
	}

	var doc studentDocument

	err = m.students.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// mongo.ErrNoDocuments is the driver's sentinel for "nothing
		// matched" — translate it so handlers never import the driver.
		return types.StudentDetail{}, storage.ErrStudentNotFound
	}
	if err != nil {
		return types.StudentDetail{}, fmt.Errorf("GetStudentByID: find: %w", err)
	}

	return doc.detail(), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateStudentByID applies the present fields of update to one document
// as a single atomic $set.
//
// A modified count of zero is ambiguous: the document may not exist, or
// it may already hold exactly the written values. The two cases are told
// apart with a follow-up existence probe by _id — found means the update
// was an idempotent no-op (success), absent means not found. An update
// with nothing to write skips the write entirely and goes straight to
// the probe.
//
// The write and the probe are two separate round-trips, not a
// transaction: a concurrent delete landing between them reads as a
// successful no-op here. That window is accepted.
// ─────────────────────────────────────────────────────────────────────────────
func (m *MongoDB) UpdateStudentByID(ctx context.Context, id string, update types.UpdateStudent) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	fields := updateFields(update)
	if len(fields) > 0 {
		result, err := m.students.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
		if err != nil {
			return fmt.Errorf("UpdateStudentByID: update: %w", err)
		}

		if result.ModifiedCount == 1 {
			return nil
		}
	}

	err = m.students.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrStudentNotFound
	}
	if err != nil {
		return fmt.Errorf("UpdateStudentByID: exists: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DeleteStudentByID removes one document by _id. A deleted count of zero
// means there was nothing to delete — the caller sees ErrStudentNotFound
// whether the student never existed or was already deleted. Addresses
// are embedded, so removing the document removes everything; there is
// nothing to cascade.
// ─────────────────────────────────────────────────────────────────────────────
func (m *MongoDB) DeleteStudentByID(ctx context.Context, id string) error {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := m.students.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: delete: %w", err)
	}

	if result.DeletedCount == 0 {
		return storage.ErrStudentNotFound
	}

	return nil
}
