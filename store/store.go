// Package store exposes the document store behind a hierarchical string
// path, the way the rest of the application addresses it:
//
//	users/customer/{id}  users/admin/{id}  users/deliveryman/{id}
//	products/{id}        products
//
// Mutate applies a combined set/append/remove change to one document in
// a single call, so order-lifecycle and cart updates never run as a
// read-modify-write pair.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrNotFound = errors.New("store: document not found")

// Mutation describes an atomic change to a single document. Field names
// are bson keys and may be dotted paths. Push appends one element to an
// array field, creating the array when absent; Pull removes every
// element equal to the given value.
type Mutation struct {
	Set  bson.M
	Push bson.M
	Pull bson.M
}

type Store interface {
	// Set overwrites the document at path with record, creating it when
	// absent.
	Set(ctx context.Context, path string, record interface{}) error
	// Merge updates only the given top-level fields, leaving the rest of
	// the document untouched.
	Merge(ctx context.Context, path string, fields bson.M) error
	// Get decodes the document at path into out. The second return is
	// false when no document exists; that is not an error.
	Get(ctx context.Context, path string, out interface{}) (bool, error)
	// Delete removes the document at path. Deleting an absent document
	// is a no-op.
	Delete(ctx context.Context, path string) error
	// List reads an entire collection and returns the raw documents
	// keyed by id. Iteration order is whatever the store yields.
	List(ctx context.Context, path string) (map[string]bson.Raw, error)
	// Mutate applies m to the document at path atomically. Returns
	// ErrNotFound when no document exists at path.
	Mutate(ctx context.Context, path string, m Mutation) error
}
