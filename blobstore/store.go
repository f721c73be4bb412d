// Package blobstore abstracts where table snapshots live.
//
// Snapshots are small immutable objects written and read whole, so the Store
// interface is deliberately flat: Put, Get, List, Delete. Backends exist for
// memory (tests), the local filesystem, and S3 (subpackage s3).
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named object does not exist.
//
// Implementations return errors satisfying errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("object not found")

// Store is a named-object store for snapshot blobs.
type Store interface {
	// Put writes data under name, replacing any existing object atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads the object stored under name.
	Get(ctx context.Context, name string) ([]byte, error)

	// List returns the names of all objects with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the object stored under name. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, name string) error
}
