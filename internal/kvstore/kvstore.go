// Package kvstore is the persistence substrate of the application: a flat
// key-value store holding UTF-8 text values. The original system kept its
// state in browser localStorage; the backends here reproduce those semantics
// (whole-value reads and writes, last write wins) on top of Redis, Postgres
// or an in-process map.
package kvstore

import "context"

// Store is the injected persistence dependency. Values are opaque text;
// callers do their own (de)serialization.
type Store interface {
	// Get returns the value for key, or ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, replacing any prior content.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every key in this store's namespace. Backs logout.
	Clear(ctx context.Context) error
}
