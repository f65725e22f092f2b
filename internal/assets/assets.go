// Package assets detaches inline data-URI images from complaint records.
// Blobs are stored content-addressed on the substrate and records keep a
// short "asset:" reference, so the complaint collection no longer round-trips
// every image on each write.
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"hostelhub/backend/internal/kvstore"
)

// RefPrefix marks a stored reference as opposed to an inline data-URI.
const RefPrefix = "asset:"

// Store puts and resolves image blobs on the key-value substrate.
type Store struct {
	KV  kvstore.Store
	Ctx context.Context
}

// NewStore creates an asset store over kv.
func NewStore(kv kvstore.Store) *Store {
	return &Store{KV: kv, Ctx: context.Background()}
}

// IsRef reports whether s is an asset reference rather than inline data.
func IsRef(s string) bool {
	return strings.HasPrefix(s, RefPrefix)
}

// Put stores the data-URI and returns its content-addressed reference.
// Identical blobs share one key.
func (s *Store) Put(dataURI string) (string, error) {
	sum := sha256.Sum256([]byte(dataURI))
	ref := RefPrefix + hex.EncodeToString(sum[:])
	if err := s.KV.Set(s.Ctx, ref, dataURI); err != nil {
		return "", err
	}
	return ref, nil
}

// Resolve turns an asset reference back into its data-URI. Inline values pass
// through unchanged; a dangling reference resolves to the empty string.
func (s *Store) Resolve(value string) string {
	if !IsRef(value) {
		return value
	}
	dataURI, err := s.KV.Get(s.Ctx, value)
	if err != nil {
		if err != kvstore.ErrNotFound {
			log.Printf("ERROR: Failed to resolve asset %s: %v", value, err)
		}
		return ""
	}
	return dataURI
}
