// Package cache stores rendered artifacts between runs.
//
// Rendering is deterministic in its inputs, so artifacts are cached under a
// key derived from the normalized pair sequence and the render options. The
// [FileCache] keeps entries on disk (one run can reuse a previous run's
// output for the same input file); [NullCache] disables caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key-value store with optional expiration.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey builds the cache key for one rendered artifact.
// parts should capture everything the output depends on: the normalized
// pairs, the palette, the visualization type, format and dimensions.
func ArtifactKey(format string, parts ...any) string {
	return hashKey("artifact:"+format, parts...)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
