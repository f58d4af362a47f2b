// Package cache provides the byte-level caching used by CommitCraft.
//
// Two things are cached: upstream HTTP responses (the GitHub contribution
// calendar) and rendered artifacts (SVG, PNG, JSON) for explicitly seeded
// requests. Scenes built without a seed are fresh on every call and are
// never cached.
//
// # Backends
//
//   - [FileCache]: one JSON entry per key under a directory, for the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: documents with a TTL index, for deployments that already
//     run MongoDB
//   - [NullCache]: caching disabled
//
// # Keys
//
// Keys are produced by a [Keyer] so that every backend sees the same
// layout. [ScopedKeyer] prefixes every key, separating tenants that share
// one backend.
package cache

import (
	"context"
	"time"
)

// Default TTLs.
const (
	// CalendarTTL matches the s-maxage the HTTP API advertises for calendars.
	CalendarTTL = time.Hour
	// ArtifactTTL applies to rendered documents of seeded requests.
	ArtifactTTL = 24 * time.Hour
)

// Cache stores opaque byte values by key.
type Cache interface {
	// Get returns the value for key. A miss is reported with hit=false and
	// a nil error; errors are reserved for backend failures.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl <= 0 stores without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
