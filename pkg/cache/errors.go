package cache

import "errors"

// ErrUnknownBackend is returned by [Open] for a backend name it does not know.
var ErrUnknownBackend = errors.New("unknown cache backend")

// ErrUnavailable wraps connection failures of the Redis and MongoDB backends
// so callers can tell an unreachable server from a bad option.
var ErrUnavailable = errors.New("cache backend unavailable")
