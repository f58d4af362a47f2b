package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend string // file (default), redis, mongo or none
	Dir     string // file backend directory
	Redis   RedisConfig
	Mongo   MongoConfig
}

// Open constructs the configured backend.
func Open(ctx context.Context, opts Options) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch strings.ToLower(opts.Backend) {
	case "", BackendFile:
		c, err = NewFileCache(opts.Dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, opts.Redis)
	case BackendMongo:
		c, err = NewMongoCache(ctx, opts.Mongo)
	case BackendNone, "null", "off":
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Clearer is implemented by backends that can drop every entry.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Clear empties c when the backend supports it.
func Clear(ctx context.Context, c Cache) (int, error) {
	switch cc := c.(type) {
	case *FileCache:
		return cc.Clear()
	case Clearer:
		return cc.Clear(ctx)
	case NullCache:
		return 0, nil
	}
	return 0, fmt.Errorf("cache %T cannot be cleared", c)
}
