package seen

import (
	"context"
	"fmt"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

type Options struct {
	Backend    string
	FilePath   string
	SQLitePath string
	RedisAddr  string
	RedisKey   string
}

// Open returns the Store for the configured backend. An empty backend means
// the plain text file.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.FilePath), nil
	case BackendSQLite:
		return NewSQLiteStore(opts.SQLitePath)
	case BackendRedis:
		return NewRedisStore(ctx, opts.RedisAddr, opts.RedisKey)
	default:
		return nil, fmt.Errorf("unknown seen store backend: %s", opts.Backend)
	}
}
