package service

import "context"

// CacheProvider is a byte-oriented key/value cache with per-entry TTL.
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
	Close() error
}
