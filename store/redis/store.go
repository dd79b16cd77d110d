// Package redis implements job.Store using Redis. Each job record is a
// Hash whose fields are the job's data map entries plus reserved
// metadata fields; job identities are tracked in a Set for listing.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	s := redisstore.New(client)
//	if err := s.Ping(ctx); err != nil { ... }
package redis

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/xraph/stride/job"
)

var _ job.Store = (*Store)(nil)

// Option configures the Store.
type Option func(*Store)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithKeyPrefix overrides the default "stride" key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// Store is a Redis implementation of job.Store. The caller owns the
// client lifecycle; Close is a no-op.
type Store struct {
	client *goredis.Client
	logger *slog.Logger
	prefix string
}

// New creates a Redis store over an existing client.
func New(client *goredis.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		logger: slog.Default(),
		prefix: "stride",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Migrate is a no-op for the schemaless Redis store.
func (s *Store) Migrate(_ context.Context) error { return nil }

// Ping checks connectivity to Redis.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("stride/redis: ping: %w", err)
	}
	return nil
}

// Close is a no-op; the caller owns the client.
func (s *Store) Close() error { return nil }
