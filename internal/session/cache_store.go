package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aishuu11/hackathon-2025/internal/cache"
)

// CacheStore keeps sessions as JSON documents in a cache.Client, so the same
// code serves the in-memory and Redis drivers. Records expire after ttl of
// inactivity.
type CacheStore struct {
	client cache.Client
	ttl    time.Duration
}

// NewCacheStore creates a store over client.
func NewCacheStore(client cache.Client, ttl time.Duration) *CacheStore {
	return &CacheStore{client: client, ttl: ttl}
}

// Client returns the underlying cache client.
func (s *CacheStore) Client() cache.Client {
	return s.client
}

// Load returns the session or ErrNotFound.
func (s *CacheStore) Load(ctx context.Context, id string) (*Record, error) {
	data, err := s.client.Get(ctx, cache.SessionKey(id))
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return rec, nil
}

// Save writes the session and refreshes its TTL.
func (s *CacheStore) Save(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, cache.SessionKey(rec.ID), data, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes the session.
func (s *CacheStore) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, cache.SessionKey(id))
}

// Purge removes every session key. Other keys in the cache are left alone.
func (s *CacheStore) Purge(ctx context.Context) error {
	if err := s.client.DeleteByPrefix(ctx, cache.SessionKey("")); err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	return nil
}

// Ping checks the backing cache.
func (s *CacheStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// Close closes the backing cache.
func (s *CacheStore) Close() error {
	return s.client.Close()
}
