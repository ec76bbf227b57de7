// Package session keeps one user profile per chat session and serializes
// turns within a session.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
)

// Common errors
var (
	ErrNotFound         = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// Record is a stored session.
type Record struct {
	ID        string               `json:"id"`
	Profile   dialogue.UserProfile `json:"profile"`
	Turns     int                  `json:"turns"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Store persists session records.
type Store interface {
	Load(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}

// Purger is a store that can drop every session at once. CacheStore and
// SQLStore implement it.
type Purger interface {
	Purge(ctx context.Context) error
}
