package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aishuu11/hackathon-2025/internal/dialogue"
	"github.com/aishuu11/hackathon-2025/internal/observability"
)

// TurnObserver is notified after every processed turn.
type TurnObserver interface {
	ObserveTurn(ctx context.Context, sessionID string, turn dialogue.Turn)
}

// Manager runs dialogue turns against stored sessions. Turns within one
// session are serialized; different sessions run in parallel.
type Manager struct {
	logger   *observability.Logger
	engine   *dialogue.Engine
	store    Store
	observer TurnObserver
	locks    *keyedMutex
	now      func() time.Time
}

// NewManager creates a session manager. observer may be nil.
func NewManager(logger *observability.Logger, engine *dialogue.Engine, store Store, observer TurnObserver) *Manager {
	if logger == nil {
		logger = observability.Nop()
	}
	return &Manager{
		logger:   logger.WithComponent("session"),
		engine:   engine,
		store:    store,
		observer: observer,
		locks:    newKeyedMutex(),
		now:      time.Now,
	}
}

// Result is the outcome of a chat turn.
type Result struct {
	SessionID string
	Turn      dialogue.Turn
}

// Chat processes one message. An empty sessionID starts a new session.
func (m *Manager) Chat(ctx context.Context, sessionID, message string) (*Result, error) {
	id, err := resolveID(sessionID)
	if err != nil {
		return nil, err
	}

	unlock := m.locks.Lock(id)
	defer unlock()

	rec, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	turn := m.engine.Respond(rec.Profile, message)
	rec.Profile = turn.Profile
	rec.Turns++
	rec.UpdatedAt = m.now()

	if err := m.store.Save(ctx, rec); err != nil {
		return nil, err
	}

	if m.observer != nil {
		m.observer.ObserveTurn(ctx, id, turn)
	}
	return &Result{SessionID: id, Turn: turn}, nil
}

// Profile returns the session's profile. Unknown or empty ids get a default
// profile under a new id without creating a session.
func (m *Manager) Profile(ctx context.Context, sessionID string) (string, dialogue.UserProfile, error) {
	id, err := resolveID(sessionID)
	if err != nil {
		return "", dialogue.UserProfile{}, err
	}

	unlock := m.locks.Lock(id)
	defer unlock()

	rec, err := m.load(ctx, id)
	if err != nil {
		return "", dialogue.UserProfile{}, err
	}
	return id, rec.Profile.Clone(), nil
}

// UpdateProfile merges a partial profile into the session, creating the
// session if needed.
func (m *Manager) UpdateProfile(ctx context.Context, sessionID string, update dialogue.ProfileUpdate) (string, dialogue.UserProfile, error) {
	if err := update.Validate(); err != nil {
		return "", dialogue.UserProfile{}, err
	}
	id, err := resolveID(sessionID)
	if err != nil {
		return "", dialogue.UserProfile{}, err
	}

	unlock := m.locks.Lock(id)
	defer unlock()

	rec, err := m.load(ctx, id)
	if err != nil {
		return "", dialogue.UserProfile{}, err
	}
	rec.Profile = update.Apply(rec.Profile)
	rec.UpdatedAt = m.now()

	if err := m.store.Save(ctx, rec); err != nil {
		return "", dialogue.UserProfile{}, err
	}

	m.logger.WithSession(id).Info().
		Str("goal", string(rec.Profile.Goal)).
		Str("diet", string(rec.Profile.DietPreference)).
		Msg("Profile updated")

	return id, rec.Profile.Clone(), nil
}

// Reset deletes a session.
func (m *Manager) Reset(ctx context.Context, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return ErrInvalidSessionID
	}
	unlock := m.locks.Lock(sessionID)
	defer unlock()
	return m.store.Delete(ctx, sessionID)
}

// Ping checks the session store.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *Manager) load(ctx context.Context, id string) (*Record, error) {
	rec, err := m.store.Load(ctx, id)
	if errors.Is(err, ErrNotFound) {
		now := m.now()
		return &Record{ID: id, Profile: dialogue.NewUserProfile(), CreatedAt: now, UpdatedAt: now}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	return rec, nil
}

// resolveID returns id in canonical form, or a new id when empty.
func resolveID(id string) (string, error) {
	if id == "" {
		return uuid.NewString(), nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidSessionID
	}
	return parsed.String(), nil
}

// keyedMutex hands out one mutex per key and forgets keys nobody holds.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock locks key and returns the matching unlock.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refMutex{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
