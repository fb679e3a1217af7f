package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session: not found")

// DefaultTTL bounds a session's token lifetime when the caller does not
// supply one. Applied in SetToken so both store backends see a positive TTL.
const DefaultTTL = 12 * time.Hour

// Store maps gateway session ids to upstream bearer tokens. The token is the
// only state the gateway persists on behalf of a client.
type Store interface {
	Put(ctx context.Context, id, token string, ttl time.Duration) error
	Token(ctx context.Context, id string) (string, error)
	Evict(ctx context.Context, id string) error
	Close() error
}

// NewID generates a random session identifier.
func NewID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Session is an explicit handle for one client's session, bound to a Store.
// The transport reads the bearer token through it and evicts on auth failure,
// so tests can inject and observe the token deterministically.
type Session struct {
	id    string
	store Store

	mu      sync.Mutex
	evicted bool
}

// New binds a session id to a store.
func New(id string, store Store) *Session {
	return &Session{id: id, store: store}
}

// Anonymous returns a session with no backing store; Token always reports
// no token, and Evict is a no-op. Used for unauthenticated upstream calls.
func Anonymous() *Session {
	return &Session{}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Token returns the stored bearer token, or "" when the session holds none.
func (s *Session) Token(ctx context.Context) string {
	if s.store == nil {
		return ""
	}
	tok, err := s.store.Token(ctx, s.id)
	if err != nil {
		return ""
	}
	return tok
}

// SetToken stores the bearer token under this session. A non-positive ttl
// falls back to DefaultTTL rather than meaning "no expiry".
func (s *Session) SetToken(ctx context.Context, token string, ttl time.Duration) error {
	if s.store == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.mu.Lock()
	s.evicted = false
	s.mu.Unlock()
	return s.store.Put(ctx, s.id, token, ttl)
}

// Evict removes the token. Repeated calls after a single auth failure are
// collapsed so a burst of concurrent 401s evicts once.
func (s *Session) Evict(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	s.mu.Lock()
	if s.evicted {
		s.mu.Unlock()
		return nil
	}
	s.evicted = true
	s.mu.Unlock()
	return s.store.Evict(ctx, s.id)
}
