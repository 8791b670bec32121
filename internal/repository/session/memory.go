package session

import (
	"context"
	"sync"
	"time"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

type memoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemory keeps sessions in an in-process map. Expired entries are dropped
// lazily on lookup.
func NewMemory() Repository {
	return &memoryRepo{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (r *memoryRepo) Save(_ context.Context, s Session, ttl time.Duration) error {
	r.mu.Lock()
	r.sessions[s.Token] = memoryEntry{session: s, expiresAt: r.now().Add(ttl)}
	r.mu.Unlock()
	return nil
}

func (r *memoryRepo) Get(_ context.Context, token string) (*Session, error) {
	r.mu.RLock()
	entry, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	if r.now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	s := entry.session
	return &s, nil
}

func (r *memoryRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
	return nil
}
