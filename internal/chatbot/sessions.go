package chatbot

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionStore keeps chat sessions in memory and evicts idle ones.
type SessionStore struct {
	opts Options
	ttl  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore(opts Options, ttl time.Duration) *SessionStore {
	if opts.Catalog == nil {
		opts.Catalog = NewCatalog()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SessionStore{opts: opts, ttl: ttl, sessions: make(map[string]*Session)}
}

func (st *SessionStore) Create() *Session {
	s := NewSession(uuid.NewString(), st.opts)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Evict drops sessions idle for longer than the TTL and returns how many.
func (st *SessionStore) Evict() int {
	cutoff := st.opts.Now().Add(-st.ttl)
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if s.LastActive().Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Run evicts on every tick until ctx is done.
func (st *SessionStore) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Evict(); n > 0 {
				logrus.Debugf("[CHATBOT] evicted %d idle sessions", n)
			}
		}
	}
}
