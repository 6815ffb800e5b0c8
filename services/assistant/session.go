package assistant

import (
	"sync"

	"concierge/models"
)

// SessionStore keeps per-conversation dialogue state, keyed by session ID. Each
// session is only ever mutated by one tool invocation at a time (the voice runtime
// serializes them), so the lock only guards the cross-session map.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*models.Session)}
}

// Get returns the session for the given ID, lazily creating it on first use.
func (s *SessionStore) Get(id string) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = models.NewSession(id)
		s.sessions[id] = sess
	}
	return sess
}

// Delete discards a session when its conversation ends.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
