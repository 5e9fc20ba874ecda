package handlers

import (
	"sync"
	"time"

	"hrmslite.com/hrms/roster"
)

// Session holds one browser's roster view. Lock it around every use of View.
type Session struct {
	sync.Mutex
	View     *roster.View
	lastSeen time.Time
}

// Store keeps sessions in memory, forgetting those idle for longer than ttl.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, sessions: map[string]*Session{}}
}

// Get returns the session for id, creating an empty one if needed.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{}
		s.sessions[id] = sess
	}
	sess.lastSeen = now
	return sess
}

// Sweep drops idle sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
