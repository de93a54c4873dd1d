package editor

import (
	"errors"
	"sync"
)

// ErrSessionNotFound is returned for unknown or already-closed sessions.
var ErrSessionNotFound = errors.New("editor session not found")

// Store keeps the live sessions of one process. Sessions are never
// persisted; closing a session (or the process exiting) destroys its
// overlay, filter and document state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Open creates a session for the given template and registers it.
func (st *Store) Open(tpl TemplateRef) *Session {
	s := NewSession(tpl)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks a session up by id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close removes the session and releases its state. Closing an unknown
// session is a no-op.
func (st *Store) Close(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[id]; ok {
		s.EndDrag()
		delete(st.sessions, id)
	}
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
