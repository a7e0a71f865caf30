package session

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Listener is called with every session added to a [Store].
type Listener func(s *Session)

// Store keeps sessions in memory in the order they were added. The zero
// value is an empty store. It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	sessions  []*Session
	listeners map[int]Listener
	nextID    int

	// Logger receives listener failures; nil selects log.Default().
	Logger *log.Logger
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{listeners: make(map[int]Listener)}
}

// Add appends s and notifies the listeners. A listener that panics is
// logged and does not stop the others.
func (st *Store) Add(s *Session) {
	st.mu.Lock()
	st.sessions = append(st.sessions, s)
	listeners := make([]Listener, 0, len(st.listeners))
	for id := range st.nextID {
		if l, ok := st.listeners[id]; ok {
			listeners = append(listeners, l)
		}
	}
	st.mu.Unlock()

	for _, l := range listeners {
		st.notify(l, s)
	}
}

func (st *Store) notify(l Listener, s *Session) {
	defer func() {
		if r := recover(); r != nil {
			logger := st.Logger
			if logger == nil {
				logger = log.Default()
			}
			logger.Error("session listener failed", "session", s.ID, "panic", r)
		}
	}()
	l(s)
}

// Sessions returns the stored sessions in insertion order.
func (st *Store) Sessions() []*Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*Session, len(st.sessions))
	copy(out, st.sessions)
	return out
}

// Get returns the session with the given id, or ErrNotFound.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, s := range st.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// Counts returns, per session, the number of blocks of each frame.
func (st *Store) Counts() [][]int {
	sessions := st.Sessions()
	out := make([][]int, len(sessions))
	for i, s := range sessions {
		out[i] = s.BlockCounts()
	}
	return out
}

// Subscribe registers l for future additions. The returned function
// removes it again.
func (st *Store) Subscribe(l Listener) (unsubscribe func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.listeners == nil {
		st.listeners = make(map[int]Listener)
	}
	id := st.nextID
	st.nextID++
	st.listeners[id] = l
	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		delete(st.listeners, id)
	}
}
