// Package session holds the per-user conversation state. Sessions are kept
// in memory only; a restart loses at most the single in-flight draft.
package session

import (
	"sync"

	"github.com/itsmoein/ledgerbot/internal/domain"
)

// EditContext tracks a single in-flight field edit: which field is being
// replaced and where to return once a value arrives.
type EditContext struct {
	Field  domain.FieldKey
	Return domain.State
}

// Session is the mutable conversation state for one user. It is owned
// exclusively by that user's event handling and must only be touched
// inside Store.Do.
type Session struct {
	UserID int64
	State  domain.State

	// Draft is the record under construction, nil outside a capture flow.
	Draft *domain.Draft

	// Edit is set while a field edit is in flight.
	Edit *EditContext

	// PendingNewPartner marks that the next free-text input names a new
	// directory entry rather than a selection.
	PendingNewPartner bool
}

// Reset returns the session to the main menu and discards all transient
// state. Called on cancel, on successful commit, and on returning home.
func (s *Session) Reset() {
	s.State = domain.StateMainMenu
	s.Draft = nil
	s.Edit = nil
	s.PendingNewPartner = false
}

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Store is a keyed session store, safe for concurrent use. Events for
// different users proceed in parallel; events for the same user are
// serialized behind a per-user lock.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		entries: make(map[int64]*entry),
	}
}

// Do runs fn with exclusive access to the user's session, creating an
// empty main-menu session on first contact. fn must not retain the
// session beyond the call.
func (st *Store) Do(userID int64, fn func(*Session)) {
	st.mu.Lock()
	e, ok := st.entries[userID]
	if !ok {
		e = &entry{session: &Session{UserID: userID, State: domain.StateMainMenu}}
		st.entries[userID] = e
	}
	st.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// Len returns the number of known sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}
