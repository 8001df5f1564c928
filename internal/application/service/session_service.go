package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/domain/entity"
)

// Session holds the in-memory state one authenticated user accumulates: the
// POS cart and any draft documents under construction. Nothing here is
// persisted; a gateway restart discards it, which mirrors the page-reload
// semantics of the console this service fronts.
type Session struct {
	UserID uuid.UUID
	Cart   *entity.Cart

	mu     sync.RWMutex
	drafts map[uuid.UUID]*entity.Draft
}

// Draft looks up a draft by ID.
func (s *Session) Draft(id uuid.UUID) (*entity.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	return draft, ok
}

// AddDraft registers a draft with the session.
func (s *Session) AddDraft(draft *entity.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.ID] = draft
}

// RemoveDraft drops a draft from the session.
func (s *Session) RemoveDraft(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// Drafts returns all drafts in the session.
func (s *Session) Drafts() []*entity.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	drafts := make([]*entity.Draft, 0, len(s.drafts))
	for _, draft := range s.drafts {
		drafts = append(drafts, draft)
	}
	return drafts
}

// SessionManager is the explicit per-user state container: constructed on
// first use after authentication, torn down on logout.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	taxRate  float64
}

// NewSessionManager creates a session manager with the session default tax
// rate new carts inherit.
func NewSessionManager(taxRate float64) *SessionManager {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*Session),
		taxRate:  taxRate,
	}
}

// Get returns the user's session, creating it on first use.
func (m *SessionManager) Get(userID uuid.UUID) *Session {
	m.mu.RLock()
	session, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		return session
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[userID]; ok {
		return session
	}

	session = &Session{
		UserID: userID,
		Cart:   entity.NewCart(m.taxRate),
		drafts: make(map[uuid.UUID]*entity.Draft),
	}
	m.sessions[userID] = session
	return session
}

// End tears down the user's session state.
func (m *SessionManager) End(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
