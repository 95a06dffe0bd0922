package stack

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/OilLobbyist/silver-tracker/internal/domain/models"
)

// Session is one user's working state between requests.
type Session struct {
	ID        string
	Inventory models.Inventory
	UpdatedAt time.Time
}

// SessionManager hands out session IDs and owns the only shared mutable map
// in the process. Writes are last-write-wins, matching the single-user
// design; the mutex keeps the map itself coherent.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionManager creates an empty session store. A nil clock means
// time.Now.
func NewSessionManager(now func() time.Time) *SessionManager {
	if now == nil {
		now = time.Now
	}
	return &SessionManager{
		sessions: make(map[string]*Session),
		now:      now,
	}
}

// Create registers a fresh empty session and returns its ID.
func (sm *SessionManager) Create() string {
	id := uuid.NewString()
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[id] = &Session{ID: id, UpdatedAt: sm.now()}
	return id
}

// Lookup returns the inventory of an existing session. Reading counts as
// activity and postpones idle expiry.
func (sm *SessionManager) Lookup(id string) (models.Inventory, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sess, ok := sm.sessions[id]
	if !ok {
		return nil, false
	}
	sess.UpdatedAt = sm.now()
	return sess.Inventory, true
}

// Put stores the next inventory for a session, creating it when absent.
func (sm *SessionManager) Put(id string, inv models.Inventory) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sess, ok := sm.sessions[id]
	if !ok {
		sess = &Session{ID: id}
		sm.sessions[id] = sess
	}
	sess.Inventory = inv
	sess.UpdatedAt = sm.now()
}

// Len reports how many sessions are live.
func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and reports how many
// were removed.
func (sm *SessionManager) Sweep(maxIdle time.Duration) int {
	now := sm.now()
	sm.mu.Lock()
	defer sm.mu.Unlock()
	removed := 0
	for id, sess := range sm.sessions {
		if now.Sub(sess.UpdatedAt) > maxIdle {
			delete(sm.sessions, id)
			removed++
		}
	}
	return removed
}
