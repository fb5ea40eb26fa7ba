package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MCPSession represents an active MCP client connection on the HTTP transport
type MCPSession struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time
}

// SessionManager manages MCP sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*MCPSession
	ttl      time.Duration
}

// NewSessionManager creates a new session manager and starts expiry cleanup
func NewSessionManager(ttl time.Duration) *SessionManager {
	mgr := &SessionManager{
		sessions: make(map[string]*MCPSession),
		ttl:      ttl,
	}

	go mgr.cleanupExpired()

	return mgr
}

// CreateSession creates a new MCP session
func (sm *SessionManager) CreateSession() *MCPSession {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session := &MCPSession{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		LastSeen:  time.Now(),
	}

	sm.sessions[session.ID] = session

	log.Debug().Str("sessionId", session.ID).Msg("created MCP session")

	return session
}

// GetSession retrieves a session by ID
func (sm *SessionManager) GetSession(sessionID string) (*MCPSession, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("session not found")
	}

	return session, nil
}

// UpdateLastSeen updates the last seen time for a session
func (sm *SessionManager) UpdateLastSeen(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if session, exists := sm.sessions[sessionID]; exists {
		session.LastSeen = time.Now()
	}
}

// DeleteSession removes a session
func (sm *SessionManager) DeleteSession(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, sessionID)
}

// cleanupExpired periodically drops sessions idle past the TTL
func (sm *SessionManager) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-sm.ttl)

		sm.mu.Lock()
		for id, session := range sm.sessions {
			if session.LastSeen.Before(cutoff) {
				delete(sm.sessions, id)
				log.Debug().Str("sessionId", id).Msg("expired MCP session")
			}
		}
		sm.mu.Unlock()
	}
}
