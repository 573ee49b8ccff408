package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"campushire/screener/internal/models"
)

// SessionStore holds upload sessions in memory for the process
// lifetime. Persistence is deliberately out of scope for the local
// backend.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.UploadSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.UploadSession),
	}
}

func (s *SessionStore) Create(jobID string, files []models.FileRecord, paths []string) *models.UploadSession {
	session := &models.UploadSession{
		ID:        uuid.New().String(),
		JobID:     jobID,
		Files:     files,
		Paths:     paths,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

func (s *SessionStore) Get(id string) (*models.UploadSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
