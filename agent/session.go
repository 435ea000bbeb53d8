package agent

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// SessionPersistence keeps the userID to sessionID map across restarts.
type SessionPersistence interface {
	Load() (map[string]string, error)
	Save(sessions map[string]string) error
}

// SessionStore tracks which assistant session each user is talking in.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
	persist  SessionPersistence
}

func NewSessionStore(persist SessionPersistence) (*SessionStore, error) {
	sessions, err := persist.Load()
	if err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = map[string]string{}
	}
	return &SessionStore{sessions: sessions, persist: persist}, nil
}

// Resolve picks the session for a chat turn: an explicit sessionID wins and
// is remembered, otherwise the user's stored session is reused, otherwise a
// fresh one is minted. The returned error is only a persistence failure, the
// session id is always usable.
func (s *SessionStore) Resolve(userID, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		if stored, ok := s.sessions[userID]; ok {
			return stored, nil
		}
		sessionID = userID + "-" + uuid.NewString()
	}
	s.sessions[userID] = sessionID
	return sessionID, s.persist.Save(s.snapshot())
}

func (s *SessionStore) snapshot() map[string]string {
	out := make(map[string]string, len(s.sessions))
	for k, v := range s.sessions {
		out[k] = v
	}
	return out
}

// FileStore persists sessions as a JSON file next to the other app data.
type FileStore struct {
	Path string
}

func (f *FileStore) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	sessions := map[string]string{}
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (f *FileStore) Save(sessions map[string]string) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, data, 0644)
}
