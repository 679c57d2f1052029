// Package session persists the client's auth state between runs: the token
// pair plus the logged-in user's identity, as one JSON file under the
// user's config directory.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/guptaRishi00/waflow/internal/client/api"
)

const (
	appDir      = "waflow"
	sessionFile = "session.json"
)

// Session is the persisted auth state. A zero Session means logged out.
type Session struct {
	Access  string   `json:"accessToken"`
	Refresh string   `json:"refreshToken"`
	User    api.User `json:"user"`
}

// Store loads and saves the session file. It is safe for concurrent use;
// the notification poller reads tokens while commands may be refreshing them.
type Store struct {
	mu      sync.RWMutex
	path    string
	current Session
}

// NewStore opens the session store, loading any previously saved session.
// A missing file is not an error; it just means logged out.
func NewStore() (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(dir, appDir, sessionFile))
}

// NewStoreAt opens a session store backed by an explicit file path.
func NewStoreAt(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &s.current); err != nil {
		// A corrupt session file falls back to logged out.
		s.current = Session{}
	}
	return s, nil
}

// Current returns a copy of the session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LoggedIn reports whether both a token and a user identity are present.
// A token without a user (or the reverse) does not count.
func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Access != "" && s.current.User.ID != ""
}

// AccessToken implements api.TokenSource.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Access
}

// Save replaces the session and writes it to disk.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = sess

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// UpdateTokens swaps in a rotated token pair, keeping the user identity.
func (s *Store) UpdateTokens(access, refresh string) error {
	sess := s.Current()
	sess.Access = access
	sess.Refresh = refresh
	return s.Save(sess)
}

// Clear wipes the session in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
