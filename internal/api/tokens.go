package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore holds the persisted access/refresh credential pair. The API
// client is the only component that writes through this interface.
type TokenStore interface {
	Access() string
	Refresh() string
	Set(access, refresh string) error
	Clear() error
}

type tokenFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FileTokenStore persists the token pair as a mode-0600 JSON file, the
// process-local equivalent of browser storage.
type FileTokenStore struct {
	mu   sync.Mutex
	path string

	access  string
	refresh string
}

func NewFileTokenStore(path string) (*FileTokenStore, error) {
	s := &FileTokenStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		// A corrupt token file is treated as an anonymous session.
		return s, nil
	}

	s.access = f.AccessToken
	s.refresh = f.RefreshToken

	return s, nil
}

func (s *FileTokenStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.access
}

func (s *FileTokenStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refresh
}

func (s *FileTokenStore) Set(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(tokenFile{AccessToken: access, RefreshToken: refresh})
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create token directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", s.path, err)
	}

	s.access = access
	s.refresh = refresh

	return nil
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file %s: %w", s.path, err)
	}

	return nil
}

// MemoryTokenStore keeps the pair in memory only, for tests and short-lived
// anonymous flows.
type MemoryTokenStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Access() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.access
}

func (s *MemoryTokenStore) Refresh() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refresh
}

func (s *MemoryTokenStore) Set(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = access
	s.refresh = refresh

	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""

	return nil
}
