package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"houseprice/internal/domain"
)

// PreferencesFile is the file name used under the home directory.
const PreferencesFile = "preferences.json"

// PreferenceFileStore persists preferences to <dir>/preferences.json.
type PreferenceFileStore struct {
	path string
	mu   sync.Mutex
}

// NewPreferenceFileStore returns a PreferenceFileStore rooted at dir.
func NewPreferenceFileStore(dir string) *PreferenceFileStore {
	return &PreferenceFileStore{path: filepath.Join(dir, PreferencesFile)}
}

// Path returns the backing file.
func (s *PreferenceFileStore) Path() string { return s.path }

// Get returns the value stored under key.
func (s *PreferenceFileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := prefs[key]
	return v, ok, nil
}

// Set stores value under key, keeping every other entry.
func (s *PreferenceFileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs[key] = value
	return s.save(prefs)
}

// load reads the map; a missing file is an empty map.
func (s *PreferenceFileStore) load() (map[string]string, error) {
	prefs := make(map[string]string)
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if len(b) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(b, &prefs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return prefs, nil
}

// save writes via a temp file in the same directory, then renames over the
// target.
func (s *PreferenceFileStore) save(prefs map[string]string) error {
	b, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(s.path), PreferencesFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Compile-time assertion that PreferenceFileStore implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*PreferenceFileStore)(nil)
