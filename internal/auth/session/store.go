// Package session persists the single active token pair between terminal
// interactions and transparently refreshes it around each operation.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	authDomain "github.com/epicevents/crm/internal/auth/domain"
	apperrors "github.com/epicevents/crm/internal/errors"
)

// Store abstracts session persistence. There is exactly one session slot:
// saving overwrites whatever pair was held before.
type Store interface {
	// Load returns the persisted session. Returns ErrNotFound when no
	// session has been saved yet or it was cleared.
	Load() (*authDomain.Session, error)

	// Save overwrites the session slot with the given pair.
	Save(session *authDomain.Session) error

	// Clear removes the persisted session. Clearing an empty slot is a no-op.
	Clear() error
}

// FileStore persists the session as a JSON file on disk. The file is written
// atomically via a temp file and rename so a crash mid-write never leaves a
// truncated session behind.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a FileStore backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the session file.
func (f *FileStore) Load() (*authDomain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "no session found")
		}
		return nil, apperrors.Wrap(err, "failed to read session file")
	}

	var session authDomain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode session file")
	}
	return &session, nil
}

// Save encodes the session and atomically replaces the session file. The
// parent directory is created on first use.
func (f *FileStore) Save(session *authDomain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, "failed to encode session")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return apperrors.Wrap(err, "failed to create session directory")
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return apperrors.Wrap(err, "failed to create temp session file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to write session file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to close session file")
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to set session file mode")
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return apperrors.Wrap(err, "failed to replace session file")
	}
	return nil
}

// Clear removes the session file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(err, "failed to remove session file")
	}
	return nil
}
