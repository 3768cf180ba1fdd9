package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/julianstephens/ritual/internal/backup"
	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
)

// JSONStore persists the snapshot as one JSON document
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the given file path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the snapshot file path
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file fails softly to an empty snapshot
// with a freshly generated profile; a present-but-unparseable file is a
// corrupt-data error.
func (s *JSONStore) Load() (models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Snapshot{
				Version: constants.SnapshotVersion,
				Profile: uuid.New().String(),
			}, nil
		}
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, errors.CorruptDataf("failed to parse snapshot %s: %v", s.path, err)
	}
	if snap.Version > constants.SnapshotVersion {
		return models.Snapshot{}, errors.CorruptDataf("snapshot %s has unsupported version %d", s.path, snap.Version)
	}
	if snap.Version == 0 {
		snap.Version = constants.SnapshotVersion
	}
	if snap.Profile == "" {
		snap.Profile = uuid.New().String()
	}
	return snap, nil
}

// Save writes the whole snapshot in one atomic rename, taking a rotating
// backup of the previous file first.
func (s *JSONStore) Save(snap models.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Back up the existing snapshot; failures are logged, never fatal
	if _, err := os.Stat(s.path); err == nil {
		mgr := backup.NewManager(s.path)
		if _, err := mgr.CreateBackup(); err != nil {
			logger.Warn("Automatic backup failed", "error", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
