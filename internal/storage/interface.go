package storage

import "github.com/julianstephens/ritual/internal/models"

// Provider loads and saves the whole snapshot. One command is one
// load-compute-save cycle; there is no incremental persistence.
type Provider interface {
	Load() (models.Snapshot, error)
	Save(models.Snapshot) error
	Path() string
}
