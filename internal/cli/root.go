package cli

import (
	"os"
	"time"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/keyring"
	"github.com/julianstephens/ritual/internal/logger"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/remote"
	"github.com/julianstephens/ritual/internal/storage"
	"github.com/julianstephens/ritual/internal/store"
)

// Context carries the loaded snapshot and its collaborators through one
// command execution (one load-compute-persist cycle).
type Context struct {
	Store    storage.Provider
	Snapshot *models.Snapshot
	Habits   *store.Store

	// Now is the clock commands derive "today" from, injectable in tests
	Now func() time.Time

	// RemoteFlag and ProfileFlag hold the global flag values
	RemoteFlag  string
	ProfileFlag string

	// OpenRemote connects to the remote store; tests swap in a double
	OpenRemote func(connStr string) (remote.Adapter, error)
}

// NewContext wires a context around a loaded snapshot
func NewContext(provider storage.Provider, snap *models.Snapshot) *Context {
	return &Context{
		Store:      provider,
		Snapshot:   snap,
		Habits:     store.New(snap),
		Now:        time.Now,
		OpenRemote: remote.Open,
	}
}

// Persist writes the snapshot back through the provider. Commands call this
// only after their mutation succeeded, so a failed command leaves the
// on-disk snapshot untouched.
func (c *Context) Persist() error {
	return c.Store.Save(*c.Snapshot)
}

// Today returns the current day as YYYY-MM-DD
func (c *Context) Today() string {
	return dateutil.FormatDay(c.Now())
}

// Day resolves a --date flag value, defaulting to today
func (c *Context) Day(flag string) (string, error) {
	if flag == "" {
		return c.Today(), nil
	}
	t, err := dateutil.ParseDay(flag)
	if err != nil {
		return "", err
	}
	return dateutil.FormatDay(t), nil
}

// AsOf resolves a --date flag value to a reference date
func (c *Context) AsOf(flag string) (time.Time, error) {
	day, err := c.Day(flag)
	if err != nil {
		return time.Time{}, err
	}
	return dateutil.ParseDay(day)
}

// notFound builds the standard unknown-habit error
func notFound(id int) error {
	return errors.NotFoundf("habit #%d not found", id)
}

// Profile resolves the sync profile: flag, then env, then the snapshot's
// stored profile.
func (c *Context) Profile() string {
	if c.ProfileFlag != "" {
		return c.ProfileFlag
	}
	if p := os.Getenv(constants.EnvProfile); p != "" {
		return p
	}
	return c.Snapshot.Profile
}

// RemoteConnString resolves the remote connection string: flag, then env,
// then the OS keyring. Empty means sync is not configured.
func (c *Context) RemoteConnString() string {
	if c.RemoteFlag != "" {
		return c.RemoteFlag
	}
	if connStr := os.Getenv(constants.EnvRemote); connStr != "" {
		return connStr
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		if err != keyring.ErrNotFound {
			logger.Debug("Keyring lookup failed", "error", err)
		}
		return ""
	}
	return connStr
}
