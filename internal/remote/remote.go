// Package remote implements the sync adapter contract against an external
// relational store. Habit records are keyed by (profile, habit ID); the
// caller merges pulled records last-write-wins by lastModified. The rest of
// the tool has no dependency on any driver: sync stays optional.
package remote

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/models"
)

// Adapter is the sync contract: pull all habit records for a profile and
// upsert all local ones. Push never deletes remote records.
type Adapter interface {
	Pull(ctx context.Context, profile string) ([]models.Habit, error)
	Push(ctx context.Context, profile string, habits []models.Habit) error
	Close() error
}

// Open connects to the remote store described by the connection string:
// postgres://, postgresql://, or a path to a shared SQLite database file.
// An empty connection string means sync is not configured.
func Open(connStr string) (Adapter, error) {
	if connStr == "" {
		return nil, errors.SyncUnavailablef("no remote store configured (set --remote, a keyring entry, or the env var)")
	}
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		return openPostgres(connStr)
	}
	return openSQLite(connStr)
}

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	profile       TEXT    NOT NULL,
	id            INTEGER NOT NULL,
	name          TEXT    NOT NULL,
	created       TEXT    NOT NULL,
	archived      INTEGER NOT NULL DEFAULT 0,
	checkins      TEXT    NOT NULL,
	weekly_goal   INTEGER,
	schedule      TEXT,
	note          TEXT,
	last_modified TEXT    NOT NULL,
	PRIMARY KEY (profile, id)
)`

// encodeLists serializes the check-in set and schedule as JSON text so the
// same row shape works on both backends.
func encodeLists(h *models.Habit) (checkins, schedule string, err error) {
	c, err := json.Marshal(h.Checkins)
	if err != nil {
		return "", "", err
	}
	s, err := json.Marshal(h.Schedule)
	if err != nil {
		return "", "", err
	}
	return string(c), string(s), nil
}

func decodeLists(h *models.Habit, checkins, schedule string) error {
	if err := json.Unmarshal([]byte(checkins), &h.Checkins); err != nil {
		return err
	}
	if schedule == "" {
		return nil
	}
	return json.Unmarshal([]byte(schedule), &h.Schedule)
}
