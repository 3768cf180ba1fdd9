package remote

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/models"
)

// postgresStore is the Adapter implementation backed by PostgreSQL
type postgresStore struct {
	db *sql.DB
}

func openPostgres(connStr string) (Adapter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, errors.SyncUnavailablef("failed to open remote store: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.SyncUnavailablef("remote store unreachable: %v", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.SyncUnavailablef("failed to ensure remote schema: %v", err)
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Close() error {
	return s.db.Close()
}

func (s *postgresStore) Pull(ctx context.Context, profile string) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created, archived, checkins, weekly_goal, schedule, note, last_modified
		FROM habits WHERE profile = $1 ORDER BY id`, profile)
	if err != nil {
		return nil, errors.SyncUnavailablef("pull failed: %v", err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var (
			h        models.Habit
			archived int
			checkins string
			goal     sql.NullInt64
			schedule sql.NullString
			note     sql.NullString
			modified string
		)
		if err := rows.Scan(&h.ID, &h.Name, &h.Created, &archived, &checkins, &goal, &schedule, &note, &modified); err != nil {
			return nil, errors.SyncUnavailablef("pull failed: %v", err)
		}
		h.Archived = archived != 0
		if goal.Valid {
			g := int(goal.Int64)
			h.WeeklyGoal = &g
		}
		if note.Valid {
			n := note.String
			h.Note = &n
		}
		if err := decodeLists(&h, checkins, schedule.String); err != nil {
			return nil, errors.SyncUnavailablef("pull returned a malformed record for habit #%d: %v", h.ID, err)
		}
		if h.LastModified, err = time.Parse(time.RFC3339Nano, modified); err != nil {
			return nil, errors.SyncUnavailablef("pull returned a malformed timestamp for habit #%d: %v", h.ID, err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.SyncUnavailablef("pull failed: %v", err)
	}
	return habits, nil
}

func (s *postgresStore) Push(ctx context.Context, profile string, habits []models.Habit) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.SyncUnavailablef("push failed: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO habits (profile, id, name, created, archived, checkins, weekly_goal, schedule, note, last_modified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (profile, id) DO UPDATE SET
			name = EXCLUDED.name,
			created = EXCLUDED.created,
			archived = EXCLUDED.archived,
			checkins = EXCLUDED.checkins,
			weekly_goal = EXCLUDED.weekly_goal,
			schedule = EXCLUDED.schedule,
			note = EXCLUDED.note,
			last_modified = EXCLUDED.last_modified`)
	if err != nil {
		return errors.SyncUnavailablef("push failed: %v", err)
	}
	defer stmt.Close()

	for i := range habits {
		h := &habits[i]
		checkins, schedule, err := encodeLists(h)
		if err != nil {
			return errors.SyncUnavailablef("failed to encode habit #%d: %v", h.ID, err)
		}
		archived := 0
		if h.Archived {
			archived = 1
		}
		var goal interface{}
		if h.WeeklyGoal != nil {
			goal = *h.WeeklyGoal
		}
		var note interface{}
		if h.Note != nil {
			note = *h.Note
		}
		_, err = stmt.ExecContext(ctx, profile, h.ID, h.Name, h.Created, archived, checkins, goal, schedule, note, h.LastModified.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return errors.SyncUnavailablef("push failed for habit #%d: %v", h.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.SyncUnavailablef("push failed: %v", err)
	}
	return nil
}
