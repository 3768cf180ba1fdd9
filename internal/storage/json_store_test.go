package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/models"
)

func tempStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "ritual.json"))
}

func TestLoad_MissingFileGivesEmptySnapshot(t *testing.T) {
	s := tempStore(t)
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snap.Habits) != 0 {
		t.Errorf("expected no habits, got %d", len(snap.Habits))
	}
	if snap.Profile == "" {
		t.Error("a fresh snapshot should get a generated profile")
	}
	if snap.Version == 0 {
		t.Error("a fresh snapshot should carry the current version")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)
	goal := 3
	note := "before breakfast"
	snap := models.Snapshot{
		Version: 1,
		Profile: "roundtrip-profile",
		Habits: []models.Habit{
			{
				ID:         1,
				Name:       "Read",
				Created:    "2026-02-01",
				Checkins:   []string{"2026-02-01", "2026-02-03"},
				WeeklyGoal: &goal,
				Schedule:   []string{"mon", "wed"},
				Note:       &note,
			},
			{ID: 2, Name: "Run", Created: "2026-02-02", Archived: true},
		},
	}
	if err := s.Save(snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Profile != snap.Profile {
		t.Errorf("profile = %q, want %q", got.Profile, snap.Profile)
	}
	if len(got.Habits) != 2 {
		t.Fatalf("habits = %d, want 2", len(got.Habits))
	}
	h := got.Habits[0]
	if h.Name != "Read" || len(h.Checkins) != 2 || h.WeeklyGoal == nil || *h.WeeklyGoal != 3 {
		t.Errorf("habit = %+v", h)
	}
	if h.Note == nil || *h.Note != note {
		t.Errorf("note = %v", h.Note)
	}
	if !got.Habits[1].Archived {
		t.Error("archived flag lost in round trip")
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); !errors.IsCorruptData(err) {
		t.Errorf("expected corrupt-data error, got %v", err)
	}
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"version": 99, "habits": []}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(); !errors.IsCorruptData(err) {
		t.Errorf("expected corrupt-data error, got %v", err)
	}
}

func TestLoad_BackfillsMissingProfile(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"version": 1, "habits": []}`), 0600); err != nil {
		t.Fatal(err)
	}
	snap, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Profile == "" {
		t.Error("missing profile should be backfilled")
	}
}

func TestSave_BacksUpPreviousSnapshot(t *testing.T) {
	s := tempStore(t)
	if err := s.Save(models.Snapshot{Version: 1, Profile: "p"}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := s.Save(models.Snapshot{Version: 1, Profile: "p"}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	backupDir := filepath.Join(filepath.Dir(s.Path()), "backups")
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		t.Fatalf("backup directory missing: %v", err)
	}
	if len(entries) == 0 {
		t.Error("overwriting a snapshot should leave a backup behind")
	}
}
