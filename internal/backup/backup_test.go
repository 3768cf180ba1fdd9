package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func setupSnapshot(t *testing.T) (string, *Manager) {
	t.Helper()
	dir := t.TempDir()
	snapPath := filepath.Join(dir, "ritual.json")
	if err := os.WriteFile(snapPath, []byte(`{"version":1,"habits":[]}`), 0600); err != nil {
		t.Fatal(err)
	}
	return snapPath, NewManager(snapPath)
}

func TestCreateBackup(t *testing.T) {
	snapPath, mgr := setupSnapshot(t)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	original, _ := os.ReadFile(snapPath)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("backup content differs from the snapshot")
	}
}

func TestCreateBackup_MissingSnapshot(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("backing up a missing snapshot should fail")
	}
}

func TestCreateBackup_UniquePaths(t *testing.T) {
	_, mgr := setupSnapshot(t)

	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Error("back-to-back backups must not collide")
	}
}

func TestListBackups(t *testing.T) {
	_, mgr := setupSnapshot(t)

	if backups, err := mgr.ListBackups(); err != nil || len(backups) != 0 {
		t.Fatalf("expected no backups yet, got %v, %v", backups, err)
	}

	mgr.CreateBackup()
	mgr.CreateBackup()

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("backups = %d, want 2", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s reports zero size", b.Path)
		}
	}
}
