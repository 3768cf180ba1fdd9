package cli

import (
	"context"
	"testing"
	"time"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/remote"
)

// memProvider keeps the snapshot in memory so command tests never touch disk
type memProvider struct {
	saved *models.Snapshot
}

func (p *memProvider) Load() (models.Snapshot, error) { return models.Snapshot{Version: 1}, nil }
func (p *memProvider) Save(snap models.Snapshot) error {
	p.saved = &snap
	return nil
}
func (p *memProvider) Path() string { return "mem" }

func testContext(t *testing.T) (*Context, *memProvider) {
	t.Helper()
	provider := &memProvider{}
	snap := &models.Snapshot{Version: 1, Profile: "snapshot-profile"}
	ctx := NewContext(provider, snap)
	ctx.Now = func() time.Time { return time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC) }
	ctx.Habits.Now = ctx.Now
	return ctx, provider
}

func TestContextDay_DefaultsToToday(t *testing.T) {
	ctx, _ := testContext(t)
	day, err := ctx.Day("")
	if err != nil || day != "2026-02-07" {
		t.Errorf("Day(\"\") = %q, %v", day, err)
	}
	day, err = ctx.Day("2026-01-15")
	if err != nil || day != "2026-01-15" {
		t.Errorf("Day(flag) = %q, %v", day, err)
	}
	if _, err := ctx.Day("soon"); !errors.IsValidation(err) {
		t.Errorf("Day(soon) should be a validation error, got %v", err)
	}
}

func TestProfile_ResolutionOrder(t *testing.T) {
	ctx, _ := testContext(t)
	t.Setenv(constants.EnvProfile, "")

	if got := ctx.Profile(); got != "snapshot-profile" {
		t.Errorf("Profile = %q, want the snapshot's", got)
	}
	t.Setenv(constants.EnvProfile, "env-profile")
	if got := ctx.Profile(); got != "env-profile" {
		t.Errorf("Profile = %q, env should beat the snapshot", got)
	}
	ctx.ProfileFlag = "flag-profile"
	if got := ctx.Profile(); got != "flag-profile" {
		t.Errorf("Profile = %q, the flag should beat everything", got)
	}
}

func TestAddCmd_PersistsNewHabit(t *testing.T) {
	ctx, provider := testContext(t)
	cmd := &AddCmd{Name: "Morning run"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if provider.saved == nil {
		t.Fatal("add should persist the snapshot")
	}
	if len(provider.saved.Habits) != 1 || provider.saved.Habits[0].Name != "Morning run" {
		t.Errorf("saved = %+v", provider.saved.Habits)
	}
	if provider.saved.Habits[0].Created != "2026-02-07" {
		t.Errorf("created = %q, want the injected today", provider.saved.Habits[0].Created)
	}
}

func TestAddCmd_InvalidNameDoesNotPersist(t *testing.T) {
	ctx, provider := testContext(t)
	cmd := &AddCmd{Name: "   "}
	if err := cmd.Run(ctx); !errors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if provider.saved != nil {
		t.Error("a failed command must not persist")
	}
}

func TestCheckinCmd_NoOpSkipsPersist(t *testing.T) {
	ctx, provider := testContext(t)
	(&AddCmd{Name: "Read"}).Run(ctx)
	provider.saved = nil

	cmd := &CheckinCmd{ID: 1, Date: "2026-02-07"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("checkin failed: %v", err)
	}
	if provider.saved == nil {
		t.Fatal("first check-in should persist")
	}
	provider.saved = nil
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("repeat checkin failed: %v", err)
	}
	if provider.saved != nil {
		t.Error("an idempotent no-op should not rewrite the snapshot")
	}
}

// fakeAdapter records sync traffic in memory
type fakeAdapter struct {
	remoteHabits []models.Habit
	pushed       []models.Habit
	pushProfile  string
	closed       bool
}

func (f *fakeAdapter) Pull(_ context.Context, profile string) ([]models.Habit, error) {
	return f.remoteHabits, nil
}
func (f *fakeAdapter) Push(_ context.Context, profile string, habits []models.Habit) error {
	f.pushProfile = profile
	f.pushed = habits
	return nil
}
func (f *fakeAdapter) Close() error {
	f.closed = true
	return nil
}

func TestSyncCmd_PullMergePush(t *testing.T) {
	ctx, provider := testContext(t)
	t.Setenv(constants.EnvProfile, "")
	(&AddCmd{Name: "Local"}).Run(ctx)
	provider.saved = nil

	fake := &fakeAdapter{remoteHabits: []models.Habit{{
		ID:           7,
		Name:         "Remote",
		Created:      "2026-01-01",
		LastModified: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}}}
	ctx.RemoteFlag = "postgres://example/test"
	ctx.OpenRemote = func(connStr string) (remote.Adapter, error) { return fake, nil }

	if err := (&SyncCmd{}).Run(ctx); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if len(fake.pushed) != 2 {
		t.Errorf("pushed %d habits, want 2 (local plus merged remote)", len(fake.pushed))
	}
	if fake.pushProfile != "snapshot-profile" {
		t.Errorf("pushed profile = %q", fake.pushProfile)
	}
	if !fake.closed {
		t.Error("sync should close the adapter")
	}
	if provider.saved == nil || len(provider.saved.Habits) != 2 {
		t.Error("sync should persist the merged snapshot")
	}
}

func TestSyncCmd_UnconfiguredRemoteIsNotAnError(t *testing.T) {
	ctx, provider := testContext(t)
	t.Setenv(constants.EnvRemote, "")
	ctx.OpenRemote = func(connStr string) (remote.Adapter, error) {
		t.Fatal("sync must not dial without a connection string")
		return nil, nil
	}
	if err := (&SyncCmd{}).Run(ctx); err != nil {
		t.Errorf("unconfigured sync should succeed quietly, got %v", err)
	}
	if provider.saved != nil {
		t.Error("unconfigured sync must not persist")
	}
}
