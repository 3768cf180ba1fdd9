package models

import (
	"slices"
	"testing"
)

func TestAddCheckin_SetSemantics(t *testing.T) {
	h := &Habit{ID: 1, Name: "Read", Created: "2026-02-01"}
	if !h.AddCheckin("2026-02-03") {
		t.Error("first add should report a change")
	}
	if h.AddCheckin("2026-02-03") {
		t.Error("duplicate add should be a no-op")
	}
	h.AddCheckin("2026-02-01")
	h.AddCheckin("2026-02-05")

	want := []string{"2026-02-01", "2026-02-03", "2026-02-05"}
	if !slices.Equal(h.Checkins, want) {
		t.Errorf("Checkins = %v, want %v", h.Checkins, want)
	}
	if !h.Checked("2026-02-03") || h.Checked("2026-02-02") {
		t.Error("Checked lookup broken")
	}
}

func TestRemoveCheckin(t *testing.T) {
	h := &Habit{ID: 1, Name: "Read", Created: "2026-02-01"}
	h.AddCheckin("2026-02-01")
	h.AddCheckin("2026-02-03")

	if !h.RemoveCheckin("2026-02-01") {
		t.Error("removing a present day should report a change")
	}
	if h.RemoveCheckin("2026-02-01") {
		t.Error("removing an absent day should be a no-op")
	}
	if !slices.Equal(h.Checkins, []string{"2026-02-03"}) {
		t.Errorf("Checkins = %v", h.Checkins)
	}
}

func TestDueOnTag(t *testing.T) {
	daily := &Habit{ID: 1, Name: "Daily"}
	if !daily.DueOnTag("tue") {
		t.Error("a habit without a schedule is due every day")
	}

	scheduled := &Habit{ID: 2, Name: "MWF", Schedule: []string{"mon", "wed", "fri"}}
	if !scheduled.DueOnTag("wed") || scheduled.DueOnTag("tue") {
		t.Error("DueOnTag should follow the schedule")
	}
}

func TestLastCheckin(t *testing.T) {
	h := &Habit{ID: 1, Name: "Read"}
	if _, ok := h.LastCheckin(); ok {
		t.Error("no check-ins yet")
	}
	h.AddCheckin("2026-02-05")
	h.AddCheckin("2026-02-01")
	if last, ok := h.LastCheckin(); !ok || last != "2026-02-05" {
		t.Errorf("LastCheckin = %q, %v", last, ok)
	}
}

func TestSnapshotNextID(t *testing.T) {
	snap := &Snapshot{Version: 1}
	if got := snap.NextID(); got != 1 {
		t.Errorf("empty snapshot NextID = %d, want 1", got)
	}
	snap.Habits = []Habit{{ID: 3}, {ID: 1}}
	if got := snap.NextID(); got != 4 {
		t.Errorf("NextID = %d, want 4", got)
	}
}

func TestSnapshotFind(t *testing.T) {
	snap := &Snapshot{Version: 1, Habits: []Habit{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}}
	if h := snap.Find(2); h == nil || h.Name != "b" {
		t.Errorf("Find(2) = %+v", h)
	}
	if h := snap.Find(99); h != nil {
		t.Errorf("Find(99) = %+v, want nil", h)
	}
}

func TestSnapshotActive(t *testing.T) {
	snap := &Snapshot{Version: 1, Habits: []Habit{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b", Archived: true},
		{ID: 3, Name: "c"},
	}}
	active := snap.Active()
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 3 {
		t.Errorf("Active = %+v", active)
	}
}
