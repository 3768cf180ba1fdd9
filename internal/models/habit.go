package models

import (
	"slices"
	"time"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Created  string `json:"created"` // YYYY-MM-DD format
	Archived bool   `json:"archived,omitempty"`
	// Checkins holds YYYY-MM-DD days, sorted ascending, no duplicates.
	// Lexicographic order equals chronological order for this format.
	Checkins   []string `json:"checkins"`
	WeeklyGoal *int     `json:"weekly_goal,omitempty"`
	// Schedule holds weekday tags (mon..sun) in week order. Empty means the
	// habit is due every day.
	Schedule     []string  `json:"schedule,omitempty"`
	Note         *string   `json:"note,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Checked reports whether the habit has a check-in for the given day
func (h *Habit) Checked(day string) bool {
	_, found := slices.BinarySearch(h.Checkins, day)
	return found
}

// AddCheckin records a check-in for the given day. It returns false if the
// day was already checked (set semantics, no duplicates).
func (h *Habit) AddCheckin(day string) bool {
	i, found := slices.BinarySearch(h.Checkins, day)
	if found {
		return false
	}
	h.Checkins = slices.Insert(h.Checkins, i, day)
	return true
}

// RemoveCheckin removes the check-in for the given day. It returns false if
// the day was not checked.
func (h *Habit) RemoveCheckin(day string) bool {
	i, found := slices.BinarySearch(h.Checkins, day)
	if !found {
		return false
	}
	h.Checkins = slices.Delete(h.Checkins, i, i+1)
	return true
}

// IsScheduled reports whether the habit has an explicit weekday schedule
func (h *Habit) IsScheduled() bool {
	return len(h.Schedule) > 0
}

// DueOnTag reports whether the habit is due on a weekday tag. Habits without
// a schedule are due every day.
func (h *Habit) DueOnTag(tag string) bool {
	if !h.IsScheduled() {
		return true
	}
	return slices.Contains(h.Schedule, tag)
}

// LastCheckin returns the most recent check-in day, if any
func (h *Habit) LastCheckin() (string, bool) {
	if len(h.Checkins) == 0 {
		return "", false
	}
	return h.Checkins[len(h.Checkins)-1], true
}

// TotalCheckins returns the number of recorded check-ins
func (h *Habit) TotalCheckins() int {
	return len(h.Checkins)
}
