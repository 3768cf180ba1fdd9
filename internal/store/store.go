package store

import (
	"time"

	"github.com/julianstephens/ritual/internal/dateutil"
	"github.com/julianstephens/ritual/internal/errors"
	"github.com/julianstephens/ritual/internal/models"
	"github.com/julianstephens/ritual/internal/validation"
)

// Store applies mutations to an in-memory snapshot. It owns structural
// invariants only (unique IDs, check-in set semantics, lastModified
// stamping); metrics live elsewhere.
type Store struct {
	snap *models.Snapshot

	// Now is the clock used for lastModified stamps, injectable in tests
	Now func() time.Time
}

// New wraps a snapshot for mutation
func New(snap *models.Snapshot) *Store {
	return &Store{snap: snap, Now: time.Now}
}

// Snapshot returns the wrapped snapshot
func (s *Store) Snapshot() *models.Snapshot {
	return s.snap
}

func (s *Store) get(id int) (*models.Habit, error) {
	h := s.snap.Find(id)
	if h == nil {
		return nil, errors.NotFoundf("habit #%d not found", id)
	}
	return h, nil
}

func (s *Store) touch(h *models.Habit) {
	h.LastModified = s.Now().UTC()
}

// Create adds a new habit with the next free ID, created on the given day
func (s *Store) Create(name, day string) (*models.Habit, error) {
	name, err := validation.Name(name)
	if err != nil {
		return nil, err
	}
	h := models.Habit{
		ID:      s.snap.NextID(),
		Name:    name,
		Created: day,
	}
	s.snap.Habits = append(s.snap.Habits, h)
	created := &s.snap.Habits[len(s.snap.Habits)-1]
	s.touch(created)
	return created, nil
}

// Rename changes a habit's name and returns the previous one
func (s *Store) Rename(id int, name string) (string, error) {
	name, err := validation.Name(name)
	if err != nil {
		return "", err
	}
	h, err := s.get(id)
	if err != nil {
		return "", err
	}
	old := h.Name
	h.Name = name
	s.touch(h)
	return old, nil
}

// Archive marks a habit as archived. Archiving an archived habit is a no-op;
// the bool reports whether anything changed.
func (s *Store) Archive(id int) (bool, error) {
	h, err := s.get(id)
	if err != nil {
		return false, err
	}
	if h.Archived {
		return false, nil
	}
	h.Archived = true
	s.touch(h)
	return true, nil
}

// Reopen clears a habit's archived flag
func (s *Store) Reopen(id int) (bool, error) {
	h, err := s.get(id)
	if err != nil {
		return false, err
	}
	if !h.Archived {
		return false, nil
	}
	h.Archived = false
	s.touch(h)
	return true, nil
}

// SetGoal sets a habit's weekly check-in goal
func (s *Store) SetGoal(id, goal int) error {
	if err := validation.Goal(goal); err != nil {
		return err
	}
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.WeeklyGoal = &goal
	s.touch(h)
	return nil
}

// ClearGoal removes a habit's weekly goal
func (s *Store) ClearGoal(id int) error {
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.WeeklyGoal = nil
	s.touch(h)
	return nil
}

// SetSchedule sets the weekdays a habit is due on. Tags must already be
// validated and in week order (see validation.Weekdays).
func (s *Store) SetSchedule(id int, tags []string) error {
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.Schedule = tags
	s.touch(h)
	return nil
}

// ClearSchedule removes a habit's schedule, making it due every day
func (s *Store) ClearSchedule(id int) error {
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.Schedule = nil
	s.touch(h)
	return nil
}

// SetNote attaches a free-text note to a habit
func (s *Store) SetNote(id int, note string) error {
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.Note = &note
	s.touch(h)
	return nil
}

// ClearNote removes a habit's note
func (s *Store) ClearNote(id int) error {
	h, err := s.get(id)
	if err != nil {
		return err
	}
	h.Note = nil
	s.touch(h)
	return nil
}

// Checkin records a check-in for one day. Checking an already-checked day is
// a no-op; the bool reports whether the set changed.
func (s *Store) Checkin(id int, day string) (bool, error) {
	h, err := s.get(id)
	if err != nil {
		return false, err
	}
	if !h.AddCheckin(day) {
		return false, nil
	}
	s.touch(h)
	return true, nil
}

// Uncheck removes a check-in for one day. Unchecking an absent day is a no-op.
func (s *Store) Uncheck(id int, day string) (bool, error) {
	h, err := s.get(id)
	if err != nil {
		return false, err
	}
	if !h.RemoveCheckin(day) {
		return false, nil
	}
	s.touch(h)
	return true, nil
}

// CheckinRange records check-ins for every day in the inclusive range and
// returns how many days were newly checked.
func (s *Store) CheckinRange(id int, start, end string) (int, error) {
	return s.applyRange(id, start, end, (*models.Habit).AddCheckin)
}

// UncheckRange removes check-ins for every day in the inclusive range and
// returns how many days were actually unchecked.
func (s *Store) UncheckRange(id int, start, end string) (int, error) {
	return s.applyRange(id, start, end, (*models.Habit).RemoveCheckin)
}

func (s *Store) applyRange(id int, start, end string, apply func(*models.Habit, string) bool) (int, error) {
	h, err := s.get(id)
	if err != nil {
		return 0, err
	}
	from, err := dateutil.ParseDay(start)
	if err != nil {
		return 0, err
	}
	to, err := dateutil.ParseDay(end)
	if err != nil {
		return 0, err
	}
	days, err := dateutil.Range(from, to)
	if err != nil {
		return 0, err
	}
	changed := 0
	for d := range days {
		if apply(h, dateutil.FormatDay(d)) {
			changed++
		}
	}
	if changed > 0 {
		s.touch(h)
	}
	return changed, nil
}

// CheckinAll records a check-in on the given day for every active habit due
// that day. Habits whose schedule does not include the day are skipped unless
// includeUnscheduled is set. Returns the IDs of habits newly checked.
func (s *Store) CheckinAll(day string, includeUnscheduled bool) ([]int, error) {
	tag, err := dateutil.TagOfDay(day)
	if err != nil {
		return nil, err
	}
	var marked []int
	for i := range s.snap.Habits {
		h := &s.snap.Habits[i]
		if h.Archived {
			continue
		}
		if !includeUnscheduled && !h.DueOnTag(tag) {
			continue
		}
		if h.AddCheckin(day) {
			s.touch(h)
			marked = append(marked, h.ID)
		}
	}
	return marked, nil
}

// List returns habits for display, skipping archived ones unless all is set
func (s *Store) List(all bool) []models.Habit {
	if all {
		return s.snap.Habits
	}
	return s.snap.Active()
}
