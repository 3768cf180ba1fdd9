package models

// Snapshot is the full persisted state: schema version, sync profile, and
// the ordered habit list. It is the unit of load/save and of sync.
type Snapshot struct {
	Version int     `json:"version"`
	Profile string  `json:"profile,omitempty"`
	Habits  []Habit `json:"habits"`
}

// NextID returns the next habit ID (max existing ID + 1, starting at 1)
func (s *Snapshot) NextID() int {
	next := 1
	for i := range s.Habits {
		if s.Habits[i].ID >= next {
			next = s.Habits[i].ID + 1
		}
	}
	return next
}

// Find returns a pointer to the habit with the given ID, or nil
func (s *Snapshot) Find(id int) *Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			return &s.Habits[i]
		}
	}
	return nil
}

// Active returns the habits that are not archived
func (s *Snapshot) Active() []Habit {
	active := make([]Habit, 0, len(s.Habits))
	for _, h := range s.Habits {
		if !h.Archived {
			active = append(active, h)
		}
	}
	return active
}
