package remote

import "github.com/julianstephens/ritual/internal/models"

// MergeResult counts what a pull changed locally
type MergeResult struct {
	Added     int // remote-only habits inserted locally
	Updated   int // local habits replaced by a newer remote record
	Unchanged int
}

// Merge folds pulled habit records into the snapshot. Conflicts resolve
// last-write-wins by lastModified; remote-only habits are inserted. Local
// habits absent from the remote are left alone (push handles those).
func Merge(snap *models.Snapshot, remoteHabits []models.Habit) MergeResult {
	var res MergeResult
	for _, rh := range remoteHabits {
		local := snap.Find(rh.ID)
		if local == nil {
			snap.Habits = append(snap.Habits, rh)
			res.Added++
			continue
		}
		if rh.LastModified.After(local.LastModified) {
			*local = rh
			res.Updated++
		} else {
			res.Unchanged++
		}
	}
	return res
}
