package domain

import "time"

// BinRetention is how long a soft-deleted task stays restorable.
const BinRetention = 7 * 24 * time.Hour

type BinEntry struct {
	ID         string
	OriginalID string
	Task       Task
	DeletedAt  time.Time
	ExpiresAt  time.Time
}

// Expired reports whether the entry must be purged; an entry expiring exactly at now is still kept.
func (e BinEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// Restored converts the snapshot back into an active task. The original id is not reused.
func (e BinEntry) Restored() Task {
	task := e.Task
	task.ID = ""
	return task
}
