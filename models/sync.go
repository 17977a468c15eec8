package models

import "time"

// SyncResult is the aggregate outcome of one drain pass over the write
// queue: how many operations were applied remotely and how many failed
// (permanently or after the pass exhausted its in-pass retry budget).
type SyncResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// SyncStatus is derived state recomputed on demand from the network monitor
// and the operation queue; it is never mutated independently.
type SyncStatus struct {
	IsOnline          bool        `json:"is_online"`
	QueueLength       int         `json:"queue_length"`
	LastSyncAttemptAt *time.Time  `json:"last_sync_attempt_at,omitempty"`
	LastSyncResult    *SyncResult `json:"last_sync_result,omitempty"`
}
