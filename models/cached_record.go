package models

import "time"

// CachedRecord is a single row of the local read cache. The cache is an
// accelerator over the remote store, not a source of truth: records are
// overwritten wholesale by collection snapshots and patched in place by
// optimistic writes.
//
// RecordID is either a permanent server-assigned identifier or a temporary
// one of shape "offline_<operation_id>" (see [TempRecordID]).
// OriginatingOperationID links an optimistically cached record back to the
// queued operation that produced it; it is empty for records that came from
// the remote store. Version is a local monotonic counter bumped on every
// write to the row.
type CachedRecord struct {
	Collection             string    `json:"collection"`
	RecordID               string    `json:"record_id"`
	Payload                Payload   `json:"payload"`
	OriginatingOperationID string    `json:"originating_operation_id,omitempty"`
	Version                int64     `json:"version"`
	UpdatedAt              time.Time `json:"updated_at"`
}
