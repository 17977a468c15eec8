package store

import (
	"context"

	"github.com/MKhiriev/go-health-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// OperationQueueRepository is the durable, ordered pending-write list. Every
// mutation is committed to the local database before it is acknowledged to
// the caller; delivery to the remote store is at-least-once.
//
// Operations for a given collection are processed in strict enqueue order
// (fixed by the AUTOINCREMENT sequence). No ordering is guaranteed across
// collections.
type OperationQueueRepository interface {
	// Enqueue persists op and returns it with the assigned sequence number.
	// The operation id must already be set by the caller.
	Enqueue(ctx context.Context, op models.Operation) (models.Operation, error)

	// NextPending returns the oldest pending operation for the collection,
	// or ErrOperationNotFound when the collection has no pending work.
	NextPending(ctx context.Context, collection string) (models.Operation, error)

	// PendingCollections lists the collections that currently have pending
	// operations, ordered by the sequence of their oldest pending entry.
	PendingCollections(ctx context.Context) ([]string, error)

	// PendingOperations returns all pending operations across collections in
	// sequence order. Used by the identifier reconciler to forward-patch
	// payloads that reference temporary ids.
	PendingOperations(ctx context.Context) ([]models.Operation, error)

	// FailedOperations returns operations that were rejected permanently and
	// retained for inspection, in sequence order.
	FailedOperations(ctx context.Context) ([]models.Operation, error)

	// MarkInFlight moves a pending operation to in-flight.
	MarkInFlight(ctx context.Context, operationID string) error

	// MarkDone removes a completed operation from the queue.
	MarkDone(ctx context.Context, operationID string) error

	// MarkFailed records a failure for an in-flight operation. A retryable
	// failure returns the operation to pending with attempt_count+1; a
	// non-retryable failure parks it in the failed status, retained.
	MarkFailed(ctx context.Context, operationID string, cause string, retryable bool) error

	// ReleaseInFlight rolls every in-flight operation back to pending
	// without an attempt penalty. Called on startup (crash recovery) and
	// when a drain pass is interrupted, so the queue looks exactly as if
	// the pass had not started. Returns the number of released operations.
	ReleaseInFlight(ctx context.Context) (int64, error)

	// RewritePayload replaces the payload and target record id of a
	// still-pending operation. Used for forward-reference patching once a
	// temporary id gains its permanent counterpart.
	RewritePayload(ctx context.Context, operationID string, recordID string, payload models.Payload) error

	// CountPending returns the number of operations waiting to sync
	// (pending plus in-flight).
	CountPending(ctx context.Context) (int, error)
}

// CachedRecordRepository is the durable per-collection snapshot store used
// for reads while offline or pending sync. It is an accelerator over the
// remote store and carries no freshness guarantee while offline.
type CachedRecordRepository interface {
	// ReadCollection returns the full current snapshot for the collection
	// in insertion order. An unknown collection yields an empty slice.
	ReadCollection(ctx context.Context, collection string) ([]models.CachedRecord, error)

	// ReplaceCollection atomically overwrites the whole snapshot for the
	// collection. This is collection-level last-writer-wins, not a
	// per-record merge.
	ReplaceCollection(ctx context.Context, collection string, records []models.CachedRecord) error

	// SaveRecord inserts or overwrites a single record, bumping its local
	// version counter.
	SaveRecord(ctx context.Context, record models.CachedRecord) error

	// RenameRecord rewrites a record's identifier in place, preserving the
	// payload. Returns ErrRecordNotFound if the old id is not cached.
	RenameRecord(ctx context.Context, collection, oldID, newID string) error

	// DeleteRecord removes a single record from the snapshot.
	DeleteRecord(ctx context.Context, collection, recordID string) error
}
