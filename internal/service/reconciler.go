package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/store"
	"github.com/MKhiriev/go-health-sync/models"
)

// IdentifierReconciler resolves temporary record identifiers once the remote
// store assigns permanent ones.
//
// A queued create targets "offline_<operation-id>" locally. When the create
// succeeds, the reconciler renames the cached record to the assigned id and
// rewrites every still-pending queued operation that references the
// temporary id, so operations enqueued against a record that did not exist
// remotely yet ("forward references") arrive with the real identifier.
type IdentifierReconciler struct {
	queue  store.OperationQueueRepository
	cache  store.CachedRecordRepository
	logger *logger.Logger
}

func NewIdentifierReconciler(queue store.OperationQueueRepository, cache store.CachedRecordRepository, log *logger.Logger) *IdentifierReconciler {
	return &IdentifierReconciler{queue: queue, cache: cache, logger: log}
}

// OnOperationSucceeded is called by the sync engine after op was applied
// remotely. For creates it renames the cached record and forward-patches the
// queue; for updates and deletes, which always carry permanent or already
// patched ids, it is a no-op.
//
// Cache failures are logged and swallowed (the cache is not authoritative);
// queue rewrite failures are returned because a stale forward reference
// would make dependent operations fail remotely.
func (r *IdentifierReconciler) OnOperationSucceeded(ctx context.Context, op models.Operation, assignedID string) error {
	if op.Type != models.OperationCreate || assignedID == "" {
		return nil
	}

	tempID := models.TempRecordID(op.OperationID)
	r.renameCachedRecord(ctx, op, tempID, assignedID)

	return r.patchForwardReferences(ctx, tempID, assignedID)
}

func (r *IdentifierReconciler) renameCachedRecord(ctx context.Context, op models.Operation, tempID, assignedID string) {
	err := r.cache.RenameRecord(ctx, op.Collection, tempID, assignedID)
	if err == nil {
		return
	}

	if errors.Is(err, store.ErrRecordNotFound) {
		// The optimistic echo is missing (e.g. it failed at enqueue time).
		// Rebuild the record from the operation payload instead.
		err = r.cache.SaveRecord(ctx, models.CachedRecord{
			Collection:             op.Collection,
			RecordID:               assignedID,
			Payload:                op.Payload,
			OriginatingOperationID: op.OperationID,
		})
	}
	if err != nil {
		r.logger.Warn().Err(err).
			Str("func", "IdentifierReconciler.renameCachedRecord").
			Str("collection", op.Collection).
			Str("operation_id", op.OperationID).
			Msg("cache reconciliation failed; cache will be corrected on next snapshot")
	}
}

// patchForwardReferences rewrites every still-pending operation whose target
// record id or payload mentions tempID. Operations already in flight or
// failed are left alone.
func (r *IdentifierReconciler) patchForwardReferences(ctx context.Context, tempID, assignedID string) error {
	pending, err := r.queue.PendingOperations(ctx)
	if err != nil {
		return fmt.Errorf("list pending operations: %w", err)
	}

	for _, pendingOp := range pending {
		recordID := pendingOp.RecordID
		idChanged := recordID == tempID
		if idChanged {
			recordID = assignedID
		}

		patched, payloadChanged := patchPayload(pendingOp.Payload, tempID, assignedID)
		if !idChanged && !payloadChanged {
			continue
		}

		if err = r.queue.RewritePayload(ctx, pendingOp.OperationID, recordID, patched); err != nil {
			return fmt.Errorf("rewrite operation %s: %w", pendingOp.OperationID, err)
		}

		r.logger.Debug().
			Str("func", "IdentifierReconciler.patchForwardReferences").
			Str("operation_id", pendingOp.OperationID).
			Str("temp_id", tempID).
			Str("assigned_id", assignedID).
			Msg("forward reference patched")
	}

	return nil
}

// patchPayload returns payload with every string value equal to tempID
// replaced by assignedID, descending into nested objects and arrays. The
// original payload is not mutated.
func patchPayload(payload models.Payload, tempID, assignedID string) (models.Payload, bool) {
	if payload == nil {
		return nil, false
	}

	patched, changed := patchValue(map[string]any(payload), tempID, assignedID)
	return models.Payload(patched.(map[string]any)), changed
}

func patchValue(value any, tempID, assignedID string) (any, bool) {
	switch v := value.(type) {
	case string:
		if v == tempID {
			return assignedID, true
		}
		return v, false
	case models.Payload:
		return patchValue(map[string]any(v), tempID, assignedID)
	case map[string]any:
		out := make(map[string]any, len(v))
		changed := false
		for key, nested := range v {
			patched, nestedChanged := patchValue(nested, tempID, assignedID)
			out[key] = patched
			changed = changed || nestedChanged
		}
		return out, changed
	case []any:
		out := make([]any, len(v))
		changed := false
		for i, nested := range v {
			patched, nestedChanged := patchValue(nested, tempID, assignedID)
			out[i] = patched
			changed = changed || nestedChanged
		}
		return out, changed
	default:
		return value, false
	}
}
