// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

// newTestStorages открывает файловую SQLite в t.TempDir и прогоняет миграции.
func newTestStorages(t *testing.T) (*ClientStorages, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "healthsync.db")
	storages := openStorages(t, dbPath)
	return storages, dbPath
}

func openStorages(t *testing.T, dbPath string) *ClientStorages {
	t.Helper()
	storages, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dbPath}}, logger.Nop())
	require.NoError(t, err)
	return storages
}

func testOperation(id, collection string) models.Operation {
	return models.Operation{
		OperationID: id,
		Type:        models.OperationCreate,
		Collection:  collection,
		Payload:     models.Payload{"name": "Ibuprofen", "dosage_mg": float64(200)},
		EnqueuedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

// ── Enqueue / NextPending ────────────────────────────────────────────────────

func TestOperationQueue_EnqueueAssignsSequence(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	first, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	second, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-2", "medications"))
	require.NoError(t, err)

	assert.Equal(t, models.OperationPending, first.Status)
	assert.Greater(t, second.Seq, first.Seq, "sequence must grow with enqueue order")
}

func TestOperationQueue_NextPending_FIFOPerCollection(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-2", "allergies"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-3", "medications"))
	require.NoError(t, err)

	next, err := storages.OperationQueue.NextPending(ctx, "medications")
	require.NoError(t, err)
	assert.Equal(t, "op-1", next.OperationID)

	next, err = storages.OperationQueue.NextPending(ctx, "allergies")
	require.NoError(t, err)
	assert.Equal(t, "op-2", next.OperationID)
}

func TestOperationQueue_NextPending_EmptyCollection(t *testing.T) {
	storages, _ := newTestStorages(t)

	_, err := storages.OperationQueue.NextPending(context.Background(), "medications")
	assert.ErrorIs(t, err, ErrOperationNotFound)
}

func TestOperationQueue_PayloadRoundTrip(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	op := testOperation("op-1", "medications")
	op.Payload = models.Payload{
		"name":   "Cetirizine",
		"nested": map[string]any{"schedule": []any{"08:00", "20:00"}},
	}

	_, err := storages.OperationQueue.Enqueue(ctx, op)
	require.NoError(t, err)

	got, err := storages.OperationQueue.NextPending(ctx, "medications")
	require.NoError(t, err)
	assert.Equal(t, op.Payload, got.Payload)
}

// ── Status transitions ──────────────────────────────────────────────────────

func TestOperationQueue_MarkDoneRemovesOperation(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)

	require.NoError(t, storages.OperationQueue.MarkInFlight(ctx, "op-1"))
	require.NoError(t, storages.OperationQueue.MarkDone(ctx, "op-1"))

	count, err := storages.OperationQueue.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOperationQueue_MarkDoneWithoutInFlight(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)

	// Нельзя завершить операцию, которую никто не брал в работу
	err = storages.OperationQueue.MarkDone(ctx, "op-1")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestOperationQueue_MarkFailedRetryable(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	require.NoError(t, storages.OperationQueue.MarkInFlight(ctx, "op-1"))
	require.NoError(t, storages.OperationQueue.MarkFailed(ctx, "op-1", "network unavailable", true))

	got, err := storages.OperationQueue.NextPending(ctx, "medications")
	require.NoError(t, err)
	assert.Equal(t, models.OperationPending, got.Status)
	assert.Equal(t, 1, got.AttemptCount)
	assert.Equal(t, "network unavailable", got.LastError)
}

func TestOperationQueue_MarkFailedPermanent(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	require.NoError(t, storages.OperationQueue.MarkInFlight(ctx, "op-1"))
	require.NoError(t, storages.OperationQueue.MarkFailed(ctx, "op-1", "validation rejected", false))

	// Операция сохранена в статусе failed и больше не pending
	_, err = storages.OperationQueue.NextPending(ctx, "medications")
	assert.ErrorIs(t, err, ErrOperationNotFound)

	failed, err := storages.OperationQueue.FailedOperations(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "op-1", failed[0].OperationID)
	assert.Equal(t, models.OperationFailed, failed[0].Status)
}

func TestOperationQueue_ReleaseInFlight(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-2", "medications"))
	require.NoError(t, err)
	require.NoError(t, storages.OperationQueue.MarkInFlight(ctx, "op-1"))

	released, err := storages.OperationQueue.ReleaseInFlight(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), released)

	got, err := storages.OperationQueue.NextPending(ctx, "medications")
	require.NoError(t, err)
	assert.Equal(t, "op-1", got.OperationID)
	assert.Zero(t, got.AttemptCount, "release must not cost a retry attempt")
}

// ── Forward patching support ────────────────────────────────────────────────

func TestOperationQueue_RewritePayload(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	op := testOperation("op-2", "allergies")
	op.Type = models.OperationUpdate
	op.RecordID = "offline_op-1"
	op.Payload = models.Payload{"linked_medication": "offline_op-1"}
	_, err := storages.OperationQueue.Enqueue(ctx, op)
	require.NoError(t, err)

	err = storages.OperationQueue.RewritePayload(ctx, "op-2", "rec-77",
		models.Payload{"linked_medication": "rec-77"})
	require.NoError(t, err)

	got, err := storages.OperationQueue.NextPending(ctx, "allergies")
	require.NoError(t, err)
	assert.Equal(t, "rec-77", got.RecordID)
	assert.Equal(t, models.Payload{"linked_medication": "rec-77"}, got.Payload)
}

func TestOperationQueue_RewritePayload_OnlyPending(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	require.NoError(t, storages.OperationQueue.MarkInFlight(ctx, "op-1"))

	err = storages.OperationQueue.RewritePayload(ctx, "op-1", "rec-1", models.Payload{"x": "y"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

// ── PendingCollections / counting ───────────────────────────────────────────

func TestOperationQueue_PendingCollectionsOrdering(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "allergies"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-2", "medications"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-3", "allergies"))
	require.NoError(t, err)

	collections, err := storages.OperationQueue.PendingCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"allergies", "medications"}, collections)
}

func TestOperationQueue_CountPendingIncludesInFlight(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-2", "medications"))
	require.NoError(t, err)
	require.NoError(t, storages.OperationQueue.MarkInFlight(ctx, "op-1"))

	count, err := storages.OperationQueue.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// ── Crash recovery ──────────────────────────────────────────────────────────

func TestOperationQueue_SurvivesReopen(t *testing.T) {
	storages, dbPath := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.OperationQueue.Enqueue(ctx, testOperation("op-1", "medications"))
	require.NoError(t, err)
	_, err = storages.OperationQueue.Enqueue(ctx, testOperation("op-2", "allergies"))
	require.NoError(t, err)

	// "Рестарт" процесса: открываем ту же БД заново
	reopened := openStorages(t, dbPath)

	count, err := reopened.OperationQueue.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	next, err := reopened.OperationQueue.NextPending(ctx, "medications")
	require.NoError(t, err)
	assert.Equal(t, "op-1", next.OperationID)
}
