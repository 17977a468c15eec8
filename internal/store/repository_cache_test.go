package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-sync/models"
)

func testRecord(collection, recordID string) models.CachedRecord {
	return models.CachedRecord{
		Collection: collection,
		RecordID:   recordID,
		Payload:    models.Payload{"name": "Amoxicillin"},
	}
}

func TestRecordCache_ReadEmptyCollection(t *testing.T) {
	storages, _ := newTestStorages(t)

	records, err := storages.RecordCache.ReadCollection(context.Background(), "medications")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordCache_SaveAndRead(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("medications", "rec-1")))

	records, err := storages.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].RecordID)
	assert.Equal(t, models.Payload{"name": "Amoxicillin"}, records[0].Payload)
	assert.Equal(t, int64(1), records[0].Version)
}

func TestRecordCache_SaveBumpsVersion(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	record := testRecord("medications", "rec-1")
	require.NoError(t, storages.RecordCache.SaveRecord(ctx, record))

	record.Payload = models.Payload{"name": "Amoxicillin", "dosage_mg": float64(500)}
	require.NoError(t, storages.RecordCache.SaveRecord(ctx, record))

	records, err := storages.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].Version)
	assert.Equal(t, record.Payload, records[0].Payload)
}

func TestRecordCache_ReplaceCollection(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("medications", "stale-1")))
	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("medications", "stale-2")))
	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("allergies", "keep-1")))

	replacement := []models.CachedRecord{
		testRecord("medications", "fresh-1"),
		testRecord("medications", "fresh-2"),
		testRecord("medications", "fresh-3"),
	}
	require.NoError(t, storages.RecordCache.ReplaceCollection(ctx, "medications", replacement))

	records, err := storages.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, want := range []string{"fresh-1", "fresh-2", "fresh-3"} {
		assert.Equal(t, want, records[i].RecordID, "insertion order must be preserved")
	}

	// Чужая коллекция не затронута
	others, err := storages.RecordCache.ReadCollection(ctx, "allergies")
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "keep-1", others[0].RecordID)
}

func TestRecordCache_ReplaceCollectionWithEmpty(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("medications", "rec-1")))
	require.NoError(t, storages.RecordCache.ReplaceCollection(ctx, "medications", nil))

	records, err := storages.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordCache_RenameRecord(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	record := testRecord("medications", models.TempRecordID("op-1"))
	record.OriginatingOperationID = "op-1"
	require.NoError(t, storages.RecordCache.SaveRecord(ctx, record))

	err := storages.RecordCache.RenameRecord(ctx, "medications", models.TempRecordID("op-1"), "rec-42")
	require.NoError(t, err)

	records, err := storages.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-42", records[0].RecordID)
	assert.Equal(t, models.Payload{"name": "Amoxicillin"}, records[0].Payload)
	assert.Equal(t, int64(2), records[0].Version)
}

func TestRecordCache_RenameMissingRecord(t *testing.T) {
	storages, _ := newTestStorages(t)

	err := storages.RecordCache.RenameRecord(context.Background(), "medications", "ghost", "rec-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordCache_DeleteRecord(t *testing.T) {
	storages, _ := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("medications", "rec-1")))
	require.NoError(t, storages.RecordCache.DeleteRecord(ctx, "medications", "rec-1"))

	records, err := storages.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordCache_SurvivesReopen(t *testing.T) {
	storages, dbPath := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, storages.RecordCache.SaveRecord(ctx, testRecord("medications", "rec-1")))

	reopened := openStorages(t, dbPath)
	records, err := reopened.RecordCache.ReadCollection(ctx, "medications")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].RecordID)
}
