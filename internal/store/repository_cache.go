package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

type cachedRecordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewCachedRecordRepository(db *DB, logger *logger.Logger) CachedRecordRepository {
	return &cachedRecordRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *cachedRecordRepository) ReadCollection(ctx context.Context, collection string) ([]models.CachedRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, readCachedCollection, collection)
	if err != nil {
		log.Err(err).
			Str("func", "cachedRecordRepository.ReadCollection").
			Str("collection", collection).
			Msg("failed to query cached collection")
		return nil, fmt.Errorf("failed to query cached collection %s: %w", collection, err)
	}
	defer rows.Close()

	var records []models.CachedRecord
	for rows.Next() {
		var (
			record  models.CachedRecord
			payload string
		)

		scanErr := rows.Scan(
			&record.Collection,
			&record.RecordID,
			&payload,
			&record.OriginatingOperationID,
			&record.Version,
			&record.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "cachedRecordRepository.ReadCollection").
				Str("collection", collection).
				Msg("failed to scan cached record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		decoded, decodeErr := unmarshalPayload(payload)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, decodeErr)
		}
		record.Payload = decoded

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "cachedRecordRepository.ReadCollection").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached record rows: %w", rowsErr)
	}

	return records, nil
}

// ReplaceCollection overwrites the whole snapshot inside one transaction so
// concurrent readers never observe a half-replaced collection.
func (r *cachedRecordRepository) ReplaceCollection(ctx context.Context, collection string, records []models.CachedRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCachedCollection, collection); err != nil {
		log.Err(err).
			Str("func", "cachedRecordRepository.ReplaceCollection").
			Str("collection", collection).
			Msg("failed to clear cached collection")
		return fmt.Errorf("failed to clear cached collection %s: %w", collection, err)
	}

	if len(records) > 0 {
		builder := sq.
			Insert("cached_records").
			Columns("collection", "record_id", "payload",
				"originating_operation_id", "version", "updated_at")

		now := r.now()
		for _, record := range records {
			payload, encodeErr := marshalPayload(record.Payload)
			if encodeErr != nil {
				return fmt.Errorf("%w: %w", ErrEncodingPayload, encodeErr)
			}

			version := record.Version
			if version <= 0 {
				version = 1
			}
			builder = builder.Values(collection, record.RecordID, payload,
				record.OriginatingOperationID, version, now)
		}

		query, args, buildErr := builder.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "cachedRecordRepository.ReplaceCollection").
				Str("collection", collection).
				Int("records", len(records)).
				Msg("failed to insert replacement snapshot")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *cachedRecordRepository) SaveRecord(ctx context.Context, record models.CachedRecord) error {
	log := logger.FromContext(ctx)

	payload, err := marshalPayload(record.Payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	_, err = r.DB.ExecContext(ctx, saveCachedRecord,
		record.Collection,
		record.RecordID,
		payload,
		record.OriginatingOperationID,
		r.now(),
	)
	if err != nil {
		log.Err(err).
			Str("func", "cachedRecordRepository.SaveRecord").
			Str("collection", record.Collection).
			Str("record_id", record.RecordID).
			Msg("failed to execute upsert for cached record")
		return fmt.Errorf("failed to save cached record (record_id=%s): %w", record.RecordID, err)
	}

	return nil
}

func (r *cachedRecordRepository) RenameRecord(ctx context.Context, collection, oldID, newID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, renameCachedRecord, newID, r.now(), collection, oldID)
	if err != nil {
		log.Err(err).
			Str("func", "cachedRecordRepository.RenameRecord").
			Str("collection", collection).
			Str("old_id", oldID).
			Str("new_id", newID).
			Msg("failed to rename cached record")
		return fmt.Errorf("failed to rename cached record (%s -> %s): %w", oldID, newID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify rename (record_id=%s): %w", oldID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w (collection=%s, record_id=%s)", ErrRecordNotFound, collection, oldID)
	}

	return nil
}

func (r *cachedRecordRepository) DeleteRecord(ctx context.Context, collection, recordID string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, deleteCachedRecord, collection, recordID)
	if err != nil {
		log.Err(err).
			Str("func", "cachedRecordRepository.DeleteRecord").
			Str("collection", collection).
			Str("record_id", recordID).
			Msg("failed to delete cached record")
		return fmt.Errorf("failed to delete cached record (record_id=%s): %w", recordID, err)
	}

	return nil
}
