package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/models"
)

type operationQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewOperationQueueRepository(db *DB, logger *logger.Logger) OperationQueueRepository {
	return &operationQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *operationQueueRepository) Enqueue(ctx context.Context, op models.Operation) (models.Operation, error) {
	log := logger.FromContext(ctx)

	payload, err := marshalPayload(op.Payload)
	if err != nil {
		return models.Operation{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = time.Now().UTC()
	}

	result, err := r.DB.ExecContext(ctx, enqueueOperation,
		op.OperationID,
		op.Type,
		op.Collection,
		op.RecordID,
		payload,
		op.EnqueuedAt,
		op.AttemptCount,
		op.LastError,
		models.OperationPending,
	)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.Enqueue").
			Str("operation_id", op.OperationID).
			Str("collection", op.Collection).
			Msg("failed to persist queued operation")
		return models.Operation{}, fmt.Errorf("failed to enqueue operation (operation_id=%s): %w", op.OperationID, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return models.Operation{}, ErrOperationNotSaved
	}

	seq, err := result.LastInsertId()
	if err != nil {
		// Fall back to a lookup: some drivers cannot report the id from the
		// statement result.
		row := r.DB.QueryRowContext(ctx, getLastInsertedSeq, op.OperationID)
		if scanErr := row.Scan(&seq); scanErr != nil {
			log.Err(scanErr).
				Str("func", "operationQueueRepository.Enqueue").
				Str("operation_id", op.OperationID).
				Msg("failed to resolve sequence of enqueued operation")
			return models.Operation{}, fmt.Errorf("failed to resolve enqueued sequence: %w", scanErr)
		}
	}

	op.Seq = seq
	op.Status = models.OperationPending
	return op, nil
}

func (r *operationQueueRepository) NextPending(ctx context.Context, collection string) (models.Operation, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getNextPendingOperation, collection)
	op, err := scanOperation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Operation{}, ErrOperationNotFound
		}
		log.Err(err).
			Str("func", "operationQueueRepository.NextPending").
			Str("collection", collection).
			Msg("failed to read next pending operation")
		return models.Operation{}, fmt.Errorf("failed to read next pending operation: %w", err)
	}

	return op, nil
}

func (r *operationQueueRepository) PendingCollections(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getPendingCollections)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.PendingCollections").
			Msg("failed to query pending collections")
		return nil, fmt.Errorf("failed to query pending collections: %w", err)
	}
	defer rows.Close()

	var collections []string
	for rows.Next() {
		var collection string
		if scanErr := rows.Scan(&collection); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		collections = append(collections, collection)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating pending collections: %w", rowsErr)
	}

	return collections, nil
}

func (r *operationQueueRepository) PendingOperations(ctx context.Context) ([]models.Operation, error) {
	return r.operationsByStatus(ctx, models.OperationPending)
}

func (r *operationQueueRepository) FailedOperations(ctx context.Context) ([]models.Operation, error) {
	return r.operationsByStatus(ctx, models.OperationFailed)
}

// operationsByStatus builds the filtered select dynamically; the status
// filter is the only part that varies between callers.
func (r *operationQueueRepository) operationsByStatus(ctx context.Context, status models.OperationStatus) ([]models.Operation, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("seq", "operation_id", "type", "collection", "record_id",
			"payload", "enqueued_at", "attempt_count", "last_error", "status").
		From("operations").
		Where(sq.Eq{"status": status}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.operationsByStatus").
			Str("status", string(status)).
			Msg("failed to query operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ops []models.Operation
	for rows.Next() {
		op, scanErr := scanOperation(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		ops = append(ops, op)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (r *operationQueueRepository) MarkInFlight(ctx context.Context, operationID string) error {
	return r.transition(ctx, "MarkInFlight", markOperationInFlight, operationID)
}

func (r *operationQueueRepository) MarkDone(ctx context.Context, operationID string) error {
	return r.transition(ctx, "MarkDone", markOperationDone, operationID)
}

func (r *operationQueueRepository) MarkFailed(ctx context.Context, operationID string, cause string, retryable bool) error {
	log := logger.FromContext(ctx)

	query := markOperationFailed
	if retryable {
		query = markOperationRetryable
	}

	result, err := r.DB.ExecContext(ctx, query, cause, operationID)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.MarkFailed").
			Str("operation_id", operationID).
			Bool("retryable", retryable).
			Msg("failed to record operation failure")
		return fmt.Errorf("failed to mark operation failed (operation_id=%s): %w", operationID, err)
	}

	return checkTransition(result, operationID)
}

func (r *operationQueueRepository) ReleaseInFlight(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, releaseInFlightOperations)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.ReleaseInFlight").
			Msg("failed to release in-flight operations")
		return 0, fmt.Errorf("failed to release in-flight operations: %w", err)
	}

	released, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count released operations: %w", err)
	}

	return released, nil
}

func (r *operationQueueRepository) RewritePayload(ctx context.Context, operationID string, recordID string, payload models.Payload) error {
	log := logger.FromContext(ctx)

	encoded, err := marshalPayload(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	result, err := r.DB.ExecContext(ctx, rewriteOperationPayload, recordID, encoded, operationID)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.RewritePayload").
			Str("operation_id", operationID).
			Msg("failed to rewrite operation payload")
		return fmt.Errorf("failed to rewrite payload (operation_id=%s): %w", operationID, err)
	}

	return checkTransition(result, operationID)
}

func (r *operationQueueRepository) CountPending(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.DB.QueryRowContext(ctx, countPendingOperations)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository.CountPending").
			Msg("failed to count pending operations")
		return 0, fmt.Errorf("failed to count pending operations: %w", err)
	}

	return count, nil
}

func (r *operationQueueRepository) transition(ctx context.Context, name, query, operationID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, operationID)
	if err != nil {
		log.Err(err).
			Str("func", "operationQueueRepository."+name).
			Str("operation_id", operationID).
			Msg("failed to execute status transition")
		return fmt.Errorf("failed to transition operation (operation_id=%s): %w", operationID, err)
	}

	return checkTransition(result, operationID)
}

// checkTransition verifies that a guarded status mutation actually touched a
// row. Zero affected rows means the operation either does not exist or is in
// a status that forbids the transition.
func checkTransition(result sql.Result, operationID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to verify transition (operation_id=%s): %w", operationID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w (operation_id=%s)", ErrInvalidStatusTransition, operationID)
	}
	return nil
}

func scanOperation(scan func(dest ...any) error) (models.Operation, error) {
	var (
		op      models.Operation
		payload string
	)

	if err := scan(
		&op.Seq,
		&op.OperationID,
		&op.Type,
		&op.Collection,
		&op.RecordID,
		&payload,
		&op.EnqueuedAt,
		&op.AttemptCount,
		&op.LastError,
		&op.Status,
	); err != nil {
		return models.Operation{}, err
	}

	decoded, err := unmarshalPayload(payload)
	if err != nil {
		return models.Operation{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	op.Payload = decoded

	return op, nil
}

func marshalPayload(payload models.Payload) (string, error) {
	if payload == nil {
		return "{}", nil
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unmarshalPayload(encoded string) (models.Payload, error) {
	if encoded == "" || encoded == "{}" {
		return nil, nil
	}
	var payload models.Payload
	if err := json.Unmarshal([]byte(encoded), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
