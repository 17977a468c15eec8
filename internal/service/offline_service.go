package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/netmon"
	"github.com/MKhiriev/go-health-sync/internal/store"
	"github.com/MKhiriev/go-health-sync/internal/utils"
	"github.com/MKhiriev/go-health-sync/models"
)

type offlineDataService struct {
	queue   store.OperationQueueRepository
	cache   store.CachedRecordRepository
	engine  SyncRunner
	monitor NetworkStatus
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

func NewOfflineDataService(
	queue store.OperationQueueRepository,
	cache store.CachedRecordRepository,
	engine SyncRunner,
	monitor NetworkStatus,
	log *logger.Logger,
) OfflineDataService {
	return &offlineDataService{
		queue:   queue,
		cache:   cache,
		engine:  engine,
		monitor: monitor,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
}

func (s *offlineDataService) IsDeviceOnline() bool {
	return s.monitor.CurrentlyOnline()
}

// QueueOperation validates the descriptor, durably persists the operation,
// then optimistically mirrors the change into the cache. The operation id is
// returned only after the queue insert committed; the cache echo is best
// effort.
func (s *offlineDataService) QueueOperation(ctx context.Context, descriptor models.OperationDescriptor) (string, error) {
	if err := validateDescriptor(descriptor); err != nil {
		return "", err
	}

	op := models.Operation{
		OperationID: s.ids.Generate(),
		Type:        descriptor.Type,
		Collection:  descriptor.Collection,
		RecordID:    descriptor.RecordID,
		Payload:     descriptor.Data,
	}
	if op.Type == models.OperationCreate {
		op.RecordID = models.TempRecordID(op.OperationID)
	}

	saved, err := s.queue.Enqueue(ctx, op)
	if err != nil {
		return "", fmt.Errorf("%w: enqueue %s %s: %w", ErrStorageFailure, op.Type, op.Collection, err)
	}

	s.echoToCache(ctx, saved)

	s.logger.Debug().
		Str("func", "offlineDataService.QueueOperation").
		Str("operation_id", saved.OperationID).
		Str("collection", saved.Collection).
		Str("type", string(saved.Type)).
		Msg("operation queued")

	return saved.OperationID, nil
}

// echoToCache reflects a queued write into the local snapshot so reads see
// it immediately. Failures are logged only: the queue row is the source of
// truth and the cache converges on the next snapshot or sync.
func (s *offlineDataService) echoToCache(ctx context.Context, op models.Operation) {
	var err error
	switch op.Type {
	case models.OperationCreate, models.OperationUpdate:
		err = s.cache.SaveRecord(ctx, models.CachedRecord{
			Collection:             op.Collection,
			RecordID:               op.RecordID,
			Payload:                op.Payload,
			OriginatingOperationID: op.OperationID,
		})
	case models.OperationDelete:
		err = s.cache.DeleteRecord(ctx, op.Collection, op.RecordID)
	}

	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "offlineDataService.echoToCache").
			Str("operation_id", op.OperationID).
			Str("collection", op.Collection).
			Msg("optimistic cache echo failed; queue row remains authoritative")
	}
}

func (s *offlineDataService) GetOfflineCollection(ctx context.Context, collection string) ([]models.CachedRecord, error) {
	records, err := s.cache.ReadCollection(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: read collection %s: %w", ErrStorageFailure, collection, err)
	}
	return records, nil
}

func (s *offlineDataService) StoreOfflineData(ctx context.Context, collection string, records []models.CachedRecord) error {
	if err := s.cache.ReplaceCollection(ctx, collection, records); err != nil {
		return fmt.Errorf("%w: replace collection %s: %w", ErrStorageFailure, collection, err)
	}
	return nil
}

func (s *offlineDataService) SyncAll(ctx context.Context) (models.SyncResult, error) {
	return s.engine.SyncAll(ctx)
}

func (s *offlineDataService) GetSyncStatus(ctx context.Context) (models.SyncStatus, error) {
	queueLength, err := s.queue.CountPending(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("%w: count pending: %w", ErrStorageFailure, err)
	}

	attemptAt, result := s.engine.LastSync()

	return models.SyncStatus{
		IsOnline:          s.monitor.CurrentlyOnline(),
		QueueLength:       queueLength,
		LastSyncAttemptAt: attemptAt,
		LastSyncResult:    result,
	}, nil
}

func (s *offlineDataService) FailedOperations(ctx context.Context) ([]models.Operation, error) {
	failed, err := s.queue.FailedOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list failed operations: %w", ErrStorageFailure, err)
	}
	return failed, nil
}

func (s *offlineDataService) OnNetworkStatusChange(listener netmon.StatusListener) (unsubscribe func()) {
	return s.monitor.Subscribe(listener)
}

func validateDescriptor(descriptor models.OperationDescriptor) error {
	if descriptor.Collection == "" {
		return fmt.Errorf("%w: collection is required", ErrInvalidOperation)
	}

	switch descriptor.Type {
	case models.OperationCreate:
		if descriptor.RecordID != "" {
			return fmt.Errorf("%w: create must not carry a record id", ErrInvalidOperation)
		}
		if len(descriptor.Data) == 0 {
			return fmt.Errorf("%w: create requires data", ErrInvalidOperation)
		}
	case models.OperationUpdate:
		if descriptor.RecordID == "" {
			return fmt.Errorf("%w: update requires a record id", ErrInvalidOperation)
		}
		if len(descriptor.Data) == 0 {
			return fmt.Errorf("%w: update requires data", ErrInvalidOperation)
		}
	case models.OperationDelete:
		if descriptor.RecordID == "" {
			return fmt.Errorf("%w: delete requires a record id", ErrInvalidOperation)
		}
	default:
		return fmt.Errorf("%w: unknown operation type %q", ErrInvalidOperation, descriptor.Type)
	}

	return nil
}
