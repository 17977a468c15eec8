package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-sync/internal/adapter"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/store"
	"github.com/MKhiriev/go-health-sync/internal/utils"
	"github.com/MKhiriev/go-health-sync/models"
)

// Collections managed by the record service. The engine itself is
// collection-agnostic; the names live here with their only caller.
const (
	CollectionMedications = "medications"
	CollectionAllergies   = "allergies"
	CollectionAlerts      = "alerts"
	CollectionSymptoms    = "symptoms"
)

var knownCollections = map[string]struct{}{
	CollectionMedications: {},
	CollectionAllergies:   {},
	CollectionAlerts:      {},
	CollectionSymptoms:    {},
}

// errTryNextStrategy signals that a write strategy declined the operation
// and the chain should continue with the next one.
var errTryNextStrategy = errors.New("strategy declined; try next")

// writeStrategy is one way of landing a mutation. Strategies are tried in
// order; returning errTryNextStrategy (possibly wrapped) passes the write on.
type writeStrategy struct {
	name  string
	apply func(ctx context.Context, descriptor models.OperationDescriptor) (string, error)
}

// recordService lands domain writes through an ordered strategy chain:
//
//  1. directWrite — device online and nothing queued: apply remotely at
//     once and mirror into the cache, so the caller gets the permanent id.
//  2. queueWrite — everything else: durable enqueue with optimistic echo.
//
// The queue-empty guard on directWrite preserves per-collection ordering: a
// direct write must never overtake mutations still waiting in the queue.
type recordService struct {
	offline OfflineDataService
	remote  adapter.RemoteStore
	cache   store.CachedRecordRepository
	ids     *utils.UUIDGenerator
	logger  *logger.Logger

	requestTimeout time.Duration
}

func NewHealthRecordService(
	offline OfflineDataService,
	remote adapter.RemoteStore,
	cache store.CachedRecordRepository,
	requestTimeout time.Duration,
	log *logger.Logger,
) HealthRecordService {
	if requestTimeout <= 0 {
		requestTimeout = 15 * time.Second
	}

	return &recordService{
		offline:        offline,
		remote:         remote,
		cache:          cache,
		ids:            utils.NewUUIDGenerator(),
		logger:         log,
		requestTimeout: requestTimeout,
	}
}

func (s *recordService) Create(ctx context.Context, collection string, data models.Payload) (string, error) {
	return s.write(ctx, models.OperationDescriptor{
		Type:       models.OperationCreate,
		Collection: collection,
		Data:       data,
	})
}

func (s *recordService) Update(ctx context.Context, collection, recordID string, data models.Payload) error {
	_, err := s.write(ctx, models.OperationDescriptor{
		Type:       models.OperationUpdate,
		Collection: collection,
		RecordID:   recordID,
		Data:       data,
	})
	return err
}

func (s *recordService) Delete(ctx context.Context, collection, recordID string) error {
	_, err := s.write(ctx, models.OperationDescriptor{
		Type:       models.OperationDelete,
		Collection: collection,
		RecordID:   recordID,
	})
	return err
}

func (s *recordService) List(ctx context.Context, collection string) ([]models.CachedRecord, error) {
	if _, ok := knownCollections[collection]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return s.offline.GetOfflineCollection(ctx, collection)
}

func (s *recordService) write(ctx context.Context, descriptor models.OperationDescriptor) (string, error) {
	if _, ok := knownCollections[descriptor.Collection]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, descriptor.Collection)
	}

	strategies := []writeStrategy{
		{name: "directWrite", apply: s.directWrite},
		{name: "queueWrite", apply: s.queueWrite},
	}

	for _, strategy := range strategies {
		id, err := strategy.apply(ctx, descriptor)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, errTryNextStrategy) {
			return "", err
		}
		s.logger.Debug().Err(err).
			Str("func", "recordService.write").
			Str("strategy", strategy.name).
			Str("collection", descriptor.Collection).
			Msg("strategy declined")
	}

	return "", fmt.Errorf("no write strategy accepted %s on %s", descriptor.Type, descriptor.Collection)
}

// directWrite applies the mutation against the remote store synchronously.
// It declines when the device is offline, when the queue is non-empty, and
// on unavailability or permission errors, all of which the queue path can
// absorb. Payload rejections surface immediately: queueing a payload the
// store already refused would just park it in the failed list later.
func (s *recordService) directWrite(ctx context.Context, descriptor models.OperationDescriptor) (string, error) {
	if !s.offline.IsDeviceOnline() {
		return "", fmt.Errorf("%w: %w", errTryNextStrategy, ErrDeviceOffline)
	}

	status, err := s.offline.GetSyncStatus(ctx)
	if err != nil {
		return "", err
	}
	if status.QueueLength > 0 {
		return "", fmt.Errorf("%w: %d operations queued ahead", errTryNextStrategy, status.QueueLength)
	}

	op := models.Operation{
		OperationID: s.ids.Generate(),
		Type:        descriptor.Type,
		Collection:  descriptor.Collection,
		RecordID:    descriptor.RecordID,
		Payload:     descriptor.Data,
	}

	applyCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	assignedID, err := s.remote.Apply(applyCtx, op)
	cancel()

	switch {
	case err == nil:
		recordID := assignedID
		if recordID == "" {
			recordID = descriptor.RecordID
		}
		s.mirrorDirectWrite(ctx, descriptor, recordID)
		return recordID, nil
	case errors.Is(err, adapter.ErrUnavailable), errors.Is(err, adapter.ErrPermission):
		return "", fmt.Errorf("%w: %w", errTryNextStrategy, err)
	default:
		return "", err
	}
}

func (s *recordService) queueWrite(ctx context.Context, descriptor models.OperationDescriptor) (string, error) {
	operationID, err := s.offline.QueueOperation(ctx, descriptor)
	if err != nil {
		return "", err
	}
	if descriptor.Type == models.OperationCreate {
		return models.TempRecordID(operationID), nil
	}
	return descriptor.RecordID, nil
}

func (s *recordService) mirrorDirectWrite(ctx context.Context, descriptor models.OperationDescriptor, recordID string) {
	var err error
	switch descriptor.Type {
	case models.OperationCreate, models.OperationUpdate:
		err = s.cache.SaveRecord(ctx, models.CachedRecord{
			Collection: descriptor.Collection,
			RecordID:   recordID,
			Payload:    descriptor.Data,
		})
	case models.OperationDelete:
		err = s.cache.DeleteRecord(ctx, descriptor.Collection, recordID)
	}

	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "recordService.mirrorDirectWrite").
			Str("collection", descriptor.Collection).
			Str("record_id", recordID).
			Msg("cache mirror after direct write failed")
	}
}
