// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-sync/internal/netmon"
	"github.com/MKhiriev/go-health-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// OfflineDataService is the engine facade handed to domain services. It is
// the only surface they need: durable write queueing, offline reads, explicit
// cache population, and sync control.
type OfflineDataService interface {
	// IsDeviceOnline reports the network monitor's last confirmed state
	// without blocking.
	IsDeviceOnline() bool

	// QueueOperation durably persists a write for later delivery and
	// optimistically mirrors it into the local cache. It returns the
	// client-generated operation id once the operation is committed locally.
	// A queue persistence failure returns ErrStorageFailure and the write is
	// not acknowledged; a cache mirror failure is logged and swallowed.
	QueueOperation(ctx context.Context, descriptor models.OperationDescriptor) (string, error)

	// GetOfflineCollection returns the cached snapshot for a collection in
	// insertion order. Unknown collections yield an empty slice.
	GetOfflineCollection(ctx context.Context, collection string) ([]models.CachedRecord, error)

	// StoreOfflineData atomically replaces the cached snapshot for a
	// collection, typically after a fresh read from the remote store.
	StoreOfflineData(ctx context.Context, collection string, records []models.CachedRecord) error

	// SyncAll drains the operation queue. Concurrent callers join the
	// in-flight pass and receive its result. Returns ErrDeviceOffline when
	// the device is offline.
	SyncAll(ctx context.Context) (models.SyncResult, error)

	// GetSyncStatus derives the current engine state from the network
	// monitor and the queue. It never reports state the queue does not hold.
	GetSyncStatus(ctx context.Context) (models.SyncStatus, error)

	// FailedOperations lists permanently rejected operations retained for
	// inspection, oldest first.
	FailedOperations(ctx context.Context) ([]models.Operation, error)

	// OnNetworkStatusChange subscribes to reachability transitions and
	// returns an unsubscribe function.
	OnNetworkStatusChange(listener netmon.StatusListener) (unsubscribe func())
}

// HealthRecordService is the domain-facing write path shared by the
// medication, allergy, alert and symptom features. Writes go through an
// ordered strategy chain: applied directly when the device is online and the
// queue is empty, queued for later delivery otherwise.
type HealthRecordService interface {
	// Create stores a new record and returns its identifier: the permanent
	// server-assigned id when written directly, a temporary
	// "offline_<operation-id>" placeholder when queued.
	Create(ctx context.Context, collection string, data models.Payload) (string, error)

	// Update overwrites an existing record's payload.
	Update(ctx context.Context, collection, recordID string, data models.Payload) error

	// Delete removes a record.
	Delete(ctx context.Context, collection, recordID string) error

	// List returns the local snapshot of a collection.
	List(ctx context.Context, collection string) ([]models.CachedRecord, error)
}

// NetworkStatus is the slice of the network monitor the engine depends on.
// *netmon.Monitor satisfies it.
type NetworkStatus interface {
	CurrentlyOnline() bool
	Subscribe(listener netmon.StatusListener) (unsubscribe func())
}

// SyncRunner is the slice of the sync engine the facade and the background
// job depend on.
type SyncRunner interface {
	SyncAll(ctx context.Context) (models.SyncResult, error)
	LastSync() (attemptAt *time.Time, result *models.SyncResult)
}
