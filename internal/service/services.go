package service

import (
	"github.com/MKhiriev/go-health-sync/internal/adapter"
	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/netmon"
	"github.com/MKhiriev/go-health-sync/internal/store"
)

// ClientServices bundles the engine's service layer for the application
// shell.
type ClientServices struct {
	Engine  *SyncEngine
	Offline OfflineDataService
	Records HealthRecordService
	SyncJob *SyncJob
}

func NewClientServices(
	storages *store.ClientStorages,
	remote adapter.RemoteStore,
	monitor *netmon.Monitor,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	reconciler := NewIdentifierReconciler(storages.OperationQueue, storages.RecordCache, log)
	engine := NewSyncEngine(
		storages.OperationQueue,
		remote,
		reconciler,
		monitor,
		cfg.Sync,
		cfg.Remote.RequestTimeout,
		log,
	)
	offline := NewOfflineDataService(storages.OperationQueue, storages.RecordCache, engine, monitor, log)
	records := NewHealthRecordService(offline, remote, storages.RecordCache, cfg.Remote.RequestTimeout, log)
	syncJob := NewSyncJob(engine, monitor, cfg.Sync.Interval, log)

	return &ClientServices{
		Engine:  engine,
		Offline: offline,
		Records: records,
		SyncJob: syncJob,
	}
}
