package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
)

// ClientStorages groups the local storage repositories into a single value
// that can be passed around the service layer: the durable operation queue
// and the per-collection record cache, both backed by one SQLite database.
type ClientStorages struct {
	// OperationQueue is the durable write-ahead queue of pending mutations.
	OperationQueue OperationQueueRepository

	// RecordCache is the per-collection snapshot store used for offline
	// reads and optimistic writes.
	RecordCache CachedRecordRepository
}

// NewClientStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     queue and cache repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		OperationQueue: NewOperationQueueRepository(db, logger),
		RecordCache:    NewCachedRecordRepository(db, logger),
	}, nil
}
