package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/netmon"
	"github.com/MKhiriev/go-health-sync/internal/store"
	"github.com/MKhiriev/go-health-sync/models"
)

// fakeMonitor is a hand-driven NetworkStatus double.
type fakeMonitor struct {
	mu        sync.Mutex
	online    bool
	listeners []netmon.StatusListener
}

func (m *fakeMonitor) CurrentlyOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *fakeMonitor) Subscribe(listener netmon.StatusListener) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, listener)
	return func() {}
}

// setOnline flips the state and notifies listeners synchronously, like the
// real monitor's sequential dispatcher.
func (m *fakeMonitor) setOnline(online bool) {
	m.mu.Lock()
	m.online = online
	listeners := append([]netmon.StatusListener(nil), m.listeners...)
	m.mu.Unlock()

	for _, listener := range listeners {
		listener(online)
	}
}

// fakeRemote records applied operations and answers from per-operation error
// scripts. Creates get deterministic "srv-N" identifiers.
type fakeRemote struct {
	mu      sync.Mutex
	token   string
	applied []models.Operation
	scripts map[string][]error
	nextID  int

	// afterApply, when set, runs after each successful apply. Used to
	// simulate mid-pass events such as an offline transition.
	afterApply func(op models.Operation)
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{scripts: make(map[string][]error)}
}

func (r *fakeRemote) SetToken(token string) { r.mu.Lock(); r.token = token; r.mu.Unlock() }

func (r *fakeRemote) Token() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token
}

func (r *fakeRemote) Ping(context.Context) error { return nil }

func (r *fakeRemote) Apply(ctx context.Context, op models.Operation) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	if script := r.scripts[op.OperationID]; len(script) > 0 {
		err := script[0]
		r.scripts[op.OperationID] = script[1:]
		r.mu.Unlock()
		return "", err
	}

	r.applied = append(r.applied, op)
	assignedID := ""
	if op.Type == models.OperationCreate {
		r.nextID++
		assignedID = fmt.Sprintf("srv-%d", r.nextID)
	}
	after := r.afterApply
	r.mu.Unlock()

	if after != nil {
		after(op)
	}
	return assignedID, nil
}

// failNext schedules errs to be returned by the next Apply calls for the
// given operation, in order.
func (r *fakeRemote) failNext(operationID string, errs ...error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scripts[operationID] = append(r.scripts[operationID], errs...)
}

func (r *fakeRemote) appliedOps() []models.Operation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Operation(nil), r.applied...)
}

// engineHarness wires a real SQLite-backed store to the fakes.
type engineHarness struct {
	storages *store.ClientStorages
	remote   *fakeRemote
	monitor  *fakeMonitor
	engine   *SyncEngine
	offline  OfflineDataService
}

func newEngineHarness(t *testing.T) *engineHarness {
	t.Helper()

	storages, err := store.NewClientStorages(config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "health.db")},
	}, logger.Nop())
	require.NoError(t, err)

	remote := newFakeRemote()
	monitor := &fakeMonitor{online: true}

	reconciler := NewIdentifierReconciler(storages.OperationQueue, storages.RecordCache, logger.Nop())
	engine := NewSyncEngine(
		storages.OperationQueue,
		remote,
		reconciler,
		monitor,
		config.ClientSync{
			MaxAttempts: 3,
			BackoffMin:  time.Millisecond,
			BackoffMax:  2 * time.Millisecond,
		},
		time.Second,
		logger.Nop(),
	)
	offline := NewOfflineDataService(storages.OperationQueue, storages.RecordCache, engine, monitor, logger.Nop())

	return &engineHarness{
		storages: storages,
		remote:   remote,
		monitor:  monitor,
		engine:   engine,
		offline:  offline,
	}
}

func (h *engineHarness) queueCreate(t *testing.T, collection string, data models.Payload) string {
	t.Helper()
	operationID, err := h.offline.QueueOperation(context.Background(), models.OperationDescriptor{
		Type:       models.OperationCreate,
		Collection: collection,
		Data:       data,
	})
	require.NoError(t, err)
	return operationID
}

func (h *engineHarness) queueUpdate(t *testing.T, collection, recordID string, data models.Payload) string {
	t.Helper()
	operationID, err := h.offline.QueueOperation(context.Background(), models.OperationDescriptor{
		Type:       models.OperationUpdate,
		Collection: collection,
		RecordID:   recordID,
		Data:       data,
	})
	require.NoError(t, err)
	return operationID
}

func (h *engineHarness) queueDelete(t *testing.T, collection, recordID string) string {
	t.Helper()
	operationID, err := h.offline.QueueOperation(context.Background(), models.OperationDescriptor{
		Type:       models.OperationDelete,
		Collection: collection,
		RecordID:   recordID,
	})
	require.NoError(t, err)
	return operationID
}

func (h *engineHarness) queueLength(t *testing.T) int {
	t.Helper()
	status, err := h.offline.GetSyncStatus(context.Background())
	require.NoError(t, err)
	return status.QueueLength
}
