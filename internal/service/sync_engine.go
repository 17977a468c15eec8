// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-sync/internal/adapter"
	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
	"github.com/MKhiriev/go-health-sync/internal/store"
	"github.com/MKhiriev/go-health-sync/models"
)

// errPassInterrupted marks a drain pass cut short by an offline transition.
// It never leaves the engine: the pass reports the work it completed.
var errPassInterrupted = errors.New("drain pass interrupted")

// errAttemptsExhausted marks a transient failure that survived the in-pass
// retry budget. The operation goes back to pending for a later pass.
var errAttemptsExhausted = errors.New("retry attempts exhausted")

// syncPass is one in-flight drain. Joining callers block on done and read
// result/err afterwards.
type syncPass struct {
	done   chan struct{}
	result models.SyncResult
	err    error
}

// SyncEngine drains the operation queue against the remote store.
//
// A single drain pass runs at a time: concurrent SyncAll callers join the
// in-flight pass and receive its result, so a network-transition trigger and
// a user-initiated sync never double-deliver. Within a collection operations
// are applied in strict enqueue order; collections are independent.
type SyncEngine struct {
	queue      store.OperationQueueRepository
	remote     adapter.RemoteStore
	reconciler *IdentifierReconciler
	monitor    NetworkStatus
	logger     *logger.Logger

	maxAttempts    int
	backoffMin     time.Duration
	backoffMax     time.Duration
	requestTimeout time.Duration

	mu      sync.Mutex
	current *syncPass

	stateMu       sync.RWMutex
	lastAttemptAt *time.Time
	lastResult    *models.SyncResult

	// seams for tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewSyncEngine(
	queue store.OperationQueueRepository,
	remote adapter.RemoteStore,
	reconciler *IdentifierReconciler,
	monitor NetworkStatus,
	cfg config.ClientSync,
	requestTimeout time.Duration,
	log *logger.Logger,
) *SyncEngine {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffMin <= 0 {
		cfg.BackoffMin = 500 * time.Millisecond
	}
	if cfg.BackoffMax < cfg.BackoffMin {
		cfg.BackoffMax = 30 * time.Second
	}
	if requestTimeout <= 0 {
		requestTimeout = 15 * time.Second
	}

	return &SyncEngine{
		queue:          queue,
		remote:         remote,
		reconciler:     reconciler,
		monitor:        monitor,
		logger:         log,
		maxAttempts:    cfg.MaxAttempts,
		backoffMin:     cfg.BackoffMin,
		backoffMax:     cfg.BackoffMax,
		requestTimeout: requestTimeout,
		now:            time.Now,
		sleep:          sleepCtx,
	}
}

// LastSync returns when the last drain pass started and what it produced.
// Both are nil before the first pass.
func (e *SyncEngine) LastSync() (*time.Time, *models.SyncResult) {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()
	return e.lastAttemptAt, e.lastResult
}

// ReleaseStuckOperations rolls operations left in flight by a crash back to
// pending. Called once on startup, before any pass runs.
func (e *SyncEngine) ReleaseStuckOperations(ctx context.Context) error {
	released, err := e.queue.ReleaseInFlight(ctx)
	if err != nil {
		return fmt.Errorf("%w: release in-flight operations: %w", ErrStorageFailure, err)
	}
	if released > 0 {
		e.logger.Info().Int64("released", released).
			Str("func", "SyncEngine.ReleaseStuckOperations").
			Msg("recovered operations left in flight by previous run")
	}
	return nil
}

// SyncAll drains the queue, or joins the pass already draining it.
func (e *SyncEngine) SyncAll(ctx context.Context) (models.SyncResult, error) {
	e.mu.Lock()
	if pass := e.current; pass != nil {
		e.mu.Unlock()
		select {
		case <-pass.done:
			return pass.result, pass.err
		case <-ctx.Done():
			return models.SyncResult{}, ctx.Err()
		}
	}

	pass := &syncPass{done: make(chan struct{})}
	e.current = pass
	e.mu.Unlock()

	result, err := e.drain(ctx)

	e.mu.Lock()
	pass.result, pass.err = result, err
	e.current = nil
	close(pass.done)
	e.mu.Unlock()

	return result, err
}

func (e *SyncEngine) drain(ctx context.Context) (models.SyncResult, error) {
	var result models.SyncResult

	startedAt := e.now()
	e.recordAttempt(startedAt)
	defer func() { e.recordResult(result) }()

	if !e.monitor.CurrentlyOnline() {
		return result, ErrDeviceOffline
	}

	collections, err := e.queue.PendingCollections(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: list pending collections: %w", ErrStorageFailure, err)
	}

	for _, collection := range collections {
		if err = e.drainCollection(ctx, collection, &result); err != nil {
			break
		}
	}

	switch {
	case err == nil:
		e.logger.Info().
			Str("func", "SyncEngine.drain").
			Int("success", result.Success).
			Int("failed", result.Failed).
			Msg("drain pass complete")
		return result, nil
	case errors.Is(err, errPassInterrupted), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		e.rollbackInFlight(ctx)
		e.logger.Warn().Err(err).
			Str("func", "SyncEngine.drain").
			Int("success", result.Success).
			Msg("drain pass interrupted; remaining operations stay queued")
		if errors.Is(err, errPassInterrupted) {
			return result, nil
		}
		return result, err
	default:
		e.rollbackInFlight(ctx)
		return result, err
	}
}

// drainCollection applies the collection's pending operations oldest first.
// A transient failure that exhausts the retry budget stops this collection
// (a younger operation must not overtake an older one) but not the pass; a
// permanent failure parks the operation and continues.
func (e *SyncEngine) drainCollection(ctx context.Context, collection string, result *models.SyncResult) error {
	log := e.logger.With().Str("collection", collection).Logger()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !e.monitor.CurrentlyOnline() {
			return errPassInterrupted
		}

		op, err := e.queue.NextPending(ctx, collection)
		if errors.Is(err, store.ErrOperationNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: next pending for %s: %w", ErrStorageFailure, collection, err)
		}

		if err = e.queue.MarkInFlight(ctx, op.OperationID); err != nil {
			return fmt.Errorf("%w: mark in-flight %s: %w", ErrStorageFailure, op.OperationID, err)
		}

		assignedID, applyErr := e.applyWithRetry(ctx, op)
		switch {
		case applyErr == nil:
			if err = e.finishOperation(ctx, op, assignedID); err != nil {
				return err
			}
			result.Success++

		case errors.Is(applyErr, context.Canceled), errors.Is(applyErr, context.DeadlineExceeded):
			return applyErr

		case errors.Is(applyErr, errPassInterrupted):
			return applyErr

		case errors.Is(applyErr, errAttemptsExhausted):
			if err = e.queue.MarkFailed(ctx, op.OperationID, applyErr.Error(), true); err != nil {
				return fmt.Errorf("%w: mark failed %s: %w", ErrStorageFailure, op.OperationID, err)
			}
			result.Failed++
			log.Warn().Err(applyErr).Str("operation_id", op.OperationID).
				Msg("transient failure exhausted retry budget; collection deferred to next pass")
			return nil

		default:
			if err = e.queue.MarkFailed(ctx, op.OperationID, applyErr.Error(), false); err != nil {
				return fmt.Errorf("%w: mark failed %s: %w", ErrStorageFailure, op.OperationID, err)
			}
			result.Failed++
			log.Error().Err(applyErr).Str("operation_id", op.OperationID).
				Msg("operation rejected permanently; retained for inspection")
		}
	}
}

// finishOperation reconciles identifiers and removes the completed operation
// from the queue. Reconciliation runs before MarkDone: if the process dies
// between the remote apply and MarkDone, the released operation is retried
// and deduplicated by its idempotency key.
//
// The context is detached: the operation was already delivered, so its
// bookkeeping must complete even when the pass is being cancelled.
func (e *SyncEngine) finishOperation(ctx context.Context, op models.Operation, assignedID string) error {
	ctx = context.WithoutCancel(ctx)

	if err := e.reconciler.OnOperationSucceeded(ctx, op, assignedID); err != nil {
		return fmt.Errorf("%w: reconcile %s: %w", ErrStorageFailure, op.OperationID, err)
	}
	if err := e.queue.MarkDone(ctx, op.OperationID); err != nil {
		return fmt.Errorf("%w: mark done %s: %w", ErrStorageFailure, op.OperationID, err)
	}
	return nil
}

// applyWithRetry delivers one operation with the in-pass retry budget:
// bounded per-attempt timeout, exponential backoff with jitter between
// transient failures.
func (e *SyncEngine) applyWithRetry(ctx context.Context, op models.Operation) (string, error) {
	var lastErr error

	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := e.sleep(ctx, backoffDelay(attempt-1, e.backoffMin, e.backoffMax)); err != nil {
				return "", err
			}
			if !e.monitor.CurrentlyOnline() {
				return "", errPassInterrupted
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, e.requestTimeout)
		assignedID, err := e.remote.Apply(attemptCtx, op)
		cancel()

		if err == nil {
			return assignedID, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !isRetryableRemoteError(err) {
			return "", err
		}

		lastErr = err
		e.logger.Debug().Err(err).
			Str("func", "SyncEngine.applyWithRetry").
			Str("operation_id", op.OperationID).
			Int("attempt", attempt+1).
			Msg("transient apply failure")
	}

	return "", fmt.Errorf("%w: %w", errAttemptsExhausted, lastErr)
}

// rollbackInFlight returns interrupted operations to pending so the queue
// looks exactly as if the pass had not touched them. Uses a detached context
// because the pass context may already be cancelled.
func (e *SyncEngine) rollbackInFlight(ctx context.Context) {
	if _, err := e.queue.ReleaseInFlight(context.WithoutCancel(ctx)); err != nil {
		e.logger.Error().Err(err).
			Str("func", "SyncEngine.rollbackInFlight").
			Msg("failed to release in-flight operations; startup recovery will retry")
	}
}

func (e *SyncEngine) recordAttempt(at time.Time) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.lastAttemptAt = &at
}

func (e *SyncEngine) recordResult(result models.SyncResult) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.lastResult = &result
}
