package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-sync/internal/logger"
)

// SyncJob drains the queue in the background: on every offline→online
// transition and on a periodic interval as a safety net. Rapid flapping is
// absorbed twice — the network monitor debounces transitions and the engine
// collapses concurrent triggers into a single pass.
type SyncJob struct {
	engine   SyncRunner
	monitor  NetworkStatus
	interval time.Duration
	logger   *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewSyncJob creates a SyncJob that is idle until Start is called. If
// interval is zero or negative it defaults to 5 minutes.
func NewSyncJob(engine SyncRunner, monitor NetworkStatus, interval time.Duration, log *logger.Logger) *SyncJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &SyncJob{engine: engine, monitor: monitor, interval: interval, logger: log}
}

// Start stops any previously running job, subscribes to network
// transitions, and launches the background drain loop. The loop exits when
// ctx is cancelled or Stop is called.
func (j *SyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	trigger := make(chan struct{}, 1)
	j.unsubscribe = j.monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		select {
		case trigger <- struct{}{}:
		default: // a drain is already requested
		}
	})

	j.wg.Add(1)
	j.mu.Unlock()

	go j.loop(jobCtx, trigger)
}

// Stop cancels the background loop, detaches from the network monitor, and
// blocks until the loop has exited. Safe to call when the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	unsubscribe := j.unsubscribe
	j.cancel = nil
	j.unsubscribe = nil
	j.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *SyncJob) loop(ctx context.Context, trigger <-chan struct{}) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-trigger:
			j.drain(ctx, "network transition")
		case <-ticker.C:
			j.drain(ctx, "periodic interval")
		}
	}
}

func (j *SyncJob) drain(ctx context.Context, reason string) {
	result, err := j.engine.SyncAll(ctx)
	switch {
	case err == nil:
		j.logger.Info().
			Str("func", "SyncJob.drain").
			Str("reason", reason).
			Int("success", result.Success).
			Int("failed", result.Failed).
			Msg("background drain finished")
	case errors.Is(err, ErrDeviceOffline), errors.Is(err, context.Canceled):
		// nothing to do offline; cancellation means we are shutting down
	default:
		j.logger.Error().Err(err).
			Str("func", "SyncJob.drain").
			Str("reason", reason).
			Msg("background drain failed")
	}
}

// Run implements workers.Worker.
func (j *SyncJob) Run(ctx context.Context) {
	j.Start(ctx)
}
