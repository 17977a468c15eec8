// Package netmon tracks reachability of the remote health store.
//
// A Monitor periodically probes the store's health endpoint and exposes the
// current state via CurrentlyOnline. Interested components subscribe to
// transitions; notifications are dispatched sequentially from a single
// goroutine, so listeners observe transitions in the order they happened.
//
// Offline is declared immediately on a failed probe. Online requires a
// confirmation probe after a debounce window, so a single lucky probe on a
// flapping connection does not trigger a sync storm.
package netmon

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
)

// Prober performs a single reachability check. *adapter* implementations
// satisfy this with their health-endpoint ping.
type Prober interface {
	Ping(ctx context.Context) error
}

// StatusListener receives reachability transitions. Listeners are invoked
// sequentially; a slow listener delays later notifications, not probing.
type StatusListener func(online bool)

type Monitor struct {
	prober Prober
	logger *logger.Logger

	probeInterval  time.Duration
	probeTimeout   time.Duration
	debounceWindow time.Duration

	mu        sync.RWMutex
	online    bool
	listeners map[int]StatusListener
	nextID    int

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates a Monitor in the offline state. The monitor is idle
// until Start is called.
func NewMonitor(prober Prober, cfg config.ClientNetwork, log *logger.Logger) *Monitor {
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = 10 * time.Second
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 3 * time.Second
	}
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = 2 * time.Second
	}

	return &Monitor{
		prober:         prober,
		logger:         log,
		probeInterval:  cfg.ProbeInterval,
		probeTimeout:   cfg.ProbeTimeout,
		debounceWindow: cfg.DebounceWindow,
		listeners:      make(map[int]StatusListener),
	}
}

// CurrentlyOnline reports the last confirmed reachability state.
func (m *Monitor) CurrentlyOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Subscribe registers a listener for reachability transitions and returns a
// function that removes it. The listener is only called on actual state
// changes, never with a repeated value.
func (m *Monitor) Subscribe(listener StatusListener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = listener
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Start stops any previously running probe loop and launches a new one. The
// first probe fires immediately, then every probe interval. The loop exits
// when ctx is cancelled or Stop is called.
func (m *Monitor) Start(ctx context.Context) {
	m.Stop()

	m.runMu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	events := make(chan bool, 16)
	m.wg.Add(2)
	m.runMu.Unlock()

	go m.dispatchLoop(events)
	go m.probeLoop(runCtx, events)
}

// Stop cancels the probe loop and blocks until both the probing and the
// dispatching goroutines have exited. Safe to call when not running.
func (m *Monitor) Stop() {
	m.runMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// Run implements workers.Worker.
func (m *Monitor) Run(ctx context.Context) {
	m.Start(ctx)
}

func (m *Monitor) probeLoop(ctx context.Context, events chan<- bool) {
	defer m.wg.Done()
	defer close(events)

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	m.evaluate(ctx, events)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evaluate(ctx, events)
		}
	}
}

// evaluate performs one probe cycle and records the resulting transition, if
// any. Going offline is immediate; going online is confirmed with a second
// probe after the debounce window.
func (m *Monitor) evaluate(ctx context.Context, events chan<- bool) {
	reachable := m.probeOnce(ctx)

	switch {
	case !reachable && m.CurrentlyOnline():
		m.setOnline(false, events)
	case reachable && !m.CurrentlyOnline():
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.debounceWindow):
		}
		if m.probeOnce(ctx) {
			m.setOnline(true, events)
		}
	}
}

func (m *Monitor) probeOnce(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	if err := m.prober.Ping(probeCtx); err != nil {
		m.logger.Debug().Err(err).Str("func", "Monitor.probeOnce").Msg("probe failed")
		return false
	}
	return true
}

func (m *Monitor) setOnline(online bool, events chan<- bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	m.mu.Unlock()

	m.logger.Info().Bool("online", online).Str("func", "Monitor.setOnline").Msg("reachability changed")
	events <- online
}

func (m *Monitor) dispatchLoop(events <-chan bool) {
	defer m.wg.Done()

	for online := range events {
		for _, listener := range m.snapshotListeners() {
			listener(online)
		}
	}
}

// snapshotListeners returns the current listeners in subscription order so
// dispatch order is deterministic.
func (m *Monitor) snapshotListeners() []StatusListener {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int, 0, len(m.listeners))
	for id := range m.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	snapshot := make([]StatusListener, 0, len(ids))
	for _, id := range ids {
		snapshot = append(snapshot, m.listeners[id])
	}
	return snapshot
}
