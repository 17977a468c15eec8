package netmon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-health-sync/internal/config"
	"github.com/MKhiriev/go-health-sync/internal/logger"
)

var errUnreachable = errors.New("unreachable")

// scriptedProber answers probes from a script; once the script is exhausted
// it keeps answering with the last scripted value.
type scriptedProber struct {
	mu     sync.Mutex
	script []bool
	probes int
}

func (p *scriptedProber) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	reachable := false
	if len(p.script) > 0 {
		reachable = p.script[0]
		if len(p.script) > 1 {
			p.script = p.script[1:]
		}
	}
	p.probes++

	if !reachable {
		return errUnreachable
	}
	return nil
}

func (p *scriptedProber) set(reachable bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = []bool{reachable}
}

func (p *scriptedProber) probeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.probes
}

// recorder collects the transitions a listener observed.
type recorder struct {
	mu     sync.Mutex
	states []bool
}

func (r *recorder) listen(online bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, online)
}

func (r *recorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.states...)
}

func testNetworkConfig() config.ClientNetwork {
	return config.ClientNetwork{
		ProbeInterval:  20 * time.Millisecond,
		ProbeTimeout:   10 * time.Millisecond,
		DebounceWindow: 15 * time.Millisecond,
	}
}

func TestMonitor_StartsOffline(t *testing.T) {
	monitor := NewMonitor(&scriptedProber{}, testNetworkConfig(), logger.Nop())
	assert.False(t, monitor.CurrentlyOnline())
}

func TestMonitor_GoesOnlineAfterConfirmation(t *testing.T) {
	prober := &scriptedProber{script: []bool{true}}
	monitor := NewMonitor(prober, testNetworkConfig(), logger.Nop())

	rec := &recorder{}
	monitor.Subscribe(rec.listen)

	monitor.Start(context.Background())
	defer monitor.Stop()

	require.Eventually(t, monitor.CurrentlyOnline, time.Second, 5*time.Millisecond)

	// Переход подтверждён вторым зондом
	assert.GreaterOrEqual(t, prober.probeCount(), 2)
	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []bool{true}, rec.snapshot())
}

// Одиночный удачный зонд на нестабильной сети не должен объявлять онлайн:
// подтверждающий зонд проваливается, и монитор остаётся офлайн.
func TestMonitor_SingleLuckyProbeIsSuppressed(t *testing.T) {
	prober := &scriptedProber{script: []bool{true, false}}
	monitor := NewMonitor(prober, testNetworkConfig(), logger.Nop())

	rec := &recorder{}
	monitor.Subscribe(rec.listen)

	monitor.Start(context.Background())
	defer monitor.Stop()

	time.Sleep(150 * time.Millisecond)

	assert.False(t, monitor.CurrentlyOnline())
	assert.Empty(t, rec.snapshot())
}

func TestMonitor_GoesOfflineImmediately(t *testing.T) {
	prober := &scriptedProber{script: []bool{true}}
	monitor := NewMonitor(prober, testNetworkConfig(), logger.Nop())

	rec := &recorder{}
	monitor.Subscribe(rec.listen)

	monitor.Start(context.Background())
	defer monitor.Stop()

	require.Eventually(t, monitor.CurrentlyOnline, time.Second, 5*time.Millisecond)

	prober.set(false)
	require.Eventually(t, func() bool {
		return !monitor.CurrentlyOnline()
	}, time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []bool{true, false}, rec.snapshot())
}

func TestMonitor_Unsubscribe(t *testing.T) {
	prober := &scriptedProber{script: []bool{true}}
	monitor := NewMonitor(prober, testNetworkConfig(), logger.Nop())

	rec := &recorder{}
	unsubscribe := monitor.Subscribe(rec.listen)
	unsubscribe()

	monitor.Start(context.Background())
	defer monitor.Stop()

	require.Eventually(t, monitor.CurrentlyOnline, time.Second, 5*time.Millisecond)
	assert.Empty(t, rec.snapshot())
}

func TestMonitor_ListenersNotifiedInSubscriptionOrder(t *testing.T) {
	prober := &scriptedProber{script: []bool{true}}
	monitor := NewMonitor(prober, testNetworkConfig(), logger.Nop())

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 1; i <= 3; i++ {
		i := i
		monitor.Subscribe(func(bool) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		})
	}

	monitor.Start(context.Background())
	defer monitor.Stop()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 3
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMonitor_StopIsIdempotent(t *testing.T) {
	monitor := NewMonitor(&scriptedProber{}, testNetworkConfig(), logger.Nop())

	monitor.Stop() // не запускался — не должно паниковать
	monitor.Start(context.Background())
	monitor.Stop()
	monitor.Stop()
}
