// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package service

import (
	"context"
	"sync"
	"time"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/models"
)

// Prober is the active reachability check the monitor runs against the
// remote authority.
type Prober interface {
	Ping(ctx context.Context) error
}

type connectionMonitor struct {
	prober   Prober
	interval time.Duration
	debounce time.Duration
	logger   *logger.Logger

	mu             sync.RWMutex
	state          models.ConnectionState
	lastProbeAt    time.Time
	platformOnline bool
	callbacks      MonitorCallbacks

	loopMu sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConnectionMonitor creates a monitor in the checking state. It is idle
// until StartMonitoring is called; CheckStatus works without a running loop.
func NewConnectionMonitor(prober Prober, cfg config.Monitor, log *logger.Logger) ConnectionMonitor {
	interval := cfg.ProbeInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	debounce := cfg.ProbeDebounce
	if debounce <= 0 {
		debounce = 5 * time.Second
	}

	return &connectionMonitor{
		prober:   prober,
		interval: interval,
		debounce: debounce,
		logger:   log,
		state:    models.ConnectionState{Status: models.ConnChecking},
	}
}

// StartMonitoring implements ConnectionMonitor. It stops any previously
// running loop, probes once immediately, then probes every interval until
// ctx is cancelled or StopMonitoring is called.
func (m *connectionMonitor) StartMonitoring(ctx context.Context, callbacks MonitorCallbacks) {
	m.StopMonitoring()

	m.mu.Lock()
	m.callbacks = callbacks
	m.mu.Unlock()

	m.loopMu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.loopMu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		m.forceProbe(loopCtx)

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				m.forceProbe(loopCtx)
			}
		}
	}()
}

// StopMonitoring implements ConnectionMonitor. It cancels the probe loop and
// blocks until the goroutine has fully exited. No-op when not monitoring.
func (m *connectionMonitor) StopMonitoring() {
	m.loopMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.loopMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *connectionMonitor) CheckStatus(ctx context.Context) models.ConnectionStatus {
	m.mu.Lock()
	if !m.lastProbeAt.IsZero() && time.Since(m.lastProbeAt) < m.debounce {
		status := m.state.Status
		m.mu.Unlock()
		return status
	}
	m.lastProbeAt = time.Now()
	m.mu.Unlock()

	m.probe(ctx)
	return m.GetStatus().Status
}

func (m *connectionMonitor) GetStatus() models.ConnectionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *connectionMonitor) IsOnline() bool {
	return m.GetStatus().Status == models.ConnOnline
}

func (m *connectionMonitor) IsOffline() bool {
	return m.GetStatus().Status == models.ConnOffline
}

func (m *connectionMonitor) NotifyPlatformOnline(ctx context.Context) {
	m.mu.Lock()
	m.platformOnline = true
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "connectionMonitor.NotifyPlatformOnline").
		Msg("platform online signal received, re-probing")

	m.forceProbe(ctx)
}

func (m *connectionMonitor) NotifyPlatformOffline() {
	m.mu.Lock()
	m.platformOnline = false
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "connectionMonitor.NotifyPlatformOffline").
		Msg("platform offline signal received")

	m.setStatus(models.ConnOffline)
}

// forceProbe probes regardless of the debounce window and refreshes it.
func (m *connectionMonitor) forceProbe(ctx context.Context) {
	m.mu.Lock()
	m.lastProbeAt = time.Now()
	m.mu.Unlock()

	m.probe(ctx)
}

func (m *connectionMonitor) probe(ctx context.Context) {
	err := m.prober.Ping(ctx)
	if err == nil {
		m.setStatus(models.ConnOnline)
		return
	}

	m.mu.RLock()
	platformOnline := m.platformOnline
	m.mu.RUnlock()

	// The platform signal outranks a single failed probe.
	if platformOnline {
		m.logger.Warn().
			Str("func", "connectionMonitor.probe").
			Str("policy", "OptimisticOnlineFallback").
			Err(err).
			Msg("probe failed while platform reports online, keeping status online")
		m.setStatus(models.ConnOnline)
		return
	}

	m.logger.Debug().
		Str("func", "connectionMonitor.probe").
		Err(err).
		Msg("probe failed")

	m.setStatus(models.ConnOffline)
}

func (m *connectionMonitor) setStatus(next models.ConnectionStatus) {
	m.mu.Lock()
	prev := m.state.Status
	m.state = models.ConnectionState{Status: next, LastCheckedAt: time.Now()}
	cbs := m.callbacks
	m.mu.Unlock()

	if prev == next {
		return
	}

	m.logger.Info().
		Str("func", "connectionMonitor.setStatus").
		Str("from", string(prev)).
		Str("to", string(next)).
		Msg("connection status changed")

	if cbs.OnStatusChange != nil {
		cbs.OnStatusChange(next)
	}
	switch next {
	case models.ConnOnline:
		if cbs.OnOnline != nil {
			cbs.OnOnline()
		}
	case models.ConnOffline:
		if cbs.OnOffline != nil {
			cbs.OnOffline()
		}
	}
}
