// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package workers

import (
	"context"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/service"
)

// drainWorker couples the connection monitor to the lock arbiter and the
// sync engine: going offline acquires the tenant's offline write lock,
// coming back online releases it and starts a drain run for the backlog.
type drainWorker struct {
	ctx      context.Context
	monitor  service.ConnectionMonitor
	arbiter  service.LockArbiter
	engine   service.SyncEngine
	tenantID string
	logger   *logger.Logger
}

func newDrainWorker(ctx context.Context, monitor service.ConnectionMonitor, arbiter service.LockArbiter, engine service.SyncEngine, tenantID string, log *logger.Logger) Worker {
	return &drainWorker{
		ctx:      ctx,
		monitor:  monitor,
		arbiter:  arbiter,
		engine:   engine,
		tenantID: tenantID,
		logger:   log,
	}
}

// Run implements Worker. It registers the transition callbacks and starts
// the monitor loop; the monitor owns the goroutine.
func (w *drainWorker) Run() {
	w.monitor.StartMonitoring(w.ctx, service.MonitorCallbacks{
		OnOnline:  w.handleOnline,
		OnOffline: w.handleOffline,
	})
}

func (w *drainWorker) handleOnline() {
	if err := w.arbiter.HandleOnline(w.ctx); err != nil {
		w.logger.Err(err).
			Str("func", "drainWorker.handleOnline").
			Str("tenant_id", w.tenantID).
			Msg("failed to release offline lock")
	}

	w.engine.Start(w.ctx, w.tenantID)
}

func (w *drainWorker) handleOffline() {
	if err := w.arbiter.HandleOffline(w.ctx); err != nil {
		w.logger.Err(err).
			Str("func", "drainWorker.handleOffline").
			Str("tenant_id", w.tenantID).
			Msg("failed to arbitrate offline lock")
	}
}
