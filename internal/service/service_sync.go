// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akudrin/offsync/internal/adapter"
	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/validators"
	"github.com/akudrin/offsync/models"
)

// seedUserIDs are well-known identities provisioned by the remote side.
// Queued mutations for them are acknowledged locally without a remote call.
var seedUserIDs = map[string]struct{}{
	"admin":  {},
	"demo":   {},
	"system": {},
}

type remoteCall struct {
	save   func(ctx context.Context, payload json.RawMessage) error
	delete func(ctx context.Context, entityID string) error
}

type syncEngine struct {
	queue     store.QueueRepository
	remote    adapter.RemoteAPI
	validator validators.Validator
	cfg       config.Engine
	logger    *logger.Logger

	dispatch map[string]remoteCall

	mu      sync.Mutex
	running bool
	paused  bool
	stopped bool
	wg      sync.WaitGroup

	obsMu      sync.RWMutex
	nextObsID  int
	onProgress map[int]func(models.SyncProgress)
	onComplete map[int]func(models.SyncResult)
}

// NewSyncEngine creates an idle sync engine. Zero config fields fall back to
// the defaults: batch size 5, 3 retries, 2s base delay, 30s item timeout,
// 100ms batch delay, 500ms pause poll.
func NewSyncEngine(queue store.QueueRepository, remote adapter.RemoteAPI, validator validators.Validator, cfg config.Engine, log *logger.Logger) SyncEngine {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseRetryDelay <= 0 {
		cfg.BaseRetryDelay = 2 * time.Second
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = 30 * time.Second
	}
	if cfg.BatchDelay <= 0 {
		cfg.BatchDelay = 100 * time.Millisecond
	}
	if cfg.PausePoll <= 0 {
		cfg.PausePoll = 500 * time.Millisecond
	}

	e := &syncEngine{
		queue:      queue,
		remote:     remote,
		validator:  validator,
		cfg:        cfg,
		logger:     log,
		onProgress: make(map[int]func(models.SyncProgress)),
		onComplete: make(map[int]func(models.SyncResult)),
	}
	e.dispatch = map[string]remoteCall{
		models.OpTypeTransaction: {save: remote.SaveTransaction, delete: remote.DeleteTransaction},
		models.OpTypeInvoice:     {save: remote.SaveInvoice, delete: remote.DeleteInvoice},
		models.OpTypeContact:     {save: remote.SaveContact, delete: remote.DeleteContact},
		models.OpTypeUser:        {save: remote.SaveUser, delete: remote.DeleteUser},
	}

	return e
}

// Start implements SyncEngine. The drain runs in a background goroutine;
// Start returns immediately. A second Start while a run is active is a
// no-op.
func (e *syncEngine) Start(ctx context.Context, tenantID string) {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		e.logger.Debug().
			Str("func", "syncEngine.Start").
			Str("tenant_id", tenantID).
			Msg("run already active, ignoring start")
		return
	}
	e.running = true
	e.stopped = false
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		defer func() {
			e.mu.Lock()
			e.running = false
			e.mu.Unlock()
		}()

		e.run(ctx, tenantID)
	}()
}

func (e *syncEngine) Pause() {
	e.mu.Lock()
	e.paused = true
	e.mu.Unlock()
}

func (e *syncEngine) Resume() {
	e.mu.Lock()
	e.paused = false
	e.mu.Unlock()
}

// Stop implements SyncEngine. Cooperative: the run ends at the next batch
// boundary, items in flight settle first. Blocks until the run goroutine
// has exited.
func (e *syncEngine) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.paused = false
	e.mu.Unlock()
	e.wg.Wait()
}

func (e *syncEngine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *syncEngine) OnProgress(fn func(models.SyncProgress)) func() {
	e.obsMu.Lock()
	id := e.nextObsID
	e.nextObsID++
	e.onProgress[id] = fn
	e.obsMu.Unlock()

	return func() {
		e.obsMu.Lock()
		delete(e.onProgress, id)
		e.obsMu.Unlock()
	}
}

func (e *syncEngine) OnComplete(fn func(models.SyncResult)) func() {
	e.obsMu.Lock()
	id := e.nextObsID
	e.nextObsID++
	e.onComplete[id] = fn
	e.obsMu.Unlock()

	return func() {
		e.obsMu.Lock()
		delete(e.onComplete, id)
		e.obsMu.Unlock()
	}
}

// runCounters aggregates item outcomes across the concurrent workers of a
// run.
type runCounters struct {
	mu        sync.Mutex
	tenantID  string
	total     int
	processed int
	completed int
	failed    int
}

func (e *syncEngine) run(ctx context.Context, tenantID string) {
	log := e.logger.GetChildLogger()

	items, err := e.queue.GetPendingItems(ctx, tenantID)
	if err != nil {
		log.Err(err).
			Str("func", "syncEngine.run").
			Str("tenant_id", tenantID).
			Msg("failed to fetch pending items")
		e.emitComplete(models.SyncResult{TenantID: tenantID, Success: false})
		return
	}

	counters := &runCounters{tenantID: tenantID, total: len(items)}

	if len(items) == 0 {
		e.emitComplete(models.SyncResult{TenantID: tenantID, Success: true})
		return
	}

	log.Info().
		Str("func", "syncEngine.run").
		Str("tenant_id", tenantID).
		Int("pending", len(items)).
		Msg("drain run started")

	stoppedEarly := false

batches:
	for start := 0; start < len(items); start += e.cfg.BatchSize {
		if !e.waitWhilePaused(ctx) {
			stoppedEarly = true
			break batches
		}

		end := start + e.cfg.BatchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(item models.QueueItem) {
				defer wg.Done()
				e.processItem(ctx, item, counters)
			}(batch[i])
		}
		wg.Wait()

		if end < len(items) {
			select {
			case <-ctx.Done():
				stoppedEarly = true
				break batches
			case <-time.After(e.cfg.BatchDelay):
			}
		}
	}

	if _, err = e.queue.ClearCompleted(ctx, tenantID); err != nil {
		log.Err(err).
			Str("func", "syncEngine.run").
			Str("tenant_id", tenantID).
			Msg("failed to purge completed items")
	}

	counters.mu.Lock()
	result := models.SyncResult{
		TenantID:  tenantID,
		Total:     counters.total,
		Completed: counters.completed,
		Failed:    counters.failed,
		Success:   counters.failed == 0,
		Stopped:   stoppedEarly,
	}
	counters.mu.Unlock()

	log.Info().
		Str("func", "syncEngine.run").
		Str("tenant_id", tenantID).
		Int("total", result.Total).
		Int("completed", result.Completed).
		Int("failed", result.Failed).
		Bool("stopped", result.Stopped).
		Msg("drain run finished")

	e.emitComplete(result)
}

// waitWhilePaused blocks while the engine is paused, polling for resume.
// It returns false when the run must end (stop requested or context done).
func (e *syncEngine) waitWhilePaused(ctx context.Context) bool {
	for {
		e.mu.Lock()
		stopped, paused := e.stopped, e.paused
		e.mu.Unlock()

		if stopped {
			return false
		}
		if !paused {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(e.cfg.PausePoll):
		}
	}
}

func (e *syncEngine) processItem(ctx context.Context, item models.QueueItem, counters *runCounters) {
	log := e.logger.GetChildLogger()

	if e.skipWithoutSync(ctx, item) {
		if err := e.queue.UpdateStatus(ctx, item.ID, models.StatusCompleted, ""); err != nil {
			log.Err(err).
				Str("func", "syncEngine.processItem").
				Str("item_id", item.ID).
				Msg("failed to acknowledge skipped item")
		}
		e.settle(counters, item.ID, true)
		return
	}

	if err := e.queue.UpdateStatus(ctx, item.ID, models.StatusSyncing, ""); err != nil {
		log.Err(err).
			Str("func", "syncEngine.processItem").
			Str("item_id", item.ID).
			Msg("failed to mark item syncing")
		e.settle(counters, item.ID, false)
		return
	}

	if item.RetryCount > 0 {
		delay := e.cfg.BaseRetryDelay * (1 << (item.RetryCount - 1))
		select {
		case <-ctx.Done():
		case <-time.After(delay):
		}
	}

	err := e.dispatchItem(ctx, item)
	if err == nil {
		if uerr := e.queue.UpdateStatus(ctx, item.ID, models.StatusCompleted, ""); uerr != nil {
			log.Err(uerr).
				Str("func", "syncEngine.processItem").
				Str("item_id", item.ID).
				Msg("failed to mark item completed")
		}
		e.settle(counters, item.ID, true)
		return
	}

	log.Warn().
		Str("func", "syncEngine.processItem").
		Str("item_id", item.ID).
		Str("operation_type", item.OperationType).
		Str("action", string(item.Action)).
		Int("retry_count", item.RetryCount).
		Err(err).
		Msg("item attempt failed")

	nextStatus := models.StatusFailed
	if item.RetryCount < e.cfg.MaxRetries {
		nextStatus = models.StatusPending
	}
	if uerr := e.queue.UpdateStatus(ctx, item.ID, nextStatus, err.Error()); uerr != nil {
		log.Err(uerr).
			Str("func", "syncEngine.processItem").
			Str("item_id", item.ID).
			Msg("failed to record item failure")
	}
	e.settle(counters, item.ID, false)
}

// dispatchItem routes the item to the remote call registered for its
// operation type. The per-item timeout bounds the remote call.
func (e *syncEngine) dispatchItem(ctx context.Context, item models.QueueItem) error {
	call, ok := e.dispatch[item.OperationType]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOperationType, item.OperationType)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.cfg.ItemTimeout)
	defer cancel()

	var err error
	if item.Action == models.ActionDelete {
		err = call.delete(callCtx, item.EntityID)
	} else {
		err = call.save(callCtx, item.Payload)
	}

	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrSyncTimeout, err)
	}
	return err
}

// skipWithoutSync reports whether the item must be acknowledged locally
// without a remote attempt. Applies only to the "user" operation type: seed
// identities are never replicated, and a structurally invalid user payload
// would fail remotely forever.
func (e *syncEngine) skipWithoutSync(ctx context.Context, item models.QueueItem) bool {
	if item.OperationType != models.OpTypeUser {
		return false
	}

	if _, seed := seedUserIDs[item.EntityID]; seed {
		e.logger.Debug().
			Str("func", "syncEngine.skipWithoutSync").
			Str("item_id", item.ID).
			Str("entity_id", item.EntityID).
			Msg("seed user identity, acknowledging without sync")
		return true
	}
	if item.Action == models.ActionDelete {
		return false
	}

	var user models.UserPayload
	if err := json.Unmarshal(item.Payload, &user); err != nil {
		e.logger.Warn().
			Str("func", "syncEngine.skipWithoutSync").
			Str("item_id", item.ID).
			Err(err).
			Msg("malformed user payload, acknowledging without sync")
		return true
	}
	if _, seed := seedUserIDs[user.ID]; seed {
		return true
	}
	if err := e.validator.Validate(ctx, user); err != nil {
		e.logger.Warn().
			Str("func", "syncEngine.skipWithoutSync").
			Str("item_id", item.ID).
			Err(err).
			Msg("invalid user payload, acknowledging without sync")
		return true
	}

	return false
}

func (e *syncEngine) settle(counters *runCounters, itemID string, completed bool) {
	counters.mu.Lock()
	counters.processed++
	if completed {
		counters.completed++
	} else {
		counters.failed++
	}
	progress := models.SyncProgress{
		TenantID:  counters.tenantID,
		Total:     counters.total,
		Processed: counters.processed,
		Completed: counters.completed,
		Failed:    counters.failed,
		ItemID:    itemID,
	}
	counters.mu.Unlock()

	e.emitProgress(progress)
}

func (e *syncEngine) emitProgress(p models.SyncProgress) {
	e.obsMu.RLock()
	observers := make([]func(models.SyncProgress), 0, len(e.onProgress))
	for _, fn := range e.onProgress {
		observers = append(observers, fn)
	}
	e.obsMu.RUnlock()

	for _, fn := range observers {
		e.notifyProgress(fn, p)
	}
}

func (e *syncEngine) emitComplete(r models.SyncResult) {
	e.obsMu.RLock()
	observers := make([]func(models.SyncResult), 0, len(e.onComplete))
	for _, fn := range e.onComplete {
		observers = append(observers, fn)
	}
	e.obsMu.RUnlock()

	for _, fn := range observers {
		e.notifyComplete(fn, r)
	}
}

// notifyProgress isolates observer panics so one misbehaving listener
// cannot break delivery to the others.
func (e *syncEngine) notifyProgress(fn func(models.SyncProgress), p models.SyncProgress) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("func", "syncEngine.notifyProgress").
				Interface("panic", r).
				Msg("progress observer panicked")
		}
	}()
	fn(p)
}

func (e *syncEngine) notifyComplete(fn func(models.SyncResult), r models.SyncResult) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Error().
				Str("func", "syncEngine.notifyComplete").
				Interface("panic", rec).
				Msg("completion observer panicked")
		}
	}()
	fn(r)
}
