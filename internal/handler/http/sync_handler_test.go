package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/akudrin/offsync/internal/config"
	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/mock"
	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/validators"
	"github.com/akudrin/offsync/models"
)

// ctxQueue is an in-memory QueueRepository that fails any call arriving on
// an already-canceled context.
type ctxQueue struct {
	mu    sync.Mutex
	items []models.QueueItem
}

func (q *ctxQueue) Enqueue(ctx context.Context, tenantID, userID, deviceID, operationType string, action models.QueueAction, payload json.RawMessage) (string, error) {
	return "", ctx.Err()
}

func (q *ctxQueue) GetItem(ctx context.Context, id string) (models.QueueItem, error) {
	return models.QueueItem{}, store.ErrQueueItemNotFound
}

func (q *ctxQueue) GetPendingItems(ctx context.Context, tenantID string) ([]models.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	var pending []models.QueueItem
	for _, item := range q.items {
		if item.TenantID == tenantID && item.Status == models.StatusPending {
			pending = append(pending, item)
		}
	}
	return pending, nil
}

func (q *ctxQueue) GetAllItems(ctx context.Context, tenantID string) ([]models.QueueItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]models.QueueItem(nil), q.items...), nil
}

func (q *ctxQueue) UpdateStatus(ctx context.Context, id string, status models.QueueStatus, errMsg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.items {
		if q.items[i].ID == id {
			q.items[i].Status = status
			if errMsg != "" {
				q.items[i].RetryCount++
				q.items[i].LastError = errMsg
			}
			return nil
		}
	}
	return store.ErrQueueItemNotFound
}

func (q *ctxQueue) Remove(ctx context.Context, id string) error {
	return ctx.Err()
}

func (q *ctxQueue) ClearCompleted(ctx context.Context, tenantID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	var kept []models.QueueItem
	var removed int64
	for _, item := range q.items {
		if item.TenantID == tenantID && item.Status == models.StatusCompleted {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	q.items = kept
	return removed, nil
}

func (q *ctxQueue) ClearAll(ctx context.Context, tenantID string) (int64, error) {
	return 0, ctx.Err()
}

func (q *ctxQueue) RemovePendingByEntity(ctx context.Context, tenantID, operationType, entityID string) (int64, error) {
	return 0, ctx.Err()
}

func (q *ctxQueue) PendingCount(ctx context.Context, tenantID string) (int64, error) {
	return 0, ctx.Err()
}

func (q *ctxQueue) FailedCount(ctx context.Context, tenantID string) (int64, error) {
	return 0, ctx.Err()
}

func TestStartSync_Accepted(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.engine.EXPECT().Start(gomock.Any(), "tenant-1")

	rr := serve(t, h, http.MethodPost, "/api/sync/tenant-1/start", nil)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rr.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["tenant_id"] != "tenant-1" {
		t.Fatalf("unexpected tenant %v", resp["tenant_id"])
	}
}

func TestStartSync_DrainOutlivesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)

	queue := &ctxQueue{items: []models.QueueItem{{
		ID:            "item-1",
		TenantID:      "tenant-1",
		UserID:        "user-a",
		OperationType: models.OpTypeTransaction,
		Action:        models.ActionCreate,
		Payload:       json.RawMessage(`{"id":"tx-1"}`),
		Status:        models.StatusPending,
	}}}

	requestDone := make(chan struct{})
	remote := mock.NewMockRemoteAPI(ctrl)
	remote.EXPECT().SaveTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ json.RawMessage) error {
			<-requestDone
			return ctx.Err()
		})

	engine := service.NewSyncEngine(queue, remote, validators.NewQueueValidator(), config.Engine{
		BatchSize:      5,
		MaxRetries:     3,
		BaseRetryDelay: time.Millisecond,
		ItemTimeout:    time.Second,
		BatchDelay:     time.Millisecond,
		PausePoll:      time.Millisecond,
	}, logger.Nop())

	done := make(chan models.SyncResult, 1)
	engine.OnComplete(func(r models.SyncResult) { done <- r })

	services := &service.Services{
		Monitor: mock.NewMockConnectionMonitor(ctrl),
		Arbiter: mock.NewMockLockArbiter(ctrl),
		Engine:  engine,
	}
	h := NewHandler(services, queue, logger.Nop())

	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/sync/tenant-1/start", "application/json", nil)
	if err != nil {
		t.Fatalf("post error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}

	// The handler has returned and its request context is canceled; the
	// drain must still settle the item against a live context.
	close(requestDone)

	select {
	case result := <-done:
		if !result.Success || result.Total != 1 || result.Completed != 1 || result.Failed != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("drain did not finish")
	}
}

func TestPauseSync(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.engine.EXPECT().Pause()

	rr := serve(t, h, http.MethodPost, "/api/sync/pause", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestResumeSync(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.engine.EXPECT().Resume()

	rr := serve(t, h, http.MethodPost, "/api/sync/resume", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestStopSync_ReportsFinalState(t *testing.T) {
	h, mocks := newTestHandler(t)

	gomock.InOrder(
		mocks.engine.EXPECT().Stop(),
		mocks.engine.EXPECT().IsRunning().Return(false),
	)

	rr := serve(t, h, http.MethodPost, "/api/sync/stop", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["running"] {
		t.Fatalf("expected running=false after stop")
	}
}

func TestGetSyncStatus(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.engine.EXPECT().IsRunning().Return(true)

	rr := serve(t, h, http.MethodGet, "/api/sync/status", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]bool
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !resp["running"] {
		t.Fatalf("expected running=true")
	}
}
