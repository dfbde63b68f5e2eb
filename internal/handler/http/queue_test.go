package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/models"
)

func TestEnqueueItem_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	payload := json.RawMessage(`{"id":"tx-1","amount":100}`)
	mocks.arbiter.EXPECT().HasOfflineWriteAccess(gomock.Any()).Return(true, nil)
	mocks.queue.EXPECT().
		Enqueue(gomock.Any(), "tenant-1", "user-a", "device-1", models.OpTypeTransaction, models.ActionCreate, payload).
		Return("item-1", nil)

	body := bytes.NewBufferString(`{
		"user_id": "user-a",
		"device_id": "device-1",
		"operation_type": "transaction",
		"action": "create",
		"payload": {"id":"tx-1","amount":100}
	}`)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", body)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["id"] != "item-1" {
		t.Fatalf("expected item-1, got %q", resp["id"])
	}
}

func TestEnqueueItem_MalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", strings.NewReader("{broken"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestEnqueueItem_UnknownOperationType(t *testing.T) {
	h, _ := newTestHandler(t)

	body := strings.NewReader(`{
		"user_id": "user-a",
		"operation_type": "widget",
		"action": "create",
		"payload": {"id":"w-1"}
	}`)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestEnqueueItem_ScalarPayloadRejected(t *testing.T) {
	h, _ := newTestHandler(t)

	body := strings.NewReader(`{
		"user_id": "user-a",
		"operation_type": "contact",
		"action": "update",
		"payload": 42
	}`)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", body)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestEnqueueItem_BlockedByOfflineLock(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.arbiter.EXPECT().HasOfflineWriteAccess(gomock.Any()).Return(false, nil)

	body := strings.NewReader(`{
		"user_id": "user-b",
		"operation_type": "transaction",
		"action": "create",
		"payload": {"id":"tx-9"}
	}`)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", body)

	if rr.Code != http.StatusLocked {
		t.Fatalf("expected 423, got %d", rr.Code)
	}
}

func TestEnqueueItem_WriteAccessCheckFails(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.arbiter.EXPECT().HasOfflineWriteAccess(gomock.Any()).Return(false, service.ErrNoUserContext)

	body := strings.NewReader(`{
		"user_id": "user-a",
		"operation_type": "contact",
		"action": "create",
		"payload": {"id":"c-1"}
	}`)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", body)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestEnqueueItem_StoreError(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.arbiter.EXPECT().HasOfflineWriteAccess(gomock.Any()).Return(true, nil)
	mocks.queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("disk full"))

	body := strings.NewReader(`{
		"user_id": "user-a",
		"operation_type": "invoice",
		"action": "create",
		"payload": {"id":"inv-1"}
	}`)

	rr := serve(t, h, http.MethodPost, "/api/queue/tenant-1/items", body)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestGetAllItems_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	items := []models.QueueItem{
		{ID: "item-1", TenantID: "tenant-1", OperationType: models.OpTypeContact, Status: models.StatusPending},
		{ID: "item-2", TenantID: "tenant-1", OperationType: models.OpTypeInvoice, Status: models.StatusCompleted},
	}
	mocks.queue.EXPECT().GetAllItems(gomock.Any(), "tenant-1").Return(items, nil)

	rr := serve(t, h, http.MethodGet, "/api/queue/tenant-1/items", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Items  []models.QueueItem `json:"items"`
		Length int                `json:"length"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Length != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", resp.Length)
	}
	if resp.Items[0].ID != "item-1" {
		t.Fatalf("unexpected first item %q", resp.Items[0].ID)
	}
}

func TestGetPendingItems_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	items := []models.QueueItem{
		{ID: "item-1", TenantID: "tenant-1", Status: models.StatusPending},
	}
	mocks.queue.EXPECT().GetPendingItems(gomock.Any(), "tenant-1").Return(items, nil)

	rr := serve(t, h, http.MethodGet, "/api/queue/tenant-1/items/pending", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"length":1`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestGetItem_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	enqueued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	item := models.QueueItem{ID: "item-7", TenantID: "tenant-1", EnqueuedAt: enqueued}
	mocks.queue.EXPECT().GetItem(gomock.Any(), "item-7").Return(item, nil)

	rr := serve(t, h, http.MethodGet, "/api/queue/items/item-7", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var got models.QueueItem
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.ID != "item-7" || !got.EnqueuedAt.Equal(enqueued) {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.queue.EXPECT().GetItem(gomock.Any(), "missing").Return(models.QueueItem{}, store.ErrQueueItemNotFound)

	rr := serve(t, h, http.MethodGet, "/api/queue/items/missing", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestRemoveItem_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.queue.EXPECT().Remove(gomock.Any(), "item-3").Return(nil)

	rr := serve(t, h, http.MethodDelete, "/api/queue/items/item-3", nil)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestGetQueueStats_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.queue.EXPECT().PendingCount(gomock.Any(), "tenant-1").Return(int64(4), nil)
	mocks.queue.EXPECT().FailedCount(gomock.Any(), "tenant-1").Return(int64(1), nil)

	rr := serve(t, h, http.MethodGet, "/api/queue/tenant-1/stats", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp["pending"] != 4 || resp["failed"] != 1 {
		t.Fatalf("unexpected stats: %v", resp)
	}
}

func TestClearCompleted_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.queue.EXPECT().ClearCompleted(gomock.Any(), "tenant-1").Return(int64(3), nil)

	rr := serve(t, h, http.MethodDelete, "/api/queue/tenant-1/completed", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"removed":3`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestClearAll_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.queue.EXPECT().ClearAll(gomock.Any(), "tenant-1").Return(int64(9), nil)

	rr := serve(t, h, http.MethodDelete, "/api/queue/tenant-1/", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"removed":9`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestRemovePendingByEntity_Success(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.queue.EXPECT().
		RemovePendingByEntity(gomock.Any(), "tenant-1", models.OpTypeContact, "contact-5").
		Return(int64(2), nil)

	rr := serve(t, h, http.MethodDelete, "/api/queue/tenant-1/entity/contact/contact-5", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"removed":2`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}
