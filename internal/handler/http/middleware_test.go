package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/akudrin/offsync/internal/logger"
	"github.com/akudrin/offsync/internal/mock"
	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/validators"
)

func TestWithTraceID_GeneratesWhenMissing(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.engine.EXPECT().IsRunning().Return(false)

	rr := serve(t, h, http.MethodGet, "/api/sync/status", nil)

	if rr.Header().Get(traceIDHeader) == "" {
		t.Fatal("expected a generated trace id header")
	}
}

func TestWithTraceID_PropagatesIncoming(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.engine.EXPECT().IsRunning().Return(false)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/status", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	if got := rr.Header().Get(traceIDHeader); got != "trace-123" {
		t.Fatalf("expected trace-123, got %q", got)
	}
}

func TestWithLogging_TenantAndTraceFields(t *testing.T) {
	ctrl := gomock.NewController(t)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	queue := mock.NewMockQueueRepository(ctrl)
	queue.EXPECT().PendingCount(gomock.Any(), "tenant-9").Return(int64(0), nil)
	queue.EXPECT().FailedCount(gomock.Any(), "tenant-9").Return(int64(0), nil)

	services := &service.Services{
		Monitor: mock.NewMockConnectionMonitor(ctrl),
		Arbiter: mock.NewMockLockArbiter(ctrl),
		Engine:  mock.NewMockSyncEngine(ctrl),
	}
	h := NewHandler(services, queue, log)

	req := httptest.NewRequest(http.MethodGet, "/api/queue/tenant-9/stats", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	out := buf.String()
	for _, want := range []string{
		`"tenant_id":"tenant-9"`,
		`"trace_id":"trace-42"`,
		`"status":200`,
		"admin request served",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.status != http.StatusAccepted || rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got rw=%d rec=%d", rw.status, rec.Code)
	}
}

func TestResponseWriter_WriteImplies200(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	if n != 5 || rw.size != 5 {
		t.Fatalf("unexpected sizes: n=%d size=%d", n, rw.size)
	}
	if rw.status != http.StatusOK {
		t.Fatalf("expected implicit 200, got %d", rw.status)
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrNoUserContext, http.StatusConflict},
		{validators.ErrInvalidAction, http.StatusBadRequest},
		{store.ErrQueueItemNotFound, http.StatusNotFound},
		{store.ErrLockNotFound, http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", store.ErrExecutingQuery), http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFromError(tt.err); got != tt.want {
			t.Fatalf("statusFromError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
