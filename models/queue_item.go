package models

import (
	"encoding/json"
	"time"
)

// QueueAction is the kind of mutation a queue item carries.
type QueueAction string

const (
	ActionCreate QueueAction = "create"
	ActionUpdate QueueAction = "update"
	ActionDelete QueueAction = "delete"
)

// QueueStatus is the replication state of a queue item.
//
// Allowed transitions: pending → syncing → {completed, pending, failed}.
// A syncing→pending transition records a retryable attempt failure.
type QueueStatus string

const (
	StatusPending   QueueStatus = "pending"
	StatusSyncing   QueueStatus = "syncing"
	StatusCompleted QueueStatus = "completed"
	StatusFailed    QueueStatus = "failed"
)

// Operation types recognised by the sync dispatch table.
const (
	OpTypeTransaction = "transaction"
	OpTypeInvoice     = "invoice"
	OpTypeContact     = "contact"
	OpTypeUser        = "user"
)

// QueueItem is one durable pending domain mutation awaiting replication to
// the remote authority. The payload is opaque to the core; only its "id"
// field is extracted (into EntityID) so that queued work for a locally
// deleted entity can be cancelled.
type QueueItem struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	UserID        string          `json:"user_id"`
	DeviceID      string          `json:"device_id,omitempty"`
	OperationType string          `json:"operation_type"`
	Action        QueueAction     `json:"action"`
	Payload       json.RawMessage `json:"payload"`
	EntityID      string          `json:"entity_id,omitempty"`
	EnqueuedAt    time.Time       `json:"enqueued_at"`
	RetryCount    int             `json:"retry_count"`
	Status        QueueStatus     `json:"status"`
	LastAttemptAt *time.Time      `json:"last_attempt_at,omitempty"`
	LastError     string          `json:"last_error,omitempty"`
}
