package models

import "time"

// OfflineLock is the per-tenant record naming the single identity permitted
// to mutate data while disconnected. At most one lock exists per tenant.
//
// OwnerID is the arbitration key (a user identity); OwnerDeviceID is carried
// for attribution only. ExpiresAt is zero when TTL-based eviction is
// disabled.
type OfflineLock struct {
	TenantID      string    `json:"tenant_id"`
	OwnerID       string    `json:"owner_id"`
	OwnerLabel    string    `json:"owner_label"`
	OwnerDeviceID string    `json:"owner_device_id,omitempty"`
	LockedAt      time.Time `json:"locked_at"`
	ExpiresAt     time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the lock's TTL has elapsed at the given instant.
// Locks without an expiry never expire.
func (l OfflineLock) Expired(now time.Time) bool {
	return !l.ExpiresAt.IsZero() && now.After(l.ExpiresAt)
}

// LockOwner identifies the holder of an offline lock to callers that only
// need to present "who is blocking me".
type LockOwner struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
