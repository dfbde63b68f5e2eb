package models

import "time"

// DeviceIdentity is the stable identifier of one installation, generated on
// first start and immutable thereafter. Used for attribution, never as a
// lock arbitration key.
type DeviceIdentity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
