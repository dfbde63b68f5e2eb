package models

import "time"

// ConnectionStatus is the tri-state output of the connection monitor.
type ConnectionStatus string

const (
	ConnChecking ConnectionStatus = "checking"
	ConnOnline   ConnectionStatus = "online"
	ConnOffline  ConnectionStatus = "offline"
)

// ConnectionState is the monitor's last known status. Process-wide, never
// persisted.
type ConnectionState struct {
	Status        ConnectionStatus `json:"status"`
	LastCheckedAt time.Time        `json:"last_checked_at"`
}
