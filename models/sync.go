package models

// SyncProgress is delivered to progress observers after every settled item.
type SyncProgress struct {
	TenantID  string `json:"tenant_id"`
	Total     int    `json:"total"`
	Processed int    `json:"processed"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	ItemID    string `json:"item_id,omitempty"`
}

// SyncResult is the aggregate outcome of one engine run. Success is true iff
// no item ended the run in a failed attempt.
type SyncResult struct {
	TenantID  string `json:"tenant_id"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	Success   bool   `json:"success"`
	Stopped   bool   `json:"stopped,omitempty"`
}
