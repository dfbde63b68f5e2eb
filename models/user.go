package models

// UserPayload is the subset of a "user" operation payload the core inspects
// before dispatch. Seed identities are never replicated, and payloads with
// missing required fields are settled locally instead of retried forever.
type UserPayload struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
}
