// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Kudrin

// Package adapter provides the transport layer for talking to the remote
// authority.
//
// The primary abstraction is [RemoteAPI], which decouples the sync engine
// from the underlying protocol: one call per (entity kind, action) pair,
// plus the connectivity probe used by the connection monitor. The shipped
// implementation ([NewHTTPRemoteAPI]) is HTTP/REST over resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// RemoteAPI defines transport-agnostic communication with the remote
// authority. Implementations own serialisation, the bearer session, and
// mapping transport errors to this package's sentinel values. Every call
// honours ctx cancellation and deadline; the engine's per-item timeout is
// enforced through the context it passes in.
type RemoteAPI interface {
	// Login authenticates the daemon's service session. On success the
	// returned bearer token is stored and attached to all subsequent calls.
	Login(ctx context.Context, login, password string) error

	// Token returns the bearer token of the current session, or an empty
	// string if Login has not succeeded yet.
	Token() string

	// Claims returns the parsed session claims (subject, tenant, expiry)
	// and false when no session is active.
	Claims() (SessionClaims, bool)

	// Ping is the lightweight reachability probe used by the connection
	// monitor. It returns nil when the remote authority is healthy.
	Ping(ctx context.Context) error

	// SaveTransaction replicates a transaction create/update.
	SaveTransaction(ctx context.Context, payload json.RawMessage) error

	// DeleteTransaction replicates a transaction deletion by entity id.
	DeleteTransaction(ctx context.Context, entityID string) error

	// SaveInvoice replicates an invoice create/update.
	SaveInvoice(ctx context.Context, payload json.RawMessage) error

	// DeleteInvoice replicates an invoice deletion by entity id.
	DeleteInvoice(ctx context.Context, entityID string) error

	// SaveContact replicates a contact create/update.
	SaveContact(ctx context.Context, payload json.RawMessage) error

	// DeleteContact replicates a contact deletion by entity id.
	DeleteContact(ctx context.Context, entityID string) error

	// SaveUser replicates a user create/update.
	SaveUser(ctx context.Context, payload json.RawMessage) error

	// DeleteUser replicates a user deletion by entity id.
	DeleteUser(ctx context.Context, entityID string) error
}
