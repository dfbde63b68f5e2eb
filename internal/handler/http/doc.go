// Package http implements the local admin HTTP API of the offsync daemon.
//
// It exposes route wiring, request handlers, and middleware for introspecting
// and controlling the replication core: queue contents, offline locks, sync
// runs, and connection status. The API is meant to be bound to a loopback
// address; it carries no authentication of its own.
package http
