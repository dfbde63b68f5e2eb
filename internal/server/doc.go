// Package server runs the daemon's local admin HTTP listener.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown of in-flight requests.
package server
