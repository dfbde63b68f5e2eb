package adapter

import "errors"

// Sentinel errors mapped from remote HTTP responses. Callers match them with
// [errors.Is]; the sync engine treats any of them uniformly as a retryable
// remote operation failure.
var (
	ErrBadRequest          = errors.New("remote rejected request")
	ErrUnauthorized        = errors.New("remote session unauthorized")
	ErrForbidden           = errors.New("remote access forbidden")
	ErrNotFound            = errors.New("remote entity not found")
	ErrConflict            = errors.New("remote version conflict")
	ErrBadGateway          = errors.New("remote gateway error")
	ErrInternalServerError = errors.New("remote internal error")

	// ErrNoSession is returned by calls that require authentication before
	// Login has succeeded.
	ErrNoSession = errors.New("no remote session established")
)
