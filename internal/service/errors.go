package service

import "errors"

var (
	ErrUnknownOperationType = errors.New("unknown operation type")
	ErrSyncTimeout          = errors.New("remote call timed out")
	ErrNoUserContext        = errors.New("user context is not set")
)
