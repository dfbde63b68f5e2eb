package http

import (
	"errors"
	"net/http"

	"github.com/akudrin/offsync/internal/service"
	"github.com/akudrin/offsync/internal/store"
	"github.com/akudrin/offsync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrNoUserContext:        http.StatusConflict,
	service.ErrUnknownOperationType: http.StatusBadRequest,

	validators.ErrInvalidTenantID:      http.StatusBadRequest,
	validators.ErrInvalidUserID:        http.StatusBadRequest,
	validators.ErrInvalidOperationType: http.StatusBadRequest,
	validators.ErrInvalidAction:        http.StatusBadRequest,
	validators.ErrInvalidPayload:       http.StatusBadRequest,
	validators.ErrInvalidEntityID:      http.StatusBadRequest,

	store.ErrQueueItemNotFound: http.StatusNotFound,
	store.ErrLockNotFound:      http.StatusNotFound,
	store.ErrInvalidPayload:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
