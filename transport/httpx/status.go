package httpx

import (
	"net/http"
	"sync"

	"github.com/8SOAT-Team/use-case-lib/usecase"
)

var (
	statusesMu sync.RWMutex
	statuses   = map[usecase.ErrorKind]int{
		usecase.BadRequest:    http.StatusBadRequest,
		usecase.NotFound:      http.StatusNotFound,
		usecase.InternalError: http.StatusInternalServerError,
		usecase.Unauthorized:  http.StatusUnauthorized,
		usecase.Forbidden:     http.StatusForbidden,
		usecase.Conflict:      http.StatusConflict,
		usecase.Unprocessable: http.StatusUnprocessableEntity,
		usecase.Unavailable:   http.StatusServiceUnavailable,
	}
)

// RegisterStatus maps an error kind to an HTTP status code.
//
// If RegisterStatus is called twice with the same kind, it panics.
func RegisterStatus(kind usecase.ErrorKind, status int) {
	statusesMu.Lock()
	defer statusesMu.Unlock()

	if _, dup := statuses[kind]; dup {
		panic("registering status: registration called twice for kind " + kind.String())
	}

	statuses[kind] = status
}

// StatusFor returns the HTTP status code of an error kind.
// Unknown kinds map to 500.
func StatusFor(kind usecase.ErrorKind) int {
	statusesMu.RLock()
	defer statusesMu.RUnlock()

	if status, ok := statuses[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}
