package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-appenv/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrVariableNotFound:      http.StatusNotFound,
	service.ErrUnknownVisibility:     http.StatusBadRequest,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,
	service.ErrNilSnapshot:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
