package http

import (
	"errors"
	"net/http"

	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/forknroll/go-boilerplate-base/internal/service"
)

var errorStatusMap = map[error]int{
	env.ErrForbiddenAccess:  http.StatusForbidden,
	env.ErrUndefinedKey:     http.StatusInternalServerError,
	env.ErrSchemaValidation: http.StatusInternalServerError,

	service.ErrUnexpectedEnvType:     http.StatusInternalServerError,
	service.ErrEnvNotProvided:        http.StatusServiceUnavailable,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	ErrRenderingPage: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
