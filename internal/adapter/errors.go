package adapter

import "errors"

var (
	ErrInvalidAddress      = errors.New("invalid server address")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("service unavailable")
)
