package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrEnvNotProvided        = errors.New("environment accessor is not provided")
	ErrUnexpectedEnvType     = errors.New("unexpected environment value type")
)
