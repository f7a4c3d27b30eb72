// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package env

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Callers can match the typed errors below against them
// with [errors.Is].
var (
	// ErrSchemaValidation indicates that one or more declared variables
	// failed their type or constraint checks or were missing.
	ErrSchemaValidation = errors.New("invalid environment variables")

	// ErrForbiddenAccess indicates a client-side read of a server-only
	// variable.
	ErrForbiddenAccess = errors.New("access to server-only environment variable denied")

	// ErrUndefinedKey indicates a read of a variable that is not present in
	// the validated snapshot.
	ErrUndefinedKey = errors.New("environment variable is not defined")

	// ErrInvalidSchema indicates a malformed schema declaration.
	ErrInvalidSchema = errors.New("invalid environment schema")

	// ErrTypeMismatch is returned by [Lookup] when the stored value is not of
	// the requested type.
	ErrTypeMismatch = errors.New("environment variable type mismatch")
)

// FieldError describes a single variable that failed validation.
type FieldError struct {
	// Key is the environment variable name.
	Key string
	// Reason is a human-readable description of the failure.
	Reason string
}

func (f FieldError) String() string {
	return f.Key + ": " + f.Reason
}

// SchemaValidationError carries every offending variable of a single
// validation run, in declaration order.
type SchemaValidationError struct {
	Fields []FieldError
}

func (e *SchemaValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: %s", ErrSchemaValidation, strings.Join(parts, "; "))
}

// Is reports whether target is [ErrSchemaValidation].
func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrSchemaValidation
}

// Keys returns the names of all offending variables.
func (e *SchemaValidationError) Keys() []string {
	keys := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// ForbiddenAccessError is returned when a server-only variable is read on
// [ClientSide].
type ForbiddenAccessError struct {
	Key string
}

func (e *ForbiddenAccessError) Error() string {
	return fmt.Sprintf("access to server-only environment variable '%s' is denied on the client side", e.Key)
}

// Is reports whether target is [ErrForbiddenAccess].
func (e *ForbiddenAccessError) Is(target error) bool {
	return target == ErrForbiddenAccess
}

// UndefinedKeyError is returned when the requested variable is absent from
// the validated snapshot.
type UndefinedKeyError struct {
	Key string
}

func (e *UndefinedKeyError) Error() string {
	return fmt.Sprintf("environment variable %s is not defined", e.Key)
}

// Is reports whether target is [ErrUndefinedKey].
func (e *UndefinedKeyError) Is(target error) bool {
	return target == ErrUndefinedKey
}
