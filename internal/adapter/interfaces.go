// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the JSON API of a running server.
//
// The primary abstraction is [ServerAdapter]. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/forknroll/go-boilerplate-base/models"
)

// ServerAdapter reads the public surface of a running server.
type ServerAdapter interface {
	// PublicEnv fetches GET /api/env, the environment exposed to browsers.
	PublicEnv(ctx context.Context) (models.EnvResponse, error)

	// Version fetches GET /api/version.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Health fetches GET /healthz. A nil error means the server answered
	// with a 2xx status.
	Health(ctx context.Context) (models.HealthResponse, error)
}
