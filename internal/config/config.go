// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level runtime configuration of the landing
// server. It is populated by merging built-in defaults, environment
// variables, command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics controls the Prometheus endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Env lists the dotenv files the application environment is read from.
	Env EnvFiles `envPrefix:"ENV_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is picked by extension. Populated via the CONFIG
	// environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "[host]:port" format (e.g. "0.0.0.0:8080", ":8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Metrics controls the Prometheus endpoint.
type Metrics struct {
	// Disabled turns the endpoint off.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`

	// Path is the route metrics are served on.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// EnvFiles lists dotenv files, highest precedence first. Missing files are
// skipped and the process environment always wins over them.
type EnvFiles struct {
	// Files is a comma-separated list of paths.
	// Env: ENV_FILES
	Files []string `env:"FILES" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return load(os.Args[1:])
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
