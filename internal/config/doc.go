// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Runtime configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// The package also declares the application environment schemas (NODE_ENV,
// PUBLIC_REPOSITORY_URL, APP_NAME) and builds typed accessors bound to them
// with [NewEnv].
//
// The main entry points are [GetStructuredConfig] for runtime configuration
// and [NewEnv] for the application environment.
package config
