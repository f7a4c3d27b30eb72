package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMetricsConfigs indicates an enabled metrics endpoint with a
	// malformed path.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrUnsupportedConfigFormat is returned for config files whose
	// extension is neither JSON nor YAML.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
