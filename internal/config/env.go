// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	envparse "github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from process environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env`,
// `envPrefix` and `envSeparator` tags defined on [StructuredConfig] and its
// nested types. Empty variables leave the field at its zero value.
func parseEnv(cfg *StructuredConfig) error {
	if err := envparse.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
