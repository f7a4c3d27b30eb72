package env

//go:generate mockgen -source=source.go -destination=../mock/source_mock.go -package=mock

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	envparse "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Source supplies the raw environment an accessor validates.
type Source interface {
	// Environ returns variable names mapped to their raw values.
	Environ() (map[string]string, error)
}

// OSSource reads the process environment.
type OSSource struct{}

// Environ returns a copy of the process environment.
func (OSSource) Environ() (map[string]string, error) {
	return envparse.ToMap(os.Environ()), nil
}

// MapSource serves a fixed set of variables. Useful in tests and for
// embedding hosts that already hold the environment in memory.
type MapSource map[string]string

// Environ returns a copy of the map.
func (m MapSource) Environ() (map[string]string, error) {
	return maps.Clone(map[string]string(m)), nil
}

// DotEnvSource layers .env files under a base source. Files listed first
// take precedence over later ones and the base source takes precedence
// over every file. Files that do not exist are skipped.
type DotEnvSource struct {
	Files []string
	Base  Source
}

// Environ reads the files and the base source and merges them.
func (d DotEnvSource) Environ() (map[string]string, error) {
	merged := make(map[string]string)

	for i := len(d.Files) - 1; i >= 0; i-- {
		vars, err := godotenv.Read(d.Files[i])
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error reading env file %s: %w", d.Files[i], err)
		}
		maps.Copy(merged, vars)
	}

	base := d.Base
	if base == nil {
		base = OSSource{}
	}
	vars, err := base.Environ()
	if err != nil {
		return nil, err
	}
	maps.Copy(merged, vars)

	return merged, nil
}
