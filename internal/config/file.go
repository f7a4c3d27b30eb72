package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of a JSON or YAML config file.
type StructuredFileConfig struct {
	Server struct {
		HTTPAddress       string   `json:"http_address" yaml:"http_address"`
		RequestTimeout    Duration `json:"request_timeout" yaml:"request_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Metrics struct {
		Disabled bool   `json:"disabled" yaml:"disabled"`
		Path     string `json:"path" yaml:"path"`
	} `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	Env struct {
		Files []string `json:"files" yaml:"files"`
	} `json:"env,omitempty" yaml:"env,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:       fileCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(fileCfg.Server.RequestTimeout),
			ReadHeaderTimeout: time.Duration(fileCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(fileCfg.Server.ShutdownTimeout),
		},
		Metrics: Metrics{
			Disabled: fileCfg.Metrics.Disabled,
			Path:     fileCfg.Metrics.Path,
		},
		Env:      EnvFiles{Files: fileCfg.Env.Files},
		FilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s" in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
