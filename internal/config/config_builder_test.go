package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config with no sources fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_DefaultsOnly verifies that the defaults alone form a valid
// config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultReadHeaderTimeout, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, DefaultEnvFiles, cfg.Env.Files)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: ":9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: ":9100", ShutdownTimeout: time.Second}},
		&StructuredConfig{Env: EnvFiles{Files: []string{".env.ci"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{".env.ci"}, cfg.Env.Files)
}

// TestBuild_Validation verifies the validation rules on the merged config.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "negative timeout",
			cfg:     &StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "relative metrics path",
			cfg:     &StructuredConfig{Metrics: Metrics{Path: "metrics"}},
			wantErr: ErrInvalidMetricsConfigs,
		},
		{
			name: "relative metrics path is ignored when disabled",
			cfg:  &StructuredConfig{Metrics: Metrics{Path: "metrics", Disabled: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.configs = append(b.configs, tt.cfg)

			_, err := b.build()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS": ":7000",
		"METRICS_PATH":   "/stats",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, ":7000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "/stats", b.configs[0].Metrics.Path)
}

// TestWithEnv_SetsError_WhenMalformed verifies that an unparsable variable
// is recorded and no config is appended.
func TestWithEnv_SetsError_WhenMalformed(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "forever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsError_WhenMalformed verifies that flag errors are
// collected rather than exiting the process.
func TestWithFlags_SetsError_WhenMalformed(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "nowhere"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	assert.Same(t, b, b.withFile())
	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// FilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"server": {"http_address": ":1111"}}`)
	last := writeConfigFile(t, "last.yaml", "server:\n  http_address: \":2222\"\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: ""},
		&StructuredConfig{FilePath: last},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, ":2222", b.configs[3].Server.HTTPAddress)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_Skipped_WhenErrorAlreadySet verifies that an earlier error
// short-circuits file loading.
func TestWithFile_Skipped_WhenErrorAlreadySet(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{}`)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

// ── load ──────────────────────────────────────────────────────────────────────

// TestLoad_Precedence verifies defaults < env < flags < file.
func TestLoad_Precedence(t *testing.T) {
	file := writeConfigFile(t, "config.yaml", "server:\n  shutdown_timeout: 42s\n")
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":          ":7000",
		"SERVER_REQUEST_TIMEOUT":  "12s",
		"SERVER_SHUTDOWN_TIMEOUT": "3s",
		"CONFIG":                  file,
	})

	cfg, err := load([]string{"-request-timeout", "20s"})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 42*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultReadHeaderTimeout, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, file, cfg.FilePath)
}
