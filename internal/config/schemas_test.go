package config

import (
	"testing"

	"github.com/forknroll/go-boilerplate-base/internal/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnv_Defaults(t *testing.T) {
	e, err := NewEnv(env.ServerSide, env.MapSource{})
	require.NoError(t, err)

	nodeEnv, err := env.Lookup[string](e, KeyNodeEnv)
	require.NoError(t, err)
	assert.Equal(t, NodeEnvDevelopment, nodeEnv)

	repo, err := env.Lookup[string](e, KeyRepositoryURL)
	require.NoError(t, err)
	assert.Equal(t, DefaultRepositoryURL, repo)

	appName, err := env.Lookup[string](e, KeyAppName)
	require.NoError(t, err)
	assert.Equal(t, "Go Boilerplate", appName)
}

func TestNewEnv_RejectsUnknownNodeEnv(t *testing.T) {
	_, err := NewEnv(env.ServerSide, env.MapSource{KeyNodeEnv: "staging"})

	var validationErr *env.SchemaValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{KeyNodeEnv}, validationErr.Keys())
}

func TestNewEnv_ClientSide(t *testing.T) {
	e, err := NewEnv(env.ClientSide, env.MapSource{KeyAppName: "hidden"})
	require.NoError(t, err)

	_, err = e.Get(KeyAppName)
	assert.ErrorIs(t, err, env.ErrForbiddenAccess)

	public, err := e.Public()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		KeyNodeEnv:       NodeEnvDevelopment,
		KeyRepositoryURL: DefaultRepositoryURL,
	}, public)
}

func TestNewEnv_ExtraOptions(t *testing.T) {
	var observed []env.Side
	_, err := NewEnv(env.ServerSide, env.MapSource{}, env.WithObserver(func(s env.Side, _ error) {
		observed = append(observed, s)
	}))
	require.NoError(t, err)
	assert.Equal(t, []env.Side{env.ServerSide}, observed)
}
